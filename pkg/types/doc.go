// Package types defines the public data model for rentbook: field
// descriptors and record schemas, record instances, the record status
// lifecycle, configuration, sentinel errors, and the Store interface
// implemented by storage backends.
// See docs/ARCHITECTURE.md § Data Model.
package types
