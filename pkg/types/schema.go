package types

import "fmt"

// ChildConfig declares the owned line table of an element. Lines are
// created, fetched, and deleted with the parent record; an element without
// a ChildConfig has no line operations.
type ChildConfig struct {
	Table     string  // line table name, without prefix
	ParentKey string  // column on the line table holding the parent identity
	Fields    []Field // line columns, identity excluded
}

// Schema is the declarative description of one record type. The record
// engine derives all SQL from it; see docs/ARCHITECTURE.md § Record Engine.
type Schema struct {
	Element string // element name, e.g. "property"
	Table   string // table name without the configured prefix
	Fields  []Field
	Child   *ChildConfig
}

// Validate checks the structural invariants of a schema: exactly one
// identity field, reference targets that name registered elements, and the
// provisional default restricted to the reference-role field.
func (s *Schema) Validate() error {
	identities := 0
	for _, f := range s.Fields {
		if f.Role == RoleIdentity {
			identities++
		}
		if f.Type == TypeReference && f.Ref != "" {
			if _, ok := Schemas[f.Ref]; !ok {
				return fmt.Errorf("%s.%s: %w: %s", s.Element, f.Name, ErrUnknownReferenceTarget, f.Ref)
			}
		}
		if f.Default == DefaultProvisional && f.Role != RoleRef {
			return fmt.Errorf("%s.%s: %w", s.Element, f.Name, ErrProvisionalNotRef)
		}
	}
	if identities != 1 {
		return fmt.Errorf("%s: %w", s.Element, ErrNoIdentityField)
	}
	return nil
}

// Identity returns the identity field.
func (s *Schema) Identity() Field {
	f, _ := s.ByRole(RoleIdentity)
	return f
}

// ByRole returns the first field carrying the given role.
func (s *Schema) ByRole(role Role) (Field, bool) {
	for _, f := range s.Fields {
		if f.Role == role {
			return f, true
		}
	}
	return Field{}, false
}

// ByName returns the field with the given column name.
func (s *Schema) ByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// HasLines reports whether the element owns a line table.
func (s *Schema) HasLines() bool {
	return s.Child != nil && s.Child.Table != ""
}
