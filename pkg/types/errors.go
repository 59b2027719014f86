package types

import (
	"errors"
	"fmt"
	"strings"
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrUnknownElement  = errors.New("unknown element")
)

// Record operation errors.
var (
	// ErrNotFound reports a zero-result lookup. It is a valid outcome,
	// distinguished from storage failures which are wrapped errors.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidArgument reports caller misuse, such as a fetch with
	// neither an identity nor a reference.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRecordDeleteStatus guards line deletion on canceled records.
	ErrRecordDeleteStatus = errors.New("delete not allowed by record status")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidFilter     = errors.New("invalid filter value type")

	// ErrReferenceNotEligible reports a reference value whose target record
	// is absent or fails the field's eligibility filter, such as pointing a
	// filtered reference at a draft record.
	ErrReferenceNotEligible = errors.New("referenced record missing or not eligible")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrPrefixInvalid  = errors.New("table prefix must be a short identifier")
)

// Schema validation errors.
var (
	ErrNoIdentityField        = errors.New("schema must declare exactly one identity field")
	ErrUnknownReferenceTarget = errors.New("reference field names an unknown element")
	ErrProvisionalNotRef      = errors.New("provisional default is only valid on the reference field")
)

// ValidationError reports every required field that was missing from a
// create call. All failures are accumulated before the create fails, so
// callers can surface the complete list at once.
type ValidationError struct {
	Element string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: required fields missing: %s",
		e.Element, strings.Join(e.Fields, ", "))
}

// SideEffectError reports a post-commit side effect failure, such as a
// document regeneration hook. The state transition it followed has already
// committed and must not be treated as rolled back.
type SideEffectError struct {
	Op  string
	Err error
}

func (e *SideEffectError) Error() string {
	return fmt.Sprintf("%s side effect failed: %v", e.Op, e.Err)
}

func (e *SideEffectError) Unwrap() error { return e.Err }
