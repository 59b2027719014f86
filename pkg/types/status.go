package types

// Status is the shared record lifecycle: a draft record is validated or
// canceled, and both of those states are terminal.
type Status int

const (
	StatusDraft     Status = 0
	StatusValidated Status = 1
	StatusCanceled  Status = 9
)

// CanTransition reports whether moving from s to target is a legal
// lifecycle step. Only Draft→Validated and Draft→Canceled are modeled;
// there is no way back to Draft.
func (s Status) CanTransition(target Status) bool {
	if s != StatusDraft {
		return false
	}
	return target == StatusValidated || target == StatusCanceled
}

// Label returns the translation key for the status.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "StatusDraft"
	case StatusValidated:
		return "StatusValidated"
	case StatusCanceled:
		return "StatusCanceled"
	default:
		return "StatusUnknown"
	}
}
