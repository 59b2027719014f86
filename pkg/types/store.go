package types

// Store is the backend-agnostic storage entry point. Callers attach to a
// backend, obtain a record engine per element, and detach when done.
type Store interface {
	// Engine returns the record engine for the named element.
	// Returns ErrUnknownElement for names outside the schema registry.
	Engine(element string) (RecordEngine, error)

	// Resolve looks up a dictionary entry by identity, code, or label.
	// A missing entry is a Found=false result; only query failures error.
	Resolve(dict, key string, mode DictMode) (DictValue, error)

	// Reconcile recomputes the derived paid/outstanding balances across
	// payments, receipts, and agreements in one transaction.
	Reconcile() error

	// Attach connects the store to the backend described by config.
	// Returns ErrAlreadyAttached while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// operations return ErrStoreDetached.
	Detach() error
}

// RecordEngine provides the generic persistence operations for one
// element, driven entirely by its Schema.
type RecordEngine interface {
	// Create persists a new record inside one transaction and returns the
	// generated identity. Missing required fields accumulate into a single
	// ValidationError and nothing is written.
	Create(rec *Record, actor int64) (int64, error)

	// Fetch loads a record by identity or reference (exactly one must be
	// set, otherwise ErrInvalidArgument). Dictionary fields come back with
	// resolved code and label companions. Returns ErrNotFound when no row
	// matches.
	Fetch(id int64, ref string) (*Record, error)

	// List returns records matching the filter; an empty filter matches
	// all rows of the element.
	List(filter map[string]any) ([]*Record, error)

	// Update persists all current field values for an existing identity
	// and stamps the modifier.
	Update(rec *Record, actor int64) error

	// Delete removes the record, its extension attributes, and its owned
	// lines in one transaction. Refuses with ErrRecordDeleteStatus when
	// the record is canceled and still owns lines.
	Delete(id int64, actor int64) error

	// Clone duplicates a record: identity, creator, and import key
	// cleared, unique extension attributes dropped, status reset to
	// Draft, and the label marked as a copy. Returns the new identity.
	Clone(fromID int64, actor int64) (int64, error)

	// Validate transitions a draft record to Validated. The transition
	// commits before after runs; a failing after is reported as a
	// SideEffectError and does not undo the transition.
	Validate(id int64, actor int64, after func() error) error

	// Cancel transitions a draft record to Canceled.
	Cancel(id int64, actor int64) error
}

// DictMode selects the shape of a dictionary lookup result.
type DictMode int

const (
	DictLabel     DictMode = iota // resolved label only
	DictCodeLabel                 // "code - label"
	DictCode                      // code only
	DictID                        // identity only
	DictAll                       // full tuple
)

// DictValue is a resolved dictionary entry. Found is false when the key
// matched no row, which is a valid outcome rather than an error.
type DictValue struct {
	Found   bool
	ID      int64
	Code    string
	Label   string
	Display string // mode-selected rendering
}

// Translator resolves localization keys. The dictionary resolver consults
// it with "<DictionaryName><Code>" keys and falls back to the stored label.
type Translator interface {
	Translate(key, fallback string) string
}

// MapTranslator is a static in-memory Translator.
type MapTranslator map[string]string

func (m MapTranslator) Translate(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
