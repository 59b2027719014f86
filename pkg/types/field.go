package types

// FieldType is the semantic type of a field descriptor. It drives column
// DDL, value quoting on save, and coercion on load.
type FieldType string

const (
	TypeInteger   FieldType = "integer"
	TypeDecimal   FieldType = "decimal"
	TypeVarchar   FieldType = "varchar"
	TypeText      FieldType = "text"
	TypeDate      FieldType = "date"
	TypeDatetime  FieldType = "datetime"
	TypeBoolean   FieldType = "boolean"
	TypeList      FieldType = "list"
	TypeReference FieldType = "reference"
)

// NullMode describes how a field treats absent values on save.
type NullMode int

const (
	// Nullable fields persist whatever the caller supplied, including NULL.
	Nullable NullMode = 0
	// Required fields with no caller value and no schema default fail the
	// create with a ValidationError.
	Required NullMode = 1
	// NullIfEmpty fields coerce an empty or sentinel value to SQL NULL
	// instead of persisting it literally.
	NullIfEmpty NullMode = -1
)

// Role tags a field with its semantic role so the engine and presentation
// dispatch on declared metadata instead of matching display labels.
type Role int

const (
	RolePlain Role = iota
	// RoleIdentity marks the generated primary identity. Exactly one per schema.
	RoleIdentity
	// RoleRef marks the human-facing natural reference, eligible for the
	// provisional default.
	RoleRef
	RoleLabel
	RoleStatus
	RoleCreatedAt
	RoleUpdatedAt
	RoleCreator
	RoleModifier
	RoleImportKey
	RoleAmount
)

// DefaultProvisional is the reference-field default meaning "generate a
// placeholder now, resolve it from the identity inside the same
// transaction". The stored value becomes "PROV<id>".
const DefaultProvisional = "(PROV)"

// Field is one declarative field descriptor. The record engine consumes an
// ordered list of these; no per-element persistence code exists.
type Field struct {
	Name      string
	Type      FieldType
	Length    int // varchar length, 0 otherwise
	NotNull   NullMode
	Default   string // literal default, or DefaultProvisional on the ref field
	Ref       string // target element for reference fields
	RefFilter string // optional SQL predicate restricting valid targets
	Dict      string // dictionary name for lookup-table fields
	Indexed   bool
	Position  int
	Role      Role
	Unique    bool
}

// IsRef reports whether the field holds a foreign-key reference, either to
// another element or to a dictionary row.
func (f Field) IsRef() bool {
	return f.Type == TypeReference || f.Dict != ""
}
