package types

// Element names for Store.Engine.
const (
	ElementProperty  = "property"
	ElementOwner     = "owner"
	ElementRenter    = "renter"
	ElementAgreement = "agreement"
	ElementReceipt   = "receipt"
	ElementPayment   = "payment"

	// ElementRenterAccount holds a renter's bank details for rent
	// collection. Accounts have no lifecycle of their own; they are
	// plain records attached to a validated renter.
	ElementRenterAccount = "renter_account"
)

// ElementNames lists all registered elements for enumeration.
var ElementNames = []string{
	ElementProperty,
	ElementOwner,
	ElementRenter,
	ElementAgreement,
	ElementReceipt,
	ElementPayment,
	ElementRenterAccount,
}

// Dictionary describes one coded lookup table. Rows are (rowid, code,
// label); labels localize through "<KeyPrefix><Code>" translation keys.
type Dictionary struct {
	Name      string // resolver name, e.g. "country"
	Table     string // table name without prefix
	KeyPrefix string // translation key prefix, e.g. "Country"
}

// Dictionaries registers the coded lookup tables.
var Dictionaries = map[string]Dictionary{
	"country":       {Name: "country", Table: "c_country", KeyPrefix: "Country"},
	"legal_form":    {Name: "legal_form", Table: "c_legal_form", KeyPrefix: "LegalForm"},
	"built_date":    {Name: "built_date", Table: "c_built_date", KeyPrefix: "BuiltDate"},
	"property_type": {Name: "property_type", Table: "c_property_type", KeyPrefix: "PropertyType"},
	"payment_mode":  {Name: "payment_mode", Table: "c_payment_mode", KeyPrefix: "PaymentMode"},
}

// bookkeeping returns the audit columns shared by every element: creation
// and modification timestamps, acting users, and the import key.
func bookkeeping() []Field {
	return []Field{
		{Name: "created_at", Type: TypeDatetime, NotNull: Required, Position: 500, Role: RoleCreatedAt},
		{Name: "updated_at", Type: TypeDatetime, NotNull: NullIfEmpty, Position: 501, Role: RoleUpdatedAt},
		{Name: "created_by", Type: TypeInteger, NotNull: Required, Position: 510, Role: RoleCreator},
		{Name: "updated_by", Type: TypeInteger, NotNull: NullIfEmpty, Position: 511, Role: RoleModifier},
		{Name: "import_key", Type: TypeVarchar, Length: 14, NotNull: NullIfEmpty, Position: 1000, Role: RoleImportKey},
	}
}

// statusField is the shared lifecycle column.
func statusField() Field {
	return Field{Name: "status", Type: TypeInteger, NotNull: Required, Default: "0", Indexed: true, Position: 1000, Role: RoleStatus}
}

// Schemas registers the record schemas for all elements. The record engine
// derives every CRUD statement from these descriptors.
var Schemas = map[string]*Schema{
	ElementProperty: {
		Element: ElementProperty,
		Table:   "property",
		Fields: append([]Field{
			{Name: "rowid", Type: TypeInteger, NotNull: Required, Indexed: true, Position: 1, Role: RoleIdentity},
			{Name: "ref", Type: TypeVarchar, Length: 128, NotNull: Required, Default: DefaultProvisional, Indexed: true, Position: 10, Role: RoleRef},
			{Name: "label", Type: TypeVarchar, Length: 255, NotNull: Required, Position: 30, Role: RoleLabel},
			{Name: "property_type_id", Type: TypeInteger, NotNull: Required, Dict: "property_type", Position: 20},
			{Name: "fk_parent", Type: TypeReference, Ref: ElementProperty, NotNull: NullIfEmpty, Position: 25},
			{Name: "legal_form_id", Type: TypeInteger, NotNull: NullIfEmpty, Dict: "legal_form", Position: 32},
			{Name: "built_date_id", Type: TypeInteger, NotNull: NullIfEmpty, Dict: "built_date", Position: 35},
			{Name: "target", Type: TypeInteger, NotNull: NullIfEmpty, Position: 40},
			{Name: "fk_owner", Type: TypeReference, Ref: ElementOwner, RefFilter: "status = 1", NotNull: Required, Indexed: true, Position: 45},
			{Name: "address", Type: TypeVarchar, Length: 255, NotNull: NullIfEmpty, Position: 60},
			{Name: "building", Type: TypeVarchar, Length: 32, NotNull: NullIfEmpty, Position: 65},
			{Name: "staircase", Type: TypeVarchar, Length: 8, NotNull: NullIfEmpty, Position: 70},
			{Name: "floor", Type: TypeVarchar, Length: 8, NotNull: NullIfEmpty, Position: 75},
			{Name: "flat", Type: TypeVarchar, Length: 8, NotNull: NullIfEmpty, Position: 80},
			{Name: "door", Type: TypeVarchar, Length: 8, NotNull: NullIfEmpty, Position: 85},
			{Name: "area", Type: TypeVarchar, Length: 8, NotNull: NullIfEmpty, Position: 90},
			{Name: "rooms", Type: TypeInteger, NotNull: NullIfEmpty, Position: 92},
			{Name: "zip", Type: TypeVarchar, Length: 32, NotNull: NullIfEmpty, Position: 95},
			{Name: "town", Type: TypeVarchar, Length: 64, NotNull: NullIfEmpty, Position: 100},
			{Name: "country_id", Type: TypeInteger, NotNull: NullIfEmpty, Dict: "country", Position: 110},
			{Name: "amenities", Type: TypeList, NotNull: Nullable, Position: 115},
			{Name: "note_public", Type: TypeText, NotNull: NullIfEmpty, Position: 50},
			{Name: "note_private", Type: TypeText, NotNull: NullIfEmpty, Position: 55},
			statusField(),
		}, bookkeeping()...),
		Child: &ChildConfig{
			Table:     "property_unit",
			ParentKey: "fk_property",
			Fields: []Field{
				{Name: "label", Type: TypeVarchar, Length: 255, NotNull: Required, Position: 10, Role: RoleLabel},
				{Name: "floor", Type: TypeVarchar, Length: 8, NotNull: NullIfEmpty, Position: 20},
				{Name: "area", Type: TypeDecimal, NotNull: NullIfEmpty, Position: 30, Role: RoleAmount},
				{Name: "status", Type: TypeInteger, NotNull: Required, Default: "0", Position: 40, Role: RoleStatus},
			},
		},
	},
	ElementOwner: {
		Element: ElementOwner,
		Table:   "owner",
		Fields: append([]Field{
			{Name: "rowid", Type: TypeInteger, NotNull: Required, Indexed: true, Position: 1, Role: RoleIdentity},
			{Name: "ref", Type: TypeVarchar, Length: 128, NotNull: Required, Default: DefaultProvisional, Indexed: true, Position: 10, Role: RoleRef},
			{Name: "lastname", Type: TypeVarchar, Length: 64, NotNull: Required, Position: 20, Role: RoleLabel},
			{Name: "firstname", Type: TypeVarchar, Length: 64, NotNull: NullIfEmpty, Position: 25},
			{Name: "address", Type: TypeVarchar, Length: 255, NotNull: NullIfEmpty, Position: 30},
			{Name: "zip", Type: TypeVarchar, Length: 32, NotNull: NullIfEmpty, Position: 35},
			{Name: "town", Type: TypeVarchar, Length: 64, NotNull: NullIfEmpty, Position: 40},
			{Name: "country_id", Type: TypeInteger, NotNull: NullIfEmpty, Dict: "country", Position: 45},
			{Name: "email", Type: TypeVarchar, Length: 128, NotNull: NullIfEmpty, Position: 50},
			{Name: "phone", Type: TypeVarchar, Length: 32, NotNull: NullIfEmpty, Position: 55},
			{Name: "note_private", Type: TypeText, NotNull: NullIfEmpty, Position: 60},
			statusField(),
		}, bookkeeping()...),
	},
	ElementRenter: {
		Element: ElementRenter,
		Table:   "renter",
		Fields: append([]Field{
			{Name: "rowid", Type: TypeInteger, NotNull: Required, Indexed: true, Position: 1, Role: RoleIdentity},
			{Name: "ref", Type: TypeVarchar, Length: 128, NotNull: Required, Default: DefaultProvisional, Indexed: true, Position: 10, Role: RoleRef},
			{Name: "lastname", Type: TypeVarchar, Length: 64, NotNull: Required, Position: 20, Role: RoleLabel},
			{Name: "firstname", Type: TypeVarchar, Length: 64, NotNull: NullIfEmpty, Position: 25},
			{Name: "civility", Type: TypeVarchar, Length: 16, NotNull: NullIfEmpty, Position: 27},
			{Name: "address", Type: TypeVarchar, Length: 255, NotNull: NullIfEmpty, Position: 30},
			{Name: "zip", Type: TypeVarchar, Length: 32, NotNull: NullIfEmpty, Position: 35},
			{Name: "town", Type: TypeVarchar, Length: 64, NotNull: NullIfEmpty, Position: 40},
			{Name: "country_id", Type: TypeInteger, NotNull: NullIfEmpty, Dict: "country", Position: 45},
			{Name: "email", Type: TypeVarchar, Length: 128, NotNull: NullIfEmpty, Position: 50},
			{Name: "phone", Type: TypeVarchar, Length: 32, NotNull: NullIfEmpty, Position: 55},
			{Name: "birth_date", Type: TypeDate, NotNull: NullIfEmpty, Position: 57},
			{Name: "note_private", Type: TypeText, NotNull: NullIfEmpty, Position: 60},
			statusField(),
		}, bookkeeping()...),
	},
	ElementAgreement: {
		Element: ElementAgreement,
		Table:   "agreement",
		Fields: append([]Field{
			{Name: "rowid", Type: TypeInteger, NotNull: Required, Indexed: true, Position: 1, Role: RoleIdentity},
			{Name: "ref", Type: TypeVarchar, Length: 128, NotNull: Required, Default: DefaultProvisional, Indexed: true, Position: 10, Role: RoleRef},
			{Name: "label", Type: TypeVarchar, Length: 255, NotNull: Required, Position: 20, Role: RoleLabel},
			{Name: "fk_property", Type: TypeReference, Ref: ElementProperty, NotNull: Required, Indexed: true, Position: 30},
			{Name: "fk_renter", Type: TypeReference, Ref: ElementRenter, RefFilter: "status = 1", NotNull: Required, Indexed: true, Position: 35},
			{Name: "date_start", Type: TypeDate, NotNull: Required, Position: 40},
			{Name: "date_end", Type: TypeDate, NotNull: NullIfEmpty, Position: 45},
			{Name: "rent_amount", Type: TypeDecimal, NotNull: Required, Position: 50, Role: RoleAmount},
			{Name: "charges_amount", Type: TypeDecimal, NotNull: NullIfEmpty, Position: 55, Role: RoleAmount},
			// Derived by the reconciliation pass; never set directly.
			{Name: "outstanding", Type: TypeDecimal, NotNull: NullIfEmpty, Default: "0", Position: 60, Role: RoleAmount},
			{Name: "note_private", Type: TypeText, NotNull: NullIfEmpty, Position: 70},
			statusField(),
		}, bookkeeping()...),
	},
	ElementReceipt: {
		Element: ElementReceipt,
		Table:   "receipt",
		Fields: append([]Field{
			{Name: "rowid", Type: TypeInteger, NotNull: Required, Indexed: true, Position: 1, Role: RoleIdentity},
			{Name: "ref", Type: TypeVarchar, Length: 128, NotNull: Required, Default: DefaultProvisional, Indexed: true, Position: 10, Role: RoleRef},
			{Name: "label", Type: TypeVarchar, Length: 255, NotNull: Required, Position: 20, Role: RoleLabel},
			{Name: "fk_agreement", Type: TypeReference, Ref: ElementAgreement, NotNull: Required, Indexed: true, Position: 30},
			{Name: "date_start", Type: TypeDate, NotNull: Required, Position: 40},
			{Name: "date_end", Type: TypeDate, NotNull: Required, Position: 45},
			{Name: "total_amount", Type: TypeDecimal, NotNull: Required, Position: 50, Role: RoleAmount},
			// partial_payment, balance, and paid are derived by the
			// reconciliation pass; never set directly.
			{Name: "partial_payment", Type: TypeDecimal, NotNull: NullIfEmpty, Default: "0", Position: 55, Role: RoleAmount},
			{Name: "balance", Type: TypeDecimal, NotNull: NullIfEmpty, Default: "0", Position: 60, Role: RoleAmount},
			{Name: "paid", Type: TypeBoolean, NotNull: Required, Default: "0", Position: 65},
			{Name: "note_private", Type: TypeText, NotNull: NullIfEmpty, Position: 70},
			statusField(),
		}, bookkeeping()...),
	},
	ElementPayment: {
		Element: ElementPayment,
		Table:   "payment",
		Fields: append([]Field{
			{Name: "rowid", Type: TypeInteger, NotNull: Required, Indexed: true, Position: 1, Role: RoleIdentity},
			{Name: "ref", Type: TypeVarchar, Length: 128, NotNull: Required, Default: DefaultProvisional, Indexed: true, Position: 10, Role: RoleRef},
			{Name: "fk_receipt", Type: TypeReference, Ref: ElementReceipt, NotNull: Required, Indexed: true, Position: 20},
			{Name: "amount", Type: TypeDecimal, NotNull: Required, Position: 30, Role: RoleAmount},
			{Name: "date_payment", Type: TypeDate, NotNull: Required, Position: 40},
			{Name: "payment_mode_id", Type: TypeInteger, NotNull: NullIfEmpty, Dict: "payment_mode", Position: 50},
			{Name: "comment", Type: TypeText, NotNull: NullIfEmpty, Position: 60},
		}, bookkeeping()...),
	},
	ElementRenterAccount: {
		Element: ElementRenterAccount,
		Table:   "renter_account",
		Fields: append([]Field{
			{Name: "rowid", Type: TypeInteger, NotNull: Required, Indexed: true, Position: 1, Role: RoleIdentity},
			{Name: "ref", Type: TypeVarchar, Length: 128, NotNull: Required, Default: DefaultProvisional, Indexed: true, Position: 10, Role: RoleRef},
			{Name: "fk_renter", Type: TypeReference, Ref: ElementRenter, RefFilter: "status = 1", NotNull: Required, Indexed: true, Position: 20},
			// The account label is optional; an empty label falls back to
			// the bare account rendering.
			{Name: "label", Type: TypeVarchar, Length: 255, NotNull: NullIfEmpty, Position: 25, Role: RoleLabel},
			{Name: "bank", Type: TypeVarchar, Length: 128, NotNull: NullIfEmpty, Position: 30},
			{Name: "bank_code", Type: TypeVarchar, Length: 16, NotNull: NullIfEmpty, Position: 35},
			{Name: "branch_code", Type: TypeVarchar, Length: 16, NotNull: NullIfEmpty, Position: 40},
			{Name: "account_number", Type: TypeVarchar, Length: 32, NotNull: NullIfEmpty, Position: 45},
			{Name: "check_digits", Type: TypeVarchar, Length: 8, NotNull: NullIfEmpty, Position: 50},
			{Name: "bic", Type: TypeVarchar, Length: 16, NotNull: NullIfEmpty, Position: 55},
			{Name: "iban", Type: TypeVarchar, Length: 40, NotNull: NullIfEmpty, Position: 60},
			{Name: "domiciliation", Type: TypeVarchar, Length: 255, NotNull: NullIfEmpty, Position: 65},
			{Name: "owner_name", Type: TypeVarchar, Length: 128, NotNull: NullIfEmpty, Position: 70},
			{Name: "owner_address", Type: TypeVarchar, Length: 255, NotNull: NullIfEmpty, Position: 75},
		}, bookkeeping()...),
	},
}
