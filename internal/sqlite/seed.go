package sqlite

import "fmt"

// dictRow is one seeded dictionary entry.
type dictRow struct {
	code  string
	label string
}

// seedRows holds the built-in dictionary values, keyed by dictionary name.
// Labels are the raw stored form; display localization goes through the
// Translator at resolve time.
var seedRows = map[string][]dictRow{
	"country": {
		{"FR", "France"},
		{"BE", "Belgium"},
		{"CH", "Switzerland"},
		{"DE", "Germany"},
		{"ES", "Spain"},
		{"IT", "Italy"},
		{"GB", "United Kingdom"},
		{"US", "United States"},
	},
	"legal_form": {
		{"OWN", "Direct ownership"},
		{"SCI", "Property investment company"},
		{"SARL", "Limited liability company"},
		{"IND", "Joint ownership"},
	},
	"built_date": {
		{"BEFORE1949", "Before 1949"},
		{"FROM1949TO1974", "From 1949 to 1974"},
		{"FROM1975TO1989", "From 1975 to 1989"},
		{"FROM1990TO2005", "From 1990 to 2005"},
		{"AFTER2005", "After 2005"},
	},
	"property_type": {
		{"APARTMENT", "Apartment"},
		{"HOUSE", "House"},
		{"GARAGE", "Garage or parking"},
		{"COMMERCIAL", "Commercial premises"},
		{"LAND", "Land"},
	},
	"payment_mode": {
		{"VIR", "Bank transfer"},
		{"CHQ", "Check"},
		{"LIQ", "Cash"},
		{"CB", "Card"},
		{"PRE", "Direct debit"},
	},
}

// seedExtrafields declares the built-in extension attributes. The cadastral
// reference is unique so clones never collide on it.
var seedExtrafields = []struct {
	element  string
	name     string
	typ      string
	label    string
	unique   bool
	position int
}{
	{"property", "cadastral_ref", "varchar", "Cadastral reference", true, 10},
	{"property", "heating", "varchar", "Heating type", false, 20},
	{"agreement", "deposit_bank", "varchar", "Deposit bank", false, 10},
}

// seedDictionaries inserts the built-in dictionary rows and extension
// attribute declarations. Existing rows are left untouched.
func (b *Backend) seedDictionaries() error {
	for name, rows := range seedRows {
		dict, ok := dictionaryByName(name)
		if !ok {
			return fmt.Errorf("seed references unknown dictionary %q", name)
		}
		for _, r := range rows {
			if _, err := b.db.Exec(
				"INSERT OR IGNORE INTO "+b.table(dict.Table)+" (code, label) VALUES (?, ?)",
				r.code, r.label); err != nil {
				return fmt.Errorf("seeding %s: %w", name, err)
			}
		}
	}

	for _, ef := range seedExtrafields {
		if _, err := b.db.Exec(
			"INSERT OR IGNORE INTO "+b.table("extrafield_def")+
				" (element, name, type, label, is_unique, position) VALUES (?, ?, ?, ?, ?, ?)",
			ef.element, ef.name, ef.typ, ef.label, boolToInt(ef.unique), ef.position); err != nil {
			return fmt.Errorf("seeding extrafield %s.%s: %w", ef.element, ef.name, err)
		}
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
