package sqlite

import "github.com/ledgerline/rentbook/pkg/types"

// DefaultTranslations is the built-in English catalog. Callers with their
// own locale wire a Translator through SetTranslator; unknown keys fall
// back to the stored label.
var DefaultTranslations = types.MapTranslator{
	"CopyOf": "Copy of",

	"StatusDraft":     "Draft",
	"StatusValidated": "Validated",
	"StatusCanceled":  "Canceled",

	"CountryFR": "France",
	"CountryBE": "Belgium",
	"CountryCH": "Switzerland",
	"CountryDE": "Germany",
	"CountryES": "Spain",
	"CountryIT": "Italy",
	"CountryGB": "United Kingdom",
	"CountryUS": "United States",

	"LegalFormOWN":  "Direct ownership",
	"LegalFormSCI":  "Property investment company",
	"LegalFormSARL": "Limited liability company",
	"LegalFormIND":  "Joint ownership",

	"BuiltDateBEFORE1949":     "Before 1949",
	"BuiltDateFROM1949TO1974": "From 1949 to 1974",
	"BuiltDateFROM1975TO1989": "From 1975 to 1989",
	"BuiltDateFROM1990TO2005": "From 1990 to 2005",
	"BuiltDateAFTER2005":      "After 2005",

	"PropertyTypeAPARTMENT":  "Apartment",
	"PropertyTypeHOUSE":      "House",
	"PropertyTypeGARAGE":     "Garage or parking",
	"PropertyTypeCOMMERCIAL": "Commercial premises",
	"PropertyTypeLAND":       "Land",

	"PaymentModeVIR": "Bank transfer",
	"PaymentModeCHQ": "Check",
	"PaymentModeLIQ": "Cash",
	"PaymentModeCB":  "Card",
	"PaymentModePRE": "Direct debit",
}
