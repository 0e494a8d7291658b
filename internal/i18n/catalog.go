// Package i18n holds the static label catalogue used for renderer-facing
// document labels. Catalogues are read-only and safe for concurrent use.
package i18n

// DefaultLanguage is used when the requested language has no catalogue.
const DefaultLanguage = "en"

var catalogues = map[string]map[string]string{
	"en": {
		"based_on_order_no": "Based on order no.:",
		"from_date":         "From date:",
		"issue_date":        "Issue date:",
		"due_date":          "Due date:",
		"tax_point_date":    "Taxable supply date:",
		"payment_method":    "Payment method:",
		"account_number":    "Account number:",
		"bank_code":         "Bank code:",
		"variable_symbol":   "Variable symbol:",
		"constant_symbol":   "Constant symbol:",
		"specific_symbol":   "Specific symbol:",
		"Czech Republic":    "Czech Republic",
	},
	"cs": {
		"based_on_order_no": "Na základě objednávky č.:",
		"from_date":         "Ze dne:",
		"issue_date":        "Datum vystavení:",
		"due_date":          "Datum splatnosti:",
		"tax_point_date":    "Datum zdanitelného plnění:",
		"payment_method":    "Způsob platby:",
		"account_number":    "Číslo účtu:",
		"bank_code":         "Kód banky:",
		"variable_symbol":   "Variabilní symbol:",
		"constant_symbol":   "Konstantní symbol:",
		"specific_symbol":   "Specifický symbol:",
		"Czech Republic":    "Česká republika",
	},
	"sk": {
		"based_on_order_no": "Na základe objednávky č.:",
		"from_date":         "Zo dňa:",
		"issue_date":        "Dátum vystavenia:",
		"due_date":          "Dátum splatnosti:",
		"tax_point_date":    "Dátum zdaniteľného plnenia:",
		"payment_method":    "Spôsob platby:",
		"account_number":    "Číslo účtu:",
		"bank_code":         "Kód banky:",
		"variable_symbol":   "Variabilný symbol:",
		"constant_symbol":   "Konštantný symbol:",
		"specific_symbol":   "Špecifický symbol:",
		"Czech Republic":    "Česká republika",
	},
}

// T translates a label key for the given language, falling back to English
// and finally to the key itself when no translation exists.
func T(lang, key string) string {
	if c, ok := catalogues[lang]; ok {
		if v, ok := c[key]; ok {
			return v
		}
	}
	if v, ok := catalogues[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// HasLanguage reports whether a catalogue exists for the language.
func HasLanguage(lang string) bool {
	_, ok := catalogues[lang]
	return ok
}
