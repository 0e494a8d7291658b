package invoice

import "github.com/kenod/invoice-api/internal/i18n"

// Address is a plain value record for a supplier, customer or final
// recipient. The renderer reads it verbatim.
type Address struct {
	Company    string `json:"company,omitempty"`
	Name       string `json:"name,omitempty"`
	Street     string `json:"street,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	CompanyID  string `json:"companyId,omitempty"`
	TaxID      string `json:"taxId,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Web        string `json:"web,omitempty"`
}

// NewAddress returns an address with the default country.
func NewAddress() Address {
	return Address{Country: "Czech Republic"}
}

// Localize translates the country name when a catalogue entry exists.
func (a *Address) Localize(lang string) {
	a.Country = i18n.T(lang, a.Country)
}

// Properties returns the non-empty fields keyed by name, the form the
// renderer iterates over.
func (a Address) Properties() map[string]string {
	out := make(map[string]string)
	add := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	add("company", a.Company)
	add("name", a.Name)
	add("street", a.Street)
	add("postalCode", a.PostalCode)
	add("city", a.City)
	add("country", a.Country)
	add("companyId", a.CompanyID)
	add("taxId", a.TaxID)
	add("phone", a.Phone)
	add("email", a.Email)
	add("web", a.Web)
	return out
}
