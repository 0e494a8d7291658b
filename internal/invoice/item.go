package invoice

import "github.com/kenod/invoice-api/internal/pricing"

// Item is one billable row of a document. Quantity and UnitPrice may be
// fractional or negative; credit notes carry negative rows.
type Item struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Unit      string  `json:"unit,omitempty"`
	VATRate   float64 `json:"vatRate,omitempty"`
	Special   bool    `json:"special,omitempty"`
	EAN       *int64  `json:"ean,omitempty"`
	Note      string  `json:"note,omitempty"`
}

// PricingItem reduces the row to the fields the calculator needs.
func (i Item) PricingItem() pricing.Item {
	return pricing.Item{Quantity: i.Quantity, UnitPrice: i.UnitPrice, VATRate: i.VATRate}
}

// PricingItems converts an ordered item list for a calculation pass.
func PricingItems(items []Item) []pricing.Item {
	out := make([]pricing.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.PricingItem())
	}
	return out
}
