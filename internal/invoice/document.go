package invoice

import (
	"github.com/google/uuid"

	"github.com/kenod/invoice-api/internal/pricing"
)

// Document is the in-memory model of a single billing document: the ordered
// item ledger plus everything the renderer needs around it. Documents are
// never persisted here.
type Document struct {
	ID             uuid.UUID      `json:"id"`
	Number         string         `json:"number,omitempty"`
	Settings       Settings       `json:"settings"`
	Items          []Item         `json:"items"`
	Information    Information    `json:"information"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	Supplier       Address        `json:"supplier"`
	Customer       Address        `json:"customer"`
	FinalRecipient *Address       `json:"finalRecipient,omitempty"`
}

// NewDocument returns an empty document with default settings and sections.
func NewDocument() *Document {
	return &Document{
		ID:             uuid.New(),
		Settings:       NewSettings(),
		Information:    NewInformation(),
		PaymentDetails: NewPaymentDetails(),
		Supplier:       NewAddress(),
		Customer:       NewAddress(),
	}
}

// AddItem appends one row to the ledger. Order is preserved; the VAT summary
// lists rates in the order their first row appears.
func (d *Document) AddItem(item Item) {
	d.Items = append(d.Items, item)
}

// Compute runs the price calculation for the current ledger and settings.
func (d *Document) Compute() pricing.FinalPrices {
	return pricing.Compute(PricingItems(d.Items), d.Settings.PricingConfig())
}

// Localize rewrites all section labels and the addresses' country names for
// the settings' language. Unknown languages fall back to English labels.
func (d *Document) Localize() {
	lang := d.Settings.Language
	if lang == "" {
		return
	}
	d.Information.Localize(lang)
	d.PaymentDetails.Localize(lang)
	d.Supplier.Localize(lang)
	d.Customer.Localize(lang)
	if d.FinalRecipient != nil {
		d.FinalRecipient.Localize(lang)
	}
}
