package invoice

import "github.com/kenod/invoice-api/internal/pricing"

// DefaultReverseChargeText is printed instead of a VAT summary when the
// document is in reverse-charge mode and no override text is set.
const DefaultReverseChargeText = "Daň odvede zákazník."

// DefaultVATRateLabels names the Czech VAT rates in force since 2024.
func DefaultVATRateLabels() map[string]string {
	return map[string]string{
		"0":  "Nulová sazba",
		"12": "Snížená sazba",
		"21": "Základní sazba",
	}
}

// AdditionalInfo carries the reference block shown on credit notes and
// storno documents: the corrected document number and the reason.
type AdditionalInfo struct {
	OriginalDocument string `json:"originalDocument,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// Settings bundles everything that shapes a document's calculation and
// presentation. The zero value is not usable; construct via NewSettings.
type Settings struct {
	Type              DocumentType      `json:"type"`
	VATPayer          bool              `json:"vatPayer"`
	ReverseCharge     bool              `json:"reverseCharge"`
	ReverseChargeText string            `json:"reverseChargeText,omitempty"`
	Currency          string            `json:"currency"`
	VATRateLabels     map[string]string `json:"vatRateLabels,omitempty"`
	Discount          *pricing.Discount `json:"discount,omitempty"`
	Rounding          pricing.Rounding  `json:"rounding"`
	Deposits          []float64         `json:"deposits,omitempty"`
	ShowAlreadyPaid   bool              `json:"showAlreadyPaid"`
	AdditionalInfo    *AdditionalInfo   `json:"additionalInfo,omitempty"`
	Language          string            `json:"language,omitempty"`
}

// NewSettings returns the defaults: a VAT-payer invoice in CZK with the
// current Czech rate labels and no rounding.
func NewSettings() Settings {
	return Settings{
		Type:          TypeInvoice,
		VATPayer:      true,
		Currency:      "CZK",
		VATRateLabels: DefaultVATRateLabels(),
	}
}

// ReverseChargeNotice returns the text shown instead of the VAT summary,
// or empty when the document is not reverse-charged.
func (s Settings) ReverseChargeNotice() string {
	if !s.ReverseCharge {
		return ""
	}
	if s.ReverseChargeText != "" {
		return s.ReverseChargeText
	}
	return DefaultReverseChargeText
}

// VATRateLabel names a bucket rate key, falling back to the key itself.
func (s Settings) VATRateLabel(rateKey string) string {
	if label, ok := s.VATRateLabels[rateKey]; ok {
		return label
	}
	return rateKey
}

// PricingConfig reduces the settings to the calculator's adjustment config.
// Multiple deposits collapse into one subtracted amount.
func (s Settings) PricingConfig() pricing.Config {
	cfg := pricing.Config{
		VATPayer:      s.VATPayer,
		ReverseCharge: s.ReverseCharge,
		Rounding:      s.Rounding,
	}
	if s.Discount != nil {
		cfg.Discount = *s.Discount
	}
	for _, d := range s.Deposits {
		cfg.Deposits += d
	}
	return cfg
}
