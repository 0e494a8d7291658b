package invoice

import (
	"fmt"
	"strings"
)

// DocumentType is the closed set of document kinds the renderer distinguishes.
type DocumentType int

const (
	TypeInvoice DocumentType = iota + 1
	TypeProforma
	TypeCreditNote
	TypeStorno
)

// documentTypeNames maps the wire/legacy aliases to document types. The Czech
// aliases come from the hosting systems this library replaced.
var documentTypeNames = map[string]DocumentType{
	"invoice":     TypeInvoice,
	"faktura":     TypeInvoice,
	"proforma":    TypeProforma,
	"credit_note": TypeCreditNote,
	"odd":         TypeCreditNote,
	"storno":      TypeStorno,
}

// ParseDocumentType resolves a name alias or numeric code string to a type.
func ParseDocumentType(value string) (DocumentType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if t, ok := documentTypeNames[normalized]; ok {
		return t, nil
	}
	switch normalized {
	case "1":
		return TypeInvoice, nil
	case "2":
		return TypeProforma, nil
	case "3":
		return TypeCreditNote, nil
	case "4":
		return TypeStorno, nil
	}
	return 0, fmt.Errorf("unknown document type %q", value)
}

// Valid reports whether the type is one of the defined document kinds.
func (t DocumentType) Valid() bool {
	return t >= TypeInvoice && t <= TypeStorno
}

func (t DocumentType) String() string {
	switch t {
	case TypeInvoice:
		return "invoice"
	case TypeProforma:
		return "proforma"
	case TypeCreditNote:
		return "credit_note"
	case TypeStorno:
		return "storno"
	}
	return fmt.Sprintf("document_type(%d)", int(t))
}

// Code returns the numeric code used by legacy configuration.
func (t DocumentType) Code() int { return int(t) }
