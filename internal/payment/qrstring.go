package payment

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrEncodingSkipped signals there is nothing to encode into a QR payment
// code (missing IBAN or a non-positive amount). This is an expected outcome,
// not a failure of the input data.
var ErrEncodingSkipped = errors.New("qr payment encoding skipped")

// QRPayment carries the fields serialised into the Czech QR payment string.
// Optional symbols are omitted from the output when empty.
type QRPayment struct {
	IBAN           string
	BIC            string
	Amount         float64
	VariableSymbol string
	ConstantSymbol string
	SpecificSymbol string
}

// EncodeQRString builds the SPD 1.0 payment descriptor consumed by banking
// apps. Field order is fixed: ACC, AM, X-VS, X-KS, X-SS. The amount is
// rounded to two decimals and rendered without trailing zeros.
func EncodeQRString(p QRPayment) (string, error) {
	if p.Amount <= 0 || strings.TrimSpace(p.IBAN) == "" {
		return "", ErrEncodingSkipped
	}

	var b strings.Builder
	b.WriteString("SPD*1.0*ACC:")
	b.WriteString(stripSpaces(p.IBAN))
	if p.BIC != "" {
		b.WriteByte('+')
		b.WriteString(p.BIC)
	}
	b.WriteString("*AM:")
	b.WriteString(formatAmount(p.Amount))
	b.WriteByte('*')
	if p.VariableSymbol != "" {
		b.WriteString("X-VS:")
		b.WriteString(p.VariableSymbol)
		b.WriteByte('*')
	}
	if p.ConstantSymbol != "" {
		b.WriteString("X-KS:")
		b.WriteString(p.ConstantSymbol)
		b.WriteByte('*')
	}
	if p.SpecificSymbol != "" {
		b.WriteString("X-SS:")
		b.WriteString(p.SpecificSymbol)
		b.WriteByte('*')
	}
	return strings.TrimRight(b.String(), "*"), nil
}

// formatAmount rounds to two decimals and prints the shortest decimal form,
// so 100.00 becomes "100" and 100.50 becomes "100.5".
func formatAmount(amount float64) string {
	rounded := math.Round(amount*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
