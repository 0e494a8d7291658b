package payment

import (
	"fmt"
	"strconv"
	"strings"
)

// IBAN is a checksummed Czech IBAN together with the resolved BIC.
type IBAN struct {
	Value string // compact 24-character form, e.g. CZ6508000000000197220727
	BIC   string // empty when the bank code is unknown
}

// Formatted returns the IBAN grouped into blocks of four separated by spaces,
// the form printed on documents.
func (i IBAN) Formatted() string {
	var b strings.Builder
	for at := 0; at < len(i.Value); at += 4 {
		if at > 0 {
			b.WriteByte(' ')
		}
		end := at + 4
		if end > len(i.Value) {
			end = len(i.Value)
		}
		b.WriteString(i.Value[at:end])
	}
	return b.String()
}

// EncodeIBAN validates the account parts and produces the Czech IBAN.
// When requireBIC is set, an unknown bank code is an error; otherwise the
// IBAN is produced with an empty BIC.
func EncodeIBAN(number, bankCode, prefix string, requireBIC bool) (IBAN, error) {
	acc, err := NormalizeAccount(number, bankCode, prefix)
	if err != nil {
		return IBAN{}, err
	}
	if requireBIC && acc.BIC == "" {
		return IBAN{}, ErrBICNotFound
	}

	// "123500" stands for the country code CZ plus the "00" check placeholder
	// of the ISO 7064 scheme (C=12, Z=35).
	remainder := mod97(acc.BankCode + acc.Prefix + acc.Number + "123500")
	check := fmt.Sprintf("%02d", 98-remainder)

	return IBAN{
		Value: "CZ" + check + acc.BankCode + acc.Prefix + acc.Number,
		BIC:   acc.BIC,
	}, nil
}

// LookupBIC resolves the SWIFT/BIC code for a 4-digit bank code.
func LookupBIC(bankCode string) (string, error) {
	bic, ok := bankBICTable[padLeft(bankCode, 4)]
	if !ok || bic == "" {
		return "", ErrBICNotFound
	}
	return bic, nil
}

// mod97 computes the ISO 7064 MOD-97-10 remainder of an arbitrarily long
// digit string using chunked long division. The operand exceeds 64-bit range
// for full account numbers, so it is processed as a digit stream: nine digits
// first, then the running remainder prepended to eight- or seven-digit chunks
// depending on the remainder's width.
func mod97(digits string) int {
	remainder := -1
	at := 0
	for at < len(digits) {
		var chunk string
		switch {
		case remainder < 0:
			chunk = take(digits, at, 9)
			at += 9
		case remainder <= 9:
			chunk = strconv.Itoa(remainder) + take(digits, at, 8)
			at += 8
		default:
			chunk = strconv.Itoa(remainder) + take(digits, at, 7)
			at += 7
		}
		value, _ := strconv.ParseInt(chunk, 10, 64)
		remainder = int(value % 97)
	}
	return remainder
}

func take(s string, at, n int) string {
	if at >= len(s) {
		return ""
	}
	if at+n > len(s) {
		return s[at:]
	}
	return s[at : at+n]
}
