package payment

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidAccountNumber is returned when the prefix or account number
	// fails the domestic checksum, contains non-digits, or is all zeros.
	ErrInvalidAccountNumber = errors.New("invalid account number")
	// ErrBICNotFound indicates the bank code is not present in the BIC table.
	ErrBICNotFound = errors.New("bank code has no known BIC")
)

// Account is the validated, zero-padded representation of a Czech bank
// account. It is recomputed per call and never cached across calls.
type Account struct {
	Prefix   string // 6 digits
	Number   string // 10 digits
	BankCode string // 4 digits
	BIC      string // empty when the bank code is unknown
}

// checksumWeights are applied to digits right to left; the weighted sum must
// be divisible by 11.
var checksumWeights = [10]int{1, 2, 4, 8, 5, 10, 9, 7, 3, 6}

type numberClass int

const (
	numberValid numberClass = iota
	numberZero              // all digits zero, checksum trivially passes
	numberInvalid
)

// classify runs the weighted mod-11 checksum over a zero-padded number.
// Any non-digit character invalidates the whole number.
func classify(number string) numberClass {
	sum := 0
	allZero := true
	weight := 0
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return numberInvalid
		}
		if c != '0' {
			allZero = false
			sum += int(c-'0') * checksumWeights[weight]
		}
		weight++
	}
	if sum%11 != 0 {
		return numberInvalid
	}
	if allZero {
		return numberZero
	}
	return numberValid
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// padLeft zero-pads s to width, keeping the rightmost characters when the
// input is already longer.
func padLeft(s string, width int) string {
	s = stripSpaces(s)
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return strings.Repeat("0", width-len(s)) + s
}

// NormalizeAccount validates and pads the raw account parts into an Account.
// The account number may carry the prefix inline as "prefix-number". A fully
// zero account number is rejected; a zero prefix is allowed. The BIC is
// resolved from the static table and left empty when the bank is unknown.
func NormalizeAccount(number, bankCode, prefix string) (Account, error) {
	if at := strings.IndexByte(number, '-'); at >= 0 {
		prefix = number[:at]
		number = number[at+1:]
	}

	acc := Account{
		Prefix:   padLeft(prefix, 6),
		Number:   padLeft(number, 10),
		BankCode: padLeft(bankCode, 4),
	}

	if classify(acc.Prefix) == numberInvalid {
		return Account{}, ErrInvalidAccountNumber
	}
	if classify(acc.Number) != numberValid {
		return Account{}, ErrInvalidAccountNumber
	}

	acc.BIC = bankBICTable[acc.BankCode]
	return acc, nil
}
