package payment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeQRStringFull(t *testing.T) {
	out, err := EncodeQRString(QRPayment{
		IBAN:           "CZ65 0800 0000 1920 0014 5399",
		BIC:            "GIBACZPX",
		Amount:         414.5,
		VariableSymbol: "20240001",
		ConstantSymbol: "0308",
		SpecificSymbol: "55",
	})
	require.NoError(t, err)
	require.Equal(t,
		"SPD*1.0*ACC:CZ6508000000192000145399+GIBACZPX*AM:414.5*X-VS:20240001*X-KS:0308*X-SS:55",
		out)
}

func TestEncodeQRStringMinimal(t *testing.T) {
	out, err := EncodeQRString(QRPayment{IBAN: "CZ6508000000192000145399", Amount: 100})
	require.NoError(t, err)
	require.Equal(t, "SPD*1.0*ACC:CZ6508000000192000145399*AM:100", out)
}

func TestEncodeQRStringOmitsEmptySymbols(t *testing.T) {
	out, err := EncodeQRString(QRPayment{
		IBAN:           "CZ6508000000192000145399",
		Amount:         99.99,
		ConstantSymbol: "0308",
	})
	require.NoError(t, err)
	require.Equal(t, "SPD*1.0*ACC:CZ6508000000192000145399*AM:99.99*X-KS:0308", out)
}

func TestEncodeQRStringAmountRounding(t *testing.T) {
	out, err := EncodeQRString(QRPayment{IBAN: "CZ6508000000192000145399", Amount: 123.456})
	require.NoError(t, err)
	require.Equal(t, "SPD*1.0*ACC:CZ6508000000192000145399*AM:123.46", out)
}

func TestEncodeQRStringSkips(t *testing.T) {
	_, err := EncodeQRString(QRPayment{IBAN: "", Amount: 100})
	require.ErrorIs(t, err, ErrEncodingSkipped)

	_, err = EncodeQRString(QRPayment{IBAN: "CZ6508000000192000145399", Amount: 0})
	require.ErrorIs(t, err, ErrEncodingSkipped)

	_, err = EncodeQRString(QRPayment{IBAN: "CZ6508000000192000145399", Amount: -5})
	require.ErrorIs(t, err, ErrEncodingSkipped)
}
