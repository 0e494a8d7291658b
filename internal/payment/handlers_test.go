package payment_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/kenod/invoice-api/internal/payment"
)

func newRouter() chi.Router {
	h := &payment.Handler{Validate: validator.New()}
	r := chi.NewRouter()
	r.Post("/payments/iban", h.EncodeIBANHandler)
	r.Get("/payments/bic/{bankCode}", h.LookupBICHandler)
	r.Post("/payments/qr", h.EncodeQRHandler)
	return r
}

func do(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestEncodeIBANHandler(t *testing.T) {
	r := newRouter()
	rr := do(t, r, http.MethodPost, "/payments/iban", `{"account":"19-2000145399","bankCode":"0800"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			IBAN          string `json:"iban"`
			IBANFormatted string `json:"ibanFormatted"`
			BIC           string `json:"bic"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "CZ6508000000192000145399", resp.Data.IBAN)
	require.Equal(t, "CZ65 0800 0000 1920 0014 5399", resp.Data.IBANFormatted)
	require.Equal(t, "GIBACZPX", resp.Data.BIC)
}

func TestEncodeIBANHandlerInvalidAccount(t *testing.T) {
	r := newRouter()
	rr := do(t, r, http.MethodPost, "/payments/iban", `{"account":"197220728","bankCode":"0800"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.Contains(t, rr.Body.String(), "INVALID_ACCOUNT")
}

func TestEncodeIBANHandlerUnknownBIC(t *testing.T) {
	r := newRouter()
	rr := do(t, r, http.MethodPost, "/payments/iban", `{"account":"19-2000145399","bankCode":"9999","requireBic":true}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), "BIC_NOT_FOUND")
}

func TestEncodeIBANHandlerMissingFields(t *testing.T) {
	r := newRouter()
	rr := do(t, r, http.MethodPost, "/payments/iban", `{"account":"123"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLookupBICHandler(t *testing.T) {
	r := newRouter()
	rr := do(t, r, http.MethodGet, "/payments/bic/0100", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "KOMBCZPP")

	rr = do(t, r, http.MethodGet, "/payments/bic/9999", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEncodeQRHandler(t *testing.T) {
	r := newRouter()
	rr := do(t, r, http.MethodPost, "/payments/qr", `{"iban":"CZ6508000000192000145399","bic":"GIBACZPX","amount":414.5,"variableSymbol":"20240001"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "SPD*1.0*ACC:CZ6508000000192000145399+GIBACZPX*AM:414.5*X-VS:20240001", resp.Data["qr"])
}

func TestEncodeQRHandlerSkipped(t *testing.T) {
	r := newRouter()
	rr := do(t, r, http.MethodPost, "/payments/qr", `{"iban":"CZ6508000000192000145399","amount":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.Contains(t, rr.Body.String(), "QR_SKIPPED")
}
