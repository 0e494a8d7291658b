package invoice_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/kenod/invoice-api/internal/invoice"
	"github.com/kenod/invoice-api/internal/pricing"
)

func computeRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := &invoice.Handler{Validate: validator.New(), Currency: "CZK"}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/compute", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ComputeHandler(rr, req)
	return rr
}

func decodePrices(t *testing.T, rr *httptest.ResponseRecorder) pricing.FinalPrices {
	t.Helper()
	var resp struct {
		Data pricing.FinalPrices `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Data
}

func TestComputeHandler(t *testing.T) {
	rr := computeRequest(t, `{"items":[
		{"name":"Consulting","quantity":1,"unitPrice":100,"vatRate":21},
		{"name":"Hosting","quantity":2,"unitPrice":50,"vatRate":15}
	]}`)
	require.Equal(t, http.StatusOK, rr.Code)

	prices := decodePrices(t, rr)
	require.InDelta(t, 236, prices.Total, 1e-9)
	require.Len(t, prices.VATSummary, 2)
	require.InDelta(t, 100, prices.VATSummary["21"].Base, 1e-9)
	require.InDelta(t, 21, prices.VATSummary["21"].VAT, 1e-9)
	require.InDelta(t, 115, prices.VATSummary["15"].Total, 1e-9)
}

func TestComputeHandlerDiscountAndDeposits(t *testing.T) {
	rr := computeRequest(t, `{"items":[{"quantity":1,"unitPrice":1000,"vatRate":21}],
		"discount":{"amount":10,"kind":"percent"},
		"deposits":[89]}`)
	require.Equal(t, http.StatusOK, rr.Code)

	prices := decodePrices(t, rr)
	require.InDelta(t, 1000, prices.Total, 1e-9)
}

func TestComputeHandlerRounding(t *testing.T) {
	rr := computeRequest(t, `{"items":[{"quantity":1,"unitPrice":100.4,"vatRate":21}],
		"rounding":{"granularity":"whole","type":"calculate","method":"down"}}`)
	require.Equal(t, http.StatusOK, rr.Code)

	prices := decodePrices(t, rr)
	require.InDelta(t, 121, prices.Total, 1e-9)
	require.InDelta(t, -0.484, prices.RoundingDelta, 1e-9)
	require.InDelta(t, 121, prices.VATSummary["21"].Total, 1e-9)
}

func TestComputeHandlerNonVATPayer(t *testing.T) {
	rr := computeRequest(t, `{"items":[{"quantity":3,"unitPrice":100,"vatRate":21}],"vatPayer":false}`)
	require.Equal(t, http.StatusOK, rr.Code)

	prices := decodePrices(t, rr)
	require.InDelta(t, 300, prices.Total, 1e-9)
	require.Empty(t, prices.VATSummary)
}

func TestComputeHandlerEmptyLedger(t *testing.T) {
	rr := computeRequest(t, `{"items":[]}`)
	require.Equal(t, http.StatusOK, rr.Code)
	prices := decodePrices(t, rr)
	require.Zero(t, prices.Total)
}

func TestComputeHandlerEchoesCurrency(t *testing.T) {
	rr := computeRequest(t, `{"items":[{"quantity":1,"unitPrice":100,"vatRate":21}]}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data struct {
			Currency string `json:"currency"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "CZK", resp.Data.Currency)
}

func TestComputeHandlerBadPayload(t *testing.T) {
	rr := computeRequest(t, `{"items":`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestComputeHandlerUnknownRounding(t *testing.T) {
	rr := computeRequest(t, `{"items":[],"rounding":{"granularity":"tenth"}}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
