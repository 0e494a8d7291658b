package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/kenod/invoice-api/internal/common"
	"github.com/kenod/invoice-api/internal/obs"
)

// Handler exposes the bank-account and QR payment encoders over HTTP.
type Handler struct {
	Validate *validator.Validate
}

type ibanRequest struct {
	Account    string `json:"account" validate:"required"`
	BankCode   string `json:"bankCode" validate:"required"`
	Prefix     string `json:"prefix"`
	RequireBIC bool   `json:"requireBic"`
}

type ibanResponse struct {
	IBAN          string `json:"iban"`
	IBANFormatted string `json:"ibanFormatted"`
	BIC           string `json:"bic,omitempty"`
}

type qrRequest struct {
	IBAN           string  `json:"iban" validate:"required"`
	BIC            string  `json:"bic"`
	Amount         float64 `json:"amount"`
	VariableSymbol string  `json:"variableSymbol"`
	ConstantSymbol string  `json:"constantSymbol"`
	SpecificSymbol string  `json:"specificSymbol"`
}

// EncodeIBANHandler validates account parts and returns the checksummed IBAN.
func (h *Handler) EncodeIBANHandler(w http.ResponseWriter, r *http.Request) {
	var payload ibanRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	iban, err := EncodeIBAN(payload.Account, payload.BankCode, payload.Prefix, payload.RequireBIC)
	if err != nil {
		app := ibanError(err)
		countIBAN(ibanResult(err))
		common.RenderError(w, app)
		return
	}
	countIBAN("ok")
	common.JSON(w, http.StatusOK, map[string]any{"data": ibanResponse{
		IBAN:          iban.Value,
		IBANFormatted: iban.Formatted(),
		BIC:           iban.BIC,
	}})
}

// LookupBICHandler resolves the SWIFT/BIC code for a bank code path parameter.
func (h *Handler) LookupBICHandler(w http.ResponseWriter, r *http.Request) {
	bankCode := strings.TrimSpace(chi.URLParam(r, "bankCode"))
	if bankCode == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "bankCode is required", nil)
		return
	}
	bic, err := LookupBIC(bankCode)
	if err != nil {
		common.JSONError(w, http.StatusNotFound, "BIC_NOT_FOUND", "bank code has no known BIC", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]string{"bic": bic}})
}

// EncodeQRHandler builds the QR payment string for the provided payment data.
func (h *Handler) EncodeQRHandler(w http.ResponseWriter, r *http.Request) {
	var payload qrRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	qr, err := EncodeQRString(QRPayment{
		IBAN:           payload.IBAN,
		BIC:            payload.BIC,
		Amount:         payload.Amount,
		VariableSymbol: payload.VariableSymbol,
		ConstantSymbol: payload.ConstantSymbol,
		SpecificSymbol: payload.SpecificSymbol,
	})
	if err != nil {
		countQR("skipped")
		common.RenderError(w, common.NewAppError("QR_SKIPPED", "nothing to encode: amount must be positive and iban present", http.StatusUnprocessableEntity, err))
		return
	}
	countQR("ok")
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]string{"qr": qr}})
}

func ibanError(err error) *common.AppError {
	switch {
	case errors.Is(err, ErrInvalidAccountNumber):
		return common.NewAppError("INVALID_ACCOUNT", "account number failed checksum validation", http.StatusUnprocessableEntity, err)
	case errors.Is(err, ErrBICNotFound):
		return common.NewAppError("BIC_NOT_FOUND", "bank code has no known BIC", http.StatusNotFound, err)
	}
	return common.NewAppError("INTERNAL", "failed to encode iban", http.StatusInternalServerError, err)
}

func ibanResult(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAccountNumber):
		return "invalid_account"
	case errors.Is(err, ErrBICNotFound):
		return "bic_not_found"
	}
	return "error"
}

func (h *Handler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func countIBAN(result string) {
	if obs.IBANEncodedTotal != nil {
		obs.IBANEncodedTotal.WithLabelValues(result).Inc()
	}
}

func countQR(result string) {
	if obs.QREncodedTotal != nil {
		obs.QREncodedTotal.WithLabelValues(result).Inc()
	}
}
