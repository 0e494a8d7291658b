package invoice

import (
	"encoding/json"
	"fmt"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/kenod/invoice-api/internal/common"
	"github.com/kenod/invoice-api/internal/obs"
	"github.com/kenod/invoice-api/internal/pricing"
)

// Handler exposes the price calculator over HTTP. Currency is echoed in the
// response so clients need not track the server's configured currency.
type Handler struct {
	Validate *validator.Validate
	Currency string
}

type computeRequest struct {
	Items         []Item           `json:"items"`
	VATPayer      *bool            `json:"vatPayer"`
	ReverseCharge bool             `json:"reverseCharge"`
	Discount      *discountPayload `json:"discount"`
	Rounding      *roundingPayload `json:"rounding"`
	Deposits      []float64        `json:"deposits"`
}

type computeResponse struct {
	pricing.FinalPrices
	Currency string `json:"currency,omitempty"`
}

type discountPayload struct {
	Amount float64 `json:"amount"`
	Kind   string  `json:"kind" validate:"omitempty,oneof=fixed percent"`
}

type roundingPayload struct {
	Granularity  string `json:"granularity" validate:"omitempty,oneof=none whole fifty"`
	Type         string `json:"type" validate:"omitempty,oneof=displayOnly calculate grandTotal"`
	Method       string `json:"method" validate:"omitempty,oneof=nearest up down"`
	Distribution string `json:"distribution" validate:"omitempty,oneof=highestRate lowestRate largestBucket zeroRate"`
}

// ComputeHandler runs the calculation for an ad-hoc item ledger. Item values
// are never rejected: negative rows and empty ledgers are valid inputs, only
// malformed enum names fail.
func (h *Handler) ComputeHandler(w http.ResponseWriter, r *http.Request) {
	var payload computeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if err := h.validate(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	cfg, err := payload.config()
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}

	prices := pricing.Compute(PricingItems(payload.Items), cfg)

	countComputed("ok")
	common.JSON(w, http.StatusOK, map[string]any{"data": computeResponse{FinalPrices: prices, Currency: h.Currency}})
}

func (h *Handler) validate(payload computeRequest) error {
	if h.Validate == nil {
		return nil
	}
	if err := h.Validate.Struct(payload); err != nil {
		return err
	}
	if payload.Discount != nil {
		if err := h.Validate.Struct(*payload.Discount); err != nil {
			return err
		}
	}
	if payload.Rounding != nil {
		if err := h.Validate.Struct(*payload.Rounding); err != nil {
			return err
		}
	}
	return nil
}

func (p computeRequest) config() (pricing.Config, error) {
	cfg := pricing.Config{VATPayer: true, ReverseCharge: p.ReverseCharge}
	if p.VATPayer != nil {
		cfg.VATPayer = *p.VATPayer
	}
	if p.Discount != nil {
		cfg.Discount.Amount = p.Discount.Amount
		if p.Discount.Kind == "percent" {
			cfg.Discount.Kind = pricing.DiscountPercent
		}
	}
	if p.Rounding != nil {
		r, err := p.Rounding.rounding()
		if err != nil {
			return cfg, err
		}
		cfg.Rounding = r
	}
	for _, d := range p.Deposits {
		cfg.Deposits += d
	}
	return cfg, nil
}

func (p roundingPayload) rounding() (pricing.Rounding, error) {
	var r pricing.Rounding
	switch p.Granularity {
	case "", "none":
	case "whole":
		r.Granularity = pricing.RoundWhole
	case "fifty":
		r.Granularity = pricing.RoundFifty
	default:
		return r, fmt.Errorf("unknown rounding granularity %q", p.Granularity)
	}
	switch p.Type {
	case "", "displayOnly":
	case "calculate":
		r.Type = pricing.RoundCalculate
	case "grandTotal":
		r.Type = pricing.RoundGrandTotal
	default:
		return r, fmt.Errorf("unknown rounding type %q", p.Type)
	}
	switch p.Method {
	case "", "nearest":
	case "up":
		r.Method = pricing.RoundUp
	case "down":
		r.Method = pricing.RoundDown
	default:
		return r, fmt.Errorf("unknown rounding method %q", p.Method)
	}
	switch p.Distribution {
	case "", "highestRate":
	case "lowestRate":
		r.Distribution = pricing.DistributeLowestRate
	case "largestBucket":
		r.Distribution = pricing.DistributeLargestBucket
	case "zeroRate":
		r.Distribution = pricing.DistributeZeroRate
	default:
		return r, fmt.Errorf("unknown rounding distribution %q", p.Distribution)
	}
	return r, nil
}

func countComputed(result string) {
	if obs.DocumentsComputedTotal != nil {
		obs.DocumentsComputedTotal.WithLabelValues(result).Inc()
	}
}
