package pricing

import (
	"math"
	"strconv"
)

// Item describes a billable line used for price calculation.
type Item struct {
	Quantity  float64
	UnitPrice float64
	VATRate   float64
}

// DiscountKind selects how the discount amount is interpreted.
type DiscountKind int

const (
	// DiscountFixed subtracts an absolute currency amount from the grand total.
	DiscountFixed DiscountKind = iota
	// DiscountPercent reduces the grand total by a percentage (0-100).
	DiscountPercent
)

// DiscountPlacement tells the renderer where to draw the discount line.
type DiscountPlacement int

const (
	DiscountShownBetweenItems DiscountPlacement = iota
	DiscountShownAtTotal
	DiscountShownBoth
)

// Discount configures the discount applied to the grand total. Placement,
// ShowWhenZero and TargetVATRate are renderer hints and do not change the
// arithmetic: the discount always scales the grand total uniformly.
type Discount struct {
	Amount        float64
	Kind          DiscountKind
	Placement     DiscountPlacement
	ShowWhenZero  bool
	TargetVATRate float64
}

// Granularity is the step the payable total is rounded to.
type Granularity int

const (
	RoundNone  Granularity = iota
	RoundWhole             // whole currency units
	RoundFifty             // fifty-subunit steps (0.50)
)

// RoundingType controls whether the rounding delta is folded into the total.
type RoundingType int

const (
	// RoundDisplayOnly computes the delta for display but keeps the total unrounded.
	RoundDisplayOnly RoundingType = iota
	// RoundCalculate folds the delta into the total and the selected VAT bucket.
	RoundCalculate
	// RoundGrandTotal folds the delta the same way; the two values differ only
	// in how the renderer presents the rounding line.
	RoundGrandTotal
)

// Method is the tie-breaking rule used at the configured granularity.
type Method int

const (
	RoundNearest Method = iota // half away from zero
	RoundUp
	RoundDown
)

// Distribution selects the VAT bucket that absorbs a folded rounding delta.
type Distribution int

const (
	DistributeHighestRate Distribution = iota
	DistributeLowestRate
	DistributeLargestBucket
	DistributeZeroRate
)

// Rounding configures the rounding step of the calculation. AsItem signals the
// renderer to draw the delta as a synthetic line; it has no numeric effect.
type Rounding struct {
	Granularity  Granularity
	Type         RoundingType
	Method       Method
	Distribution Distribution
	AsItem       bool
}

// Config collects all adjustments applied during a single calculation run.
type Config struct {
	VATPayer      bool
	ReverseCharge bool
	Discount      Discount
	Rounding      Rounding
	Deposits      float64
}

// Bucket aggregates base, VAT and total amounts for one VAT rate.
type Bucket struct {
	Rate  float64 `json:"rate"`
	Base  float64 `json:"base"`
	VAT   float64 `json:"vat"`
	Total float64 `json:"total"`
}

// FinalPrices is the result of a calculation run. VATSummary is present only
// for VAT payers, keyed by the rate rendered without trailing zeros ("21").
// RoundingDelta carries the computed delta even in display-only mode so the
// renderer can show it without re-deriving the rounding rules.
type FinalPrices struct {
	Total         float64           `json:"total"`
	RoundingDelta float64           `json:"roundingDelta,omitempty"`
	VATSummary    map[string]Bucket `json:"vatSummary,omitempty"`
}

// RateKey renders a VAT rate the way summary maps and label tables key it.
func RateKey(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// Compute turns the ordered item list and the adjustment config into final
// prices. It is a pure function: identical inputs yield identical results.
// Steps run in fixed order: aggregate into VAT buckets, discount the grand
// total, apply the rounding policy, subtract deposits.
func Compute(items []Item, cfg Config) FinalPrices {
	buckets := aggregate(items, cfg)
	total := grandTotal(items, buckets, cfg.VATPayer)

	total = applyDiscount(total, cfg.Discount)

	total, delta, buckets := applyRounding(total, cfg.Rounding, buckets)

	total -= cfg.Deposits

	result := FinalPrices{Total: total, RoundingDelta: delta}
	if cfg.VATPayer {
		result.VATSummary = make(map[string]Bucket, len(buckets))
		for _, b := range buckets {
			result.VATSummary[RateKey(b.Rate)] = *b
		}
	}
	return result
}

// aggregate groups items by VAT rate in first-occurrence order. Buckets are
// only materialised for VAT payers; non-payers carry no VAT breakdown at all.
func aggregate(items []Item, cfg Config) []*Bucket {
	if !cfg.VATPayer {
		return nil
	}
	var buckets []*Bucket
	index := make(map[float64]*Bucket)
	for _, it := range items {
		base := it.Quantity * it.UnitPrice
		vat := 0.0
		if !cfg.ReverseCharge {
			vat = base * it.VATRate / 100
		}
		b, ok := index[it.VATRate]
		if !ok {
			b = &Bucket{Rate: it.VATRate}
			index[it.VATRate] = b
			buckets = append(buckets, b)
		}
		b.Base += base
		b.VAT += vat
		b.Total = b.Base + b.VAT
	}
	return buckets
}

func grandTotal(items []Item, buckets []*Bucket, vatPayer bool) float64 {
	var total float64
	if vatPayer {
		for _, b := range buckets {
			total += b.Total
		}
		return total
	}
	for _, it := range items {
		total += it.Quantity * it.UnitPrice
	}
	return total
}

func applyDiscount(total float64, d Discount) float64 {
	if d.Amount == 0 {
		return total
	}
	switch d.Kind {
	case DiscountPercent:
		return total * (1 - d.Amount/100)
	default:
		return total - d.Amount
	}
}

// applyRounding rounds the total at the configured granularity and returns the
// possibly adjusted total plus the rounding delta. In display-only mode the
// delta is reported but not folded in. When the delta is folded and a bucket
// breakdown exists, the selected bucket absorbs it so the buckets still
// reconcile with the new grand total.
func applyRounding(total float64, r Rounding, buckets []*Bucket) (float64, float64, []*Bucket) {
	if r.Granularity == RoundNone {
		return total, 0, buckets
	}
	rounded := roundTo(total, r.Granularity, r.Method)
	delta := rounded - total
	if r.Type == RoundDisplayOnly {
		return total, delta, buckets
	}
	if delta != 0 {
		buckets = distribute(buckets, delta, r.Distribution)
	}
	return rounded, delta, buckets
}

func roundTo(total float64, g Granularity, m Method) float64 {
	unit := 1.0
	if g == RoundFifty {
		unit = 0.5
	}
	scaled := total / unit
	switch m {
	case RoundUp:
		scaled = math.Ceil(scaled)
	case RoundDown:
		scaled = math.Floor(scaled)
	default:
		scaled = math.Round(scaled)
	}
	return scaled * unit
}

func distribute(buckets []*Bucket, delta float64, target Distribution) []*Bucket {
	if len(buckets) == 0 {
		return buckets
	}
	var chosen *Bucket
	switch target {
	case DistributeLowestRate:
		chosen = buckets[0]
		for _, b := range buckets[1:] {
			if b.Rate < chosen.Rate {
				chosen = b
			}
		}
	case DistributeLargestBucket:
		chosen = buckets[0]
		for _, b := range buckets[1:] {
			if b.Total > chosen.Total {
				chosen = b
			}
		}
	case DistributeZeroRate:
		for _, b := range buckets {
			if b.Rate == 0 {
				chosen = b
				break
			}
		}
		if chosen == nil {
			// The delta itself carries no VAT, so a zero-rate bucket is created lazily.
			chosen = &Bucket{Rate: 0}
			buckets = append(buckets, chosen)
		}
	default: // DistributeHighestRate
		chosen = buckets[0]
		for _, b := range buckets[1:] {
			if b.Rate > chosen.Rate {
				chosen = b
			}
		}
	}
	chosen.Base += delta
	chosen.Total = chosen.Base + chosen.VAT
	return buckets
}
