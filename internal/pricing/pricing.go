// Package pricing computes the derived money figures of a quotation line
// and the document totals. Every intermediate step is rounded to two
// decimal places so the stored values match what appears on the printed
// document.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// LineInput holds the raw per-line figures. Fields come in as entered,
// already coerced to numbers via Coerce.
type LineInput struct {
	Price              float64
	Quantity           float64
	DiscountPercentage float64
	GSTRate            float64
}

// LineResult holds the computed figures for one quotation line.
type LineResult struct {
	DiscountedPrice float64
	ExpandedRate    float64
	GSTValue        float64
	Total           float64
}

// Totals aggregates the per-line results of a whole quotation.
type Totals struct {
	Subtotal   float64
	TotalGST   float64
	GrandTotal float64
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Coerce parses a user-entered numeric field. Blank or malformed input
// yields zero rather than an error so a half-filled row never blocks a
// save.
func Coerce(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ComputeLine applies the discount, expands by quantity and adds GST,
// rounding after each step.
func ComputeLine(in LineInput) LineResult {
	discounted := Round2(in.Price * (1 - in.DiscountPercentage/100))
	expanded := Round2(discounted * in.Quantity)
	gst := Round2(expanded * in.GSTRate / 100)
	total := Round2(expanded + gst)
	return LineResult{
		DiscountedPrice: discounted,
		ExpandedRate:    expanded,
		GSTValue:        gst,
		Total:           total,
	}
}

// ComputeTotals sums the already-rounded per-line figures. The sums are
// rounded once more to absorb float drift from the additions.
func ComputeTotals(lines []LineResult) Totals {
	var t Totals
	for _, l := range lines {
		t.Subtotal += l.ExpandedRate
		t.TotalGST += l.GSTValue
		t.GrandTotal += l.Total
	}
	t.Subtotal = Round2(t.Subtotal)
	t.TotalGST = Round2(t.TotalGST)
	t.GrandTotal = Round2(t.GrandTotal)
	return t
}
