package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLine(t *testing.T) {
	res := ComputeLine(LineInput{
		Price:              1000,
		Quantity:           2,
		DiscountPercentage: 10,
		GSTRate:            18,
	})

	assert.Equal(t, 900.00, res.DiscountedPrice)
	assert.Equal(t, 1800.00, res.ExpandedRate)
	assert.Equal(t, 324.00, res.GSTValue)
	assert.Equal(t, 2124.00, res.Total)
}

func TestComputeLineRoundsEachStep(t *testing.T) {
	// 33.33 * (1 - 3/100) = 32.3301, rounds to 32.33 before expansion
	res := ComputeLine(LineInput{
		Price:              33.33,
		Quantity:           3,
		DiscountPercentage: 3,
		GSTRate:            18,
	})

	assert.Equal(t, 32.33, res.DiscountedPrice)
	assert.Equal(t, 96.99, res.ExpandedRate)
	assert.Equal(t, 17.46, res.GSTValue)
	assert.Equal(t, 114.45, res.Total)
}

func TestComputeLineZeroDiscount(t *testing.T) {
	res := ComputeLine(LineInput{Price: 250, Quantity: 1, GSTRate: 18})

	assert.Equal(t, 250.00, res.DiscountedPrice)
	assert.Equal(t, 250.00, res.ExpandedRate)
	assert.Equal(t, 45.00, res.GSTValue)
	assert.Equal(t, 295.00, res.Total)
}

func TestComputeLineFullDiscount(t *testing.T) {
	res := ComputeLine(LineInput{Price: 500, Quantity: 4, DiscountPercentage: 100, GSTRate: 18})

	assert.Equal(t, 0.00, res.DiscountedPrice)
	assert.Equal(t, 0.00, res.Total)
}

func TestComputeTotalsSumsRoundedLines(t *testing.T) {
	lines := []LineResult{
		ComputeLine(LineInput{Price: 10.01, Quantity: 3, GSTRate: 18}),
		ComputeLine(LineInput{Price: 20.02, Quantity: 7, GSTRate: 18}),
	}

	totals := ComputeTotals(lines)

	assert.Equal(t, Round2(lines[0].ExpandedRate+lines[1].ExpandedRate), totals.Subtotal)
	assert.Equal(t, Round2(lines[0].GSTValue+lines[1].GSTValue), totals.TotalGST)
	assert.Equal(t, Round2(lines[0].Total+lines[1].Total), totals.GrandTotal)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Equal(t, 0.00, totals.Subtotal)
	assert.Equal(t, 0.00, totals.TotalGST)
	assert.Equal(t, 0.00, totals.GrandTotal)
}

func TestCoerce(t *testing.T) {
	assert.Equal(t, 12.5, Coerce("12.5"))
	assert.Equal(t, 12.5, Coerce("  12.5  "))
	assert.Equal(t, 0.0, Coerce(""))
	assert.Equal(t, 0.0, Coerce("abc"))
	assert.Equal(t, 0.0, Coerce("12.5.6"))
	assert.Equal(t, -3.0, Coerce("-3"))
	assert.Equal(t, 0.0, Coerce("NaN"))
	assert.Equal(t, 0.0, Coerce("Inf"))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.68, Round2(2.675000001))
	assert.Equal(t, 1.01, Round2(1.005000001))
	assert.Equal(t, -1.01, Round2(-1.005000001))
	assert.Equal(t, 0.0, Round2(0))
}

func TestGSTRateForHSN(t *testing.T) {
	tests := []struct {
		code string
		want float64
	}{
		{"28142000", 18}, // exact
		{"29059090", 18}, // chapter 29
		{"38220090", 18}, // chapter 38
		{"39269099", 18}, // chapter 39
		{"84212190", 18}, // unknown chapter, default
		{"", 18},         // blank, default
		{"2", 18},        // too short, default
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, GSTRateForHSN(tc.code), "code %q", tc.code)
	}
}

// The live table carries 18 across the board, so precedence is exercised
// against a table with distinct rates per tier.
func TestRateForHSNPrecedence(t *testing.T) {
	table := map[string]float64{
		"28142000": 5,
		"2814":     28,
		"28":       12,
	}
	tests := []struct {
		code string
		want float64
	}{
		{"28142000", 5},  // exact match wins
		{"28149090", 12}, // chapter before subheading
		{"2814", 28},     // subheading key matched exactly
		{"29059090", DefaultGSTRate},
		{" 28142000 ", 5}, // trimmed before lookup
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, rateForHSN(tc.code, table), "code %q", tc.code)
	}
}
