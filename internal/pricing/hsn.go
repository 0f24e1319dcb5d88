package pricing

import "strings"

// DefaultGSTRate applies when the HSN code matches nothing in the table.
const DefaultGSTRate = 18

// hsnRates maps HSN codes to GST percentages. Keys may be full codes,
// 4-digit subheadings or 2-digit chapters.
var hsnRates = map[string]float64{
	"28142000": 18, // anhydrous ammonia
	"28":       18, // inorganic chemicals
	"29":       18, // organic chemicals
	"32":       18, // dyes and pigments
	"38":       18, // miscellaneous chemical products
	"39":       18, // plastics
}

// GSTRateForHSN resolves the GST rate for an HSN code. Lookup order is
// exact code, then the 2-digit chapter, then the 4-digit subheading,
// falling back to DefaultGSTRate.
func GSTRateForHSN(code string) float64 {
	return rateForHSN(code, hsnRates)
}

func rateForHSN(code string, table map[string]float64) float64 {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultGSTRate
	}
	if rate, ok := table[code]; ok {
		return rate
	}
	if len(code) >= 2 {
		if rate, ok := table[code[:2]]; ok {
			return rate
		}
	}
	if len(code) >= 4 {
		if rate, ok := table[code[:4]]; ok {
			return rate
		}
	}
	return DefaultGSTRate
}
