package docgen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount with Indian digit grouping and exactly two
// decimals, e.g. 1234567.5 becomes "12,34,567.50".
func FormatINR(v float64) string {
	return inrPrinter.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatDate renders the issue date the way it appears on the printed
// quotation, e.g. "2 January 2006".
func FormatDate(t time.Time) string {
	return t.Format("2 January 2006")
}
