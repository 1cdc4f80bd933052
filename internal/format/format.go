// Package format holds the presentational helpers shared by UI consumers.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Amount renders a currency amount with thousand grouping and two decimals.
func Amount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Count renders an integer count with thousand grouping.
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// DueDate renders a payout due date, or a placeholder when absent.
func DueDate(t *time.Time) string {
	if t == nil {
		return "no due date"
	}
	return t.Format("Jan 2, 2006")
}
