// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatAmount formats a currency amount with a dollar sign and separators.
// Amounts are whole currency units; fractions are rounded half away from zero.
// e.g., 39500 -> "$39,500"
func FormatAmount(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-$" + FormatNumber(-n)
	}
	return "$" + FormatNumber(n)
}

// FormatPercent formats a 0-100 percentage. Whole values have no decimals;
// other values are truncated to the fewest decimals that keep them off the
// whole number below, so 90.4 reads "90.4%" and never "90%".
func FormatPercent(pct decimal.Decimal) string {
	whole := pct.Truncate(0)
	if pct.Equal(whole) {
		return whole.String() + "%"
	}
	for places := int32(1); places <= 8; places++ {
		if t := pct.Truncate(places); !t.Equal(whole) {
			return t.StringFixed(places) + "%"
		}
	}
	return pct.String() + "%"
}

// FormatShortAmount compresses large amounts for narrow columns.
// e.g., 1500000 -> "$1.5M", 80000 -> "$80K"
func FormatShortAmount(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000:
		return "$" + trimZero(d.Div(decimal.NewFromInt(1_000_000)).StringFixed(1)) + "M"
	case abs >= 1_000:
		return "$" + trimZero(d.Div(decimal.NewFromInt(1_000)).StringFixed(1)) + "K"
	default:
		return FormatAmount(d)
	}
}

func trimZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
