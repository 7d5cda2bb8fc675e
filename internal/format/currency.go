// Package format turns ledger values into display strings.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

// NoPercentage is shown wherever a percentage is undefined.
const NoPercentage = "---"

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount decimal.Decimal) string {
	formatted := formatPositiveCurrency(amount.Abs())
	if amount.Round(2).IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(2)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}

// Percentage renders "30%", or NoPercentage when undefined.
func Percentage(p models.Percentage) string {
	if !p.IsDefined() {
		return NoPercentage
	}
	return p.String() + "%"
}

// MonthTitle renders the budget period heading, e.g. "October, 2026".
func MonthTitle(t time.Time) string {
	return t.Format("January, 2006")
}
