package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent devolve part × 100 / whole sem arredondar. Com whole zero o resultado é zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return part.Mul(hundred).Div(whole)
}
