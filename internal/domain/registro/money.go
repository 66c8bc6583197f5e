package registro

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits kept for monetary and percentage columns.
const MoneyScale = 2

// RoundMoney rounds d to MoneyScale so every storage engine keeps the same value.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// FormatMoney renders d as a fixed-scale decimal string ("1000.50", "0.00").
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}
