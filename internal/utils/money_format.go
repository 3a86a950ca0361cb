package utils

import "github.com/shopspring/decimal"

// FormatAmount formats a monetary amount with two decimal places, the precision
// used consistently across folios, quotes and exports.
// Example: 12.3456 -> "12.35", 15930 -> "15930.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
