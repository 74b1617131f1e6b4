package shop

import "strconv"

// FormatPrice renders a price in currency units with two decimals and the
// euro suffix the shop displays, e.g. 12.5 -> "12.50 €".
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64) + " €"
}
