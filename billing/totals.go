// Package billing holds the pure money arithmetic shared by the
// record stores and the document layout.
package billing

import (
	"math"

	"omnicassion/models"
)

// Subtotal sums the line totals. An empty item list is 0.
func Subtotal(items []models.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total
	}
	return sum
}

// GrandTotal is subtotal + site charges - discount. A discount larger
// than subtotal + charges yields a negative total on purpose; the
// display layer shows it as-is.
func GrandTotal(items []models.LineItem, siteCharges, discount float64) float64 {
	return Subtotal(items) + siteCharges - discount
}

// Profit is what remains of the grand total after actual expenses.
func Profit(grandTotal, actualCost float64) float64 {
	return grandTotal - actualCost
}

// ProfitMarginPercent returns the margin rounded to one decimal.
// A zero grand total returns 0 rather than dividing by zero.
func ProfitMarginPercent(profit, grandTotal float64) float64 {
	if grandTotal == 0 {
		return 0
	}
	return math.Round(profit/grandTotal*1000) / 10
}
