package billing

import (
	"testing"

	"omnicassion/models"
)

func TestSubtotalAndGrandTotal(t *testing.T) {
	items := []models.LineItem{
		{ID: 1, Service: "Decoration", Quantity: 2, Price: 500, Total: 1000},
		{ID: 2, Service: "Catering", Quantity: 1, Price: 1500, Total: 1500},
	}

	if got := Subtotal(items); got != 2500 {
		t.Fatalf("Subtotal = %v, want 2500", got)
	}
	if got := GrandTotal(items, 200, 100); got != 2600 {
		t.Fatalf("GrandTotal = %v, want 2600", got)
	}
}

func TestSubtotalEmpty(t *testing.T) {
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("Subtotal(nil) = %v, want 0", got)
	}
	if got := GrandTotal(nil, 0, 0); got != 0 {
		t.Fatalf("GrandTotal(empty) = %v, want 0", got)
	}
}

func TestGrandTotalMayBeNegative(t *testing.T) {
	items := []models.LineItem{{Quantity: 1, Price: 100, Total: 100}}
	if got := GrandTotal(items, 0, 500); got != -400 {
		t.Fatalf("GrandTotal = %v, want -400 (no clamping)", got)
	}
}

func TestProfit(t *testing.T) {
	if got := Profit(2600, 1800); got != 800 {
		t.Fatalf("Profit = %v, want 800", got)
	}
	if got := Profit(1000, 1500); got != -500 {
		t.Fatalf("Profit = %v, want -500", got)
	}
}

func TestProfitMarginPercent(t *testing.T) {
	cases := []struct {
		name       string
		profit     float64
		grandTotal float64
		want       float64
	}{
		{"zero grand total guards division", 500, 0, 0},
		{"whole percent", 500, 1000, 50},
		{"rounded to one decimal", 1, 3, 33.3},
		{"negative profit", -500, 1000, -50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProfitMarginPercent(tc.profit, tc.grandTotal); got != tc.want {
				t.Fatalf("ProfitMarginPercent(%v, %v) = %v, want %v", tc.profit, tc.grandTotal, got, tc.want)
			}
		})
	}
}
