package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

func TestNewView(t *testing.T) {
	c := models.Cart{
		Currency: stripe.CurrencyUSD,
		Lines: []models.CartLine{
			line(1, "Laptop", 10, 2),
			{ProductID: 2, Name: "Cable", Price: decimal.RequireFromString("2.50"), Quantity: 1},
		},
	}

	view := NewView(c)

	if view.Empty {
		t.Error("Empty = true, want false")
	}
	if view.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", view.ItemCount)
	}
	if !view.Total.Equal(decimal.RequireFromString("22.5")) {
		t.Errorf("Total = %s, want 22.5", view.Total)
	}
	if view.TotalMinor != 2250 {
		t.Errorf("TotalMinor = %d, want 2250", view.TotalMinor)
	}
	if !view.Lines[0].Subtotal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Lines[0].Subtotal = %s, want 20", view.Lines[0].Subtotal)
	}
}

func TestNewView_Empty(t *testing.T) {
	view := NewView(models.NewCart(stripe.CurrencyUSD))

	if !view.Empty {
		t.Error("Empty = false, want true")
	}
	if view.Lines == nil {
		t.Error("Lines = nil, want empty slice")
	}
	if !view.Total.IsZero() || view.TotalMinor != 0 {
		t.Errorf("Total = %s/%d, want 0", view.Total, view.TotalMinor)
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount   string
		currency stripe.Currency
		want     int64
	}{
		{"25", stripe.CurrencyUSD, 2500},
		{"19.99", stripe.CurrencyEUR, 1999},
		{"0.005", stripe.CurrencyUSD, 1},
		{"1500", stripe.CurrencyJPY, 1500},
		{"1500", "krw", 1500},
	}

	for _, tt := range tests {
		if got := MinorUnits(decimal.RequireFromString(tt.amount), tt.currency); got != tt.want {
			t.Errorf("MinorUnits(%s, %s) = %d, want %d", tt.amount, tt.currency, got, tt.want)
		}
	}
}
