package cart

import (
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

// 不使用小數位的幣別，金額的最小單位即為主要單位
var zeroDecimalCurrencies = map[stripe.Currency]struct{}{
	"bif":              {},
	"clp":              {},
	"djf":              {},
	"gnf":              {},
	stripe.CurrencyJPY: {},
	"kmf":              {},
	"krw":              {},
	"mga":              {},
	"pyg":              {},
	"rwf":              {},
	"ugx":              {},
	"vnd":              {},
	"vuv":              {},
	"xaf":              {},
	"xof":              {},
	"xpf":              {},
}

// NewView derives the display data of c: per-line subtotals, item count
// and total.
func NewView(c models.Cart) models.CartView {
	view := models.CartView{
		Currency: c.Currency,
		Lines:    make([]models.CartLineView, 0, len(c.Lines)),
		Total:    decimal.Zero,
		Empty:    c.IsEmpty(),
	}

	for _, line := range c.Lines {
		subtotal := line.Subtotal()
		view.Lines = append(view.Lines, models.CartLineView{
			CartLine: line,
			Subtotal: subtotal,
		})
		view.ItemCount += line.Quantity
		view.Total = view.Total.Add(subtotal)
	}
	view.TotalMinor = MinorUnits(view.Total, c.Currency)

	return view
}

// MinorUnits converts amount to the smallest unit of currency, the way
// Stripe expresses amounts (cents for usd, yen for jpy).
func MinorUnits(amount decimal.Decimal, currency stripe.Currency) int64 {
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return amount.Round(0).IntPart()
	}
	return amount.Shift(2).Round(0).IntPart()
}
