// Package render draws the product list and the cart for terminal output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

var currencySymbols = map[stripe.Currency]string{
	stripe.CurrencyUSD: "$",
	stripe.CurrencyEUR: "€",
	stripe.CurrencyGBP: "£",
	stripe.CurrencyJPY: "¥",
}

type Renderer struct {
	plain   bool
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	action  lipgloss.Style
	total   lipgloss.Style
}

// New returns a Renderer. plain disables all styling.
func New(plain bool) *Renderer {
	return &Renderer{
		plain:   plain,
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		heading: lipgloss.NewStyle().Bold(true).Underline(true),
		muted:   lipgloss.NewStyle().Faint(true),
		action:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		total:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) Banner(w io.Writer) {
	fmt.Fprintln(w, r.style(r.title, "Shopping Cart"))
	fmt.Fprintln(w, r.style(r.muted, "Browse products and add them to your cart."))
}

// Products lists the catalog, each with its add command.
func (r *Renderer) Products(w io.Writer, products []models.Product, currency stripe.Currency) {
	fmt.Fprintln(w, r.style(r.heading, "Products"))
	if len(products) == 0 {
		fmt.Fprintln(w, r.style(r.muted, "No products available."))
		return
	}
	for _, p := range products {
		fmt.Fprintf(w, "  %s - %s %s\n",
			p.Name,
			Money(p.Price, currency),
			r.style(r.action, fmt.Sprintf("[add %d]", p.ID)))
	}
}

// Cart lists each line as "name x quantity (subtotal)" with its remove
// command, followed by the total.
func (r *Renderer) Cart(w io.Writer, view models.CartView) {
	fmt.Fprintln(w, r.style(r.heading, "Shopping Cart"))
	if view.Empty {
		fmt.Fprintln(w, r.style(r.muted, "Your cart is empty."))
	}
	for _, line := range view.Lines {
		fmt.Fprintf(w, "  %s x %d (%s) %s\n",
			line.Name,
			line.Quantity,
			Money(line.Subtotal, view.Currency),
			r.style(r.action, fmt.Sprintf("[remove %d]", line.ProductID)))
	}
	fmt.Fprintln(w, r.style(r.total, "Total: "+Money(view.Total, view.Currency)))
}

// Money formats amount with the currency symbol, or the upper-case code
// for currencies without one. Whole amounts print without decimals.
func Money(amount decimal.Decimal, currency stripe.Currency) string {
	value := amount.String()
	if !amount.Equal(amount.Truncate(0)) {
		value = amount.StringFixed(2)
	}
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + value
	}
	return value + " " + strings.ToUpper(string(currency))
}
