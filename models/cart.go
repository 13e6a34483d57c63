package models

import (
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
)

// Cart 代表購物車。Lines 依商品第一次加入的順序排列，
// 每個商品最多一行且數量至少為 1。Cart 只會被整個替換，不會就地修改。
type Cart struct {
	Currency stripe.Currency `json:"currency"`
	Lines    []CartLine      `json:"lines"`
}

// CartLine 代表購物車中的單個商品項目
type CartLine struct {
	ProductID uint64          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  uint64          `json:"quantity"`
}

func NewCart(currency stripe.Currency) Cart {
	return Cart{Currency: currency}
}

func NewCartLine(product Product) CartLine {
	return CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
	}
}

// Subtotal returns price * quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Line returns the line for productID, if present.
func (c Cart) Line(productID uint64) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// CartView 是購物車的顯示用資料，包含小計與總額
type CartView struct {
	Currency   stripe.Currency `json:"currency"`
	Lines      []CartLineView  `json:"lines"`
	ItemCount  uint64          `json:"item_count"`
	Total      decimal.Decimal `json:"total"`
	TotalMinor int64           `json:"total_minor"`
	Empty      bool            `json:"empty"`
}

type CartLineView struct {
	CartLine
	Subtotal decimal.Decimal `json:"subtotal"`
}
