package models

import "github.com/shopspring/decimal"

// Product 代表商品目錄中的單一商品
type Product struct {
	ID    uint64          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
