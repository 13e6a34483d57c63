package models

import (
	"time"

	"github.com/cherryprincess/shopping-cart-APP/models/enum"
)

// Command 是從訊息佇列收到的購物車操作
type Command struct {
	ID        string           `json:"id"`
	Type      enum.CommandType `json:"type"`
	ProductID uint64           `json:"product_id"`
	IssuedAt  time.Time        `json:"issued_at"`
}

// CartEvent 在購物車每次實際變更後發佈，供畫面重新渲染
type CartEvent struct {
	ID         string             `json:"id"`
	Type       enum.CartEventType `json:"type"`
	ProductID  uint64             `json:"product_id"`
	Cart       CartView           `json:"cart"`
	OccurredAt time.Time          `json:"occurred_at"`
}
