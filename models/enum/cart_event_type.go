package enum

// CartEventType 表示購物車狀態變更的種類
type CartEventType string

const (
	CartEventTypeLineAdded         CartEventType = "line_added"         // 新商品加入購物車
	CartEventTypeQuantityIncreased CartEventType = "quantity_increased" // 既有商品數量 +1
	CartEventTypeQuantityDecreased CartEventType = "quantity_decreased" // 既有商品數量 -1
	CartEventTypeLineRemoved       CartEventType = "line_removed"       // 數量歸零，商品移出購物車
	CartEventTypeNone              CartEventType = ""                   // 沒有任何變化
)
