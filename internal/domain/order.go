package domain

import "time"

// OrderAction indicates whether an order buys or sells.
type OrderAction string

const (
	OrderActionBuy  OrderAction = "buy"
	OrderActionSell OrderAction = "sell"
)

// OrderStatus represents the lifecycle state of an order. An order
// leaves open exactly once, either to matched (via the matching
// engine) or to canceled (via an explicit cancel), and never returns.
type OrderStatus string

const (
	OrderStatusOpen     OrderStatus = "open"
	OrderStatusMatched  OrderStatus = "matched"
	OrderStatusCanceled OrderStatus = "canceled"
)

// Order is a limit order resting in the order book until the
// synthesized market price touches its limit.
type Order struct {
	OrderID      string
	Date         time.Time // trading day the order was placed
	InstrumentID string
	Action       OrderAction
	LimitPrice   int64 // cents
	Quantity     int64
	Status       OrderStatus
	CreatedAt    time.Time
}

// Matches reports whether the order's limit condition is satisfied by
// the given price: a buy executes at or below its ceiling, a sell at
// or above its floor.
func (o *Order) Matches(priceCents int64) bool {
	switch o.Action {
	case OrderActionBuy:
		return priceCents <= o.LimitPrice
	case OrderActionSell:
		return priceCents >= o.LimitPrice
	}
	return false
}
