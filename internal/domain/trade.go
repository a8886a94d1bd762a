package domain

import "time"

// TradeRecord is one executed fill in the append-only trade history.
// Records are never mutated or deleted.
type TradeRecord struct {
	TradeID      string
	Date         time.Time // trading day of the originating order
	InstrumentID string
	Action       OrderAction
	Price        int64 // cents, the order's limit price
	Quantity     int64
	Matched      bool
}
