package domain

import "time"

// Candle is one synthesized daily OHLCV price bar. Candles are
// ephemeral: a series is recomputed on every request and never stored.
type Candle struct {
	Date   time.Time
	Open   int64 // cents
	High   int64
	Low    int64
	Close  int64
	Volume int64
}
