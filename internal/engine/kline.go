package engine

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/efreitasn/papertrade/internal/domain"
)

// KlineGenerator synthesizes daily OHLCV series with a bounded random
// walk. The randomness source is injected so tests can seed it and
// assert exact sequences. Nothing is cached: two calls for the same
// instrument produce unrelated series.
type KlineGenerator struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
	now func() time.Time
}

// NewKlineGenerator creates a generator drawing from rng, with now
// supplying the current wall-clock time.
func NewKlineGenerator(rng *rand.Rand, now func() time.Time) *KlineGenerator {
	return &KlineGenerator{rng: rng, now: now}
}

// Generate returns one candle per calendar day ending today, oldest
// first. The base price is uniform in [50, 600]; each day's close
// seeds the next day's open. Prices are rounded to cents. The
// instrument id does not influence the series.
func (g *KlineGenerator) Generate(instrumentID string, days int) []domain.Candle {
	g.mu.Lock()
	defer g.mu.Unlock()

	today := g.now()
	series := make([]domain.Candle, 0, days)

	price := float64(g.rng.IntN(551) + 50)
	for i := 0; i < days; i++ {
		openPx := price + g.uniform(-3, 3)
		closePx := openPx + g.uniform(-5, 5)
		highPx := max(openPx, closePx) + g.uniform(0, 3)
		lowPx := min(openPx, closePx) - g.uniform(0, 3)

		series = append(series, domain.Candle{
			Date:   today.AddDate(0, 0, i-days+1),
			Open:   domain.RoundToCents(openPx),
			High:   domain.RoundToCents(highPx),
			Low:    domain.RoundToCents(lowPx),
			Close:  domain.RoundToCents(closePx),
			Volume: int64(g.rng.IntN(9001) + 1000),
		})

		// The unrounded close carries the walk forward.
		price = closePx
	}
	return series
}

func (g *KlineGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
