package engine

import (
	"github.com/google/uuid"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

// Matcher fills open orders against synthesized market prices. It is
// the only writer of the matched status, and a kline fetch is the
// only thing that runs it — matching never happens on submission or
// in the background.
type Matcher struct {
	orders    *store.OrderStore
	trades    *store.TradeStore
	portfolio *store.PortfolioStore
}

// NewMatcher creates a Matcher over the given stores.
func NewMatcher(orders *store.OrderStore, trades *store.TradeStore, portfolio *store.PortfolioStore) *Matcher {
	return &Matcher{
		orders:    orders,
		trades:    trades,
		portfolio: portfolio,
	}
}

// Match scans the instrument's open orders against the final close of
// series: a buy fills iff close ≤ limit, a sell iff close ≥ limit.
// Every eligible order fills completely, in submission order; there
// are no partial fills. Each fill mutates the portfolio (sells clamp
// at zero) and appends a trade record before the order is marked
// matched. Returns the number of orders filled.
func (m *Matcher) Match(instrumentID string, series []domain.Candle) int {
	if len(series) == 0 {
		return 0
	}
	lastClose := series[len(series)-1].Close

	filled := 0
	m.orders.FillOpen(instrumentID, func(o *domain.Order) bool {
		if !o.Matches(lastClose) {
			return false
		}

		m.portfolio.Apply(o.InstrumentID, o.Action, o.Quantity)
		m.trades.Append(&domain.TradeRecord{
			TradeID:      uuid.New().String(),
			Date:         o.Date,
			InstrumentID: o.InstrumentID,
			Action:       o.Action,
			Price:        o.LimitPrice,
			Quantity:     o.Quantity,
			Matched:      true,
		})
		filled++
		return true
	})
	return filled
}
