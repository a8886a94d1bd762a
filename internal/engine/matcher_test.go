package engine

import (
	"testing"
	"time"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

// newTestMatcher creates a Matcher with fresh stores for testing.
func newTestMatcher() (*Matcher, *store.OrderStore, *store.TradeStore, *store.PortfolioStore) {
	orders := store.NewOrderStore()
	trades := store.NewTradeStore()
	portfolio := store.NewPortfolioStore()
	return NewMatcher(orders, trades, portfolio), orders, trades, portfolio
}

// openOrder creates and books an open order.
func openOrder(orders *store.OrderStore, id, instrumentID string, action domain.OrderAction, limitCents, qty int64) *domain.Order {
	o := &domain.Order{
		OrderID:      id,
		Date:         time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
		InstrumentID: instrumentID,
		Action:       action,
		LimitPrice:   limitCents,
		Quantity:     qty,
		Status:       domain.OrderStatusOpen,
		CreatedAt:    time.Now(),
	}
	orders.Create(o)
	return o
}

// seriesClosing builds a minimal one-candle series with the given close.
func seriesClosing(closeCents int64) []domain.Candle {
	return []domain.Candle{{
		Date:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Open:   closeCents,
		High:   closeCents,
		Low:    closeCents,
		Close:  closeCents,
		Volume: 5000,
	}}
}

func TestMatch_BuyAtOrBelowLimit(t *testing.T) {
	m, orders, trades, portfolio := newTestMatcher()
	o := openOrder(orders, "o1", "2330", domain.OrderActionBuy, 10500, 5)

	// Close 100.00 ≤ limit 105.00: fills.
	if filled := m.Match("2330", seriesClosing(10000)); filled != 1 {
		t.Fatalf("Match() = %d fills, want 1", filled)
	}
	if o.Status != domain.OrderStatusMatched {
		t.Errorf("status = %s, want matched", o.Status)
	}
	if got := portfolio.Quantity("2330"); got != 5 {
		t.Errorf("portfolio quantity = %d, want 5", got)
	}

	history := trades.All()
	if len(history) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(history))
	}
	tr := history[0]
	if tr.InstrumentID != "2330" || tr.Action != domain.OrderActionBuy || tr.Price != 10500 || tr.Quantity != 5 || !tr.Matched {
		t.Errorf("unexpected trade record: %+v", tr)
	}
	if tr.TradeID == "" {
		t.Error("trade record has no id")
	}
}

func TestMatch_BuyAboveLimitStaysOpen(t *testing.T) {
	m, orders, trades, portfolio := newTestMatcher()
	o := openOrder(orders, "o1", "2330", domain.OrderActionBuy, 10500, 5)

	// Close 106.00 > limit 105.00: no fill.
	if filled := m.Match("2330", seriesClosing(10600)); filled != 0 {
		t.Fatalf("Match() = %d fills, want 0", filled)
	}
	if o.Status != domain.OrderStatusOpen {
		t.Errorf("status = %s, want open", o.Status)
	}
	if got := portfolio.Quantity("2330"); got != 0 {
		t.Errorf("portfolio quantity = %d, want 0", got)
	}
	if len(trades.All()) != 0 {
		t.Error("expected empty trade history")
	}
}

func TestMatch_SellBoundaries(t *testing.T) {
	// Close 100.00: sell at 105 must not fill, sell at 95 must,
	// sell exactly at 100 must.
	m, orders, _, portfolio := newTestMatcher()
	portfolio.Apply("2330", domain.OrderActionBuy, 10)

	high := openOrder(orders, "s-high", "2330", domain.OrderActionSell, 10500, 2)
	low := openOrder(orders, "s-low", "2330", domain.OrderActionSell, 9500, 3)
	exact := openOrder(orders, "s-exact", "2330", domain.OrderActionSell, 10000, 1)

	if filled := m.Match("2330", seriesClosing(10000)); filled != 2 {
		t.Fatalf("Match() = %d fills, want 2", filled)
	}
	if high.Status != domain.OrderStatusOpen {
		t.Errorf("sell above close: status = %s, want open", high.Status)
	}
	if low.Status != domain.OrderStatusMatched {
		t.Errorf("sell below close: status = %s, want matched", low.Status)
	}
	if exact.Status != domain.OrderStatusMatched {
		t.Errorf("sell at close: status = %s, want matched", exact.Status)
	}
	if got := portfolio.Quantity("2330"); got != 6 {
		t.Errorf("portfolio quantity = %d, want 6", got)
	}
}

func TestMatch_OversellClampsAtZero(t *testing.T) {
	m, orders, trades, portfolio := newTestMatcher()
	portfolio.Apply("2330", domain.OrderActionBuy, 3)

	openOrder(orders, "o1", "2330", domain.OrderActionSell, 9500, 5)

	if filled := m.Match("2330", seriesClosing(10000)); filled != 1 {
		t.Fatalf("Match() = %d fills, want 1", filled)
	}
	if got := portfolio.Quantity("2330"); got != 0 {
		t.Errorf("portfolio quantity = %d, want 0 (clamped)", got)
	}
	// The fill is still recorded at full quantity.
	history := trades.All()
	if len(history) != 1 || history[0].Quantity != 5 {
		t.Errorf("unexpected history: %+v", history)
	}
}

func TestMatch_OnlyTargetInstrument(t *testing.T) {
	m, orders, _, portfolio := newTestMatcher()
	other := openOrder(orders, "o-other", "2317", domain.OrderActionBuy, 99999, 5)
	openOrder(orders, "o-target", "2330", domain.OrderActionBuy, 99999, 2)

	if filled := m.Match("2330", seriesClosing(10000)); filled != 1 {
		t.Fatalf("Match() = %d fills, want 1", filled)
	}
	if other.Status != domain.OrderStatusOpen {
		t.Errorf("other instrument's order status = %s, want open", other.Status)
	}
	if got := portfolio.Quantity("2317"); got != 0 {
		t.Errorf("portfolio quantity for 2317 = %d, want 0", got)
	}
}

func TestMatch_SkipsCanceledOrders(t *testing.T) {
	m, orders, _, portfolio := newTestMatcher()
	openOrder(orders, "o1", "2330", domain.OrderActionBuy, 99999, 5)
	if _, err := orders.Cancel("o1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if filled := m.Match("2330", seriesClosing(10000)); filled != 0 {
		t.Fatalf("Match() = %d fills, want 0", filled)
	}
	if got := portfolio.Quantity("2330"); got != 0 {
		t.Errorf("portfolio quantity = %d, want 0", got)
	}
}

func TestMatch_MatchedOrderNeverFillsTwice(t *testing.T) {
	m, orders, trades, portfolio := newTestMatcher()
	openOrder(orders, "o1", "2330", domain.OrderActionBuy, 10500, 5)

	m.Match("2330", seriesClosing(10000))
	m.Match("2330", seriesClosing(10000))

	if got := portfolio.Quantity("2330"); got != 5 {
		t.Errorf("portfolio quantity = %d, want 5 after repeated matching", got)
	}
	if len(trades.All()) != 1 {
		t.Errorf("len(history) = %d, want 1", len(trades.All()))
	}
}

func TestMatch_EmptySeriesNoop(t *testing.T) {
	m, orders, _, _ := newTestMatcher()
	o := openOrder(orders, "o1", "2330", domain.OrderActionBuy, 10500, 5)

	if filled := m.Match("2330", nil); filled != 0 {
		t.Fatalf("Match() = %d fills, want 0", filled)
	}
	if o.Status != domain.OrderStatusOpen {
		t.Errorf("status = %s, want open", o.Status)
	}
}

func TestMatch_FillsInSubmissionOrder(t *testing.T) {
	m, orders, trades, _ := newTestMatcher()
	openOrder(orders, "first", "2330", domain.OrderActionBuy, 99999, 1)
	openOrder(orders, "second", "2330", domain.OrderActionBuy, 99999, 2)
	openOrder(orders, "third", "2330", domain.OrderActionBuy, 99999, 3)

	m.Match("2330", seriesClosing(10000))

	history := trades.All()
	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3", len(history))
	}
	for i, wantQty := range []int64{1, 2, 3} {
		if history[i].Quantity != wantQty {
			t.Errorf("history[%d].Quantity = %d, want %d", i, history[i].Quantity, wantQty)
		}
	}
}
