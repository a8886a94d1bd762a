package service

import (
	"errors"
	"testing"
	"time"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/engine"
	"github.com/efreitasn/papertrade/internal/store"
)

// stubKlines is a KlineSource returning a canned series, so matching
// outcomes are deterministic.
type stubKlines struct {
	series []domain.Candle
}

func (s *stubKlines) Generate(instrumentID string, days int) []domain.Candle {
	return s.series
}

func seriesClosingAt(closeCents int64) []domain.Candle {
	return []domain.Candle{{
		Date:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Open:   closeCents,
		High:   closeCents,
		Low:    closeCents,
		Close:  closeCents,
		Volume: 5000,
	}}
}

func newTestStockService(closeCents int64) (*StockService, *store.OrderStore, *store.PortfolioStore) {
	orders := store.NewOrderStore()
	trades := store.NewTradeStore()
	portfolio := store.NewPortfolioStore()
	matcher := engine.NewMatcher(orders, trades, portfolio)
	svc := NewStockService(domain.DefaultCatalog(), &stubKlines{series: seriesClosingAt(closeCents)}, matcher, 60)
	return svc, orders, portfolio
}

func TestList(t *testing.T) {
	svc, _, _ := newTestStockService(10000)

	list := svc.List()
	if len(list) != 10 {
		t.Fatalf("len(List) = %d, want 10", len(list))
	}
}

func TestKline_UnknownInstrument(t *testing.T) {
	svc, _, _ := newTestStockService(10000)

	if _, err := svc.Kline("9999"); !errors.Is(err, domain.ErrInstrumentNotFound) {
		t.Errorf("Kline(9999) = %v, want ErrInstrumentNotFound", err)
	}
}

func TestKline_TriggersMatching(t *testing.T) {
	svc, orders, portfolio := newTestStockService(10000)

	o := &domain.Order{
		OrderID:      "o1",
		Date:         time.Now(),
		InstrumentID: "2330",
		Action:       domain.OrderActionBuy,
		LimitPrice:   10500,
		Quantity:     5,
		Status:       domain.OrderStatusOpen,
		CreatedAt:    time.Now(),
	}
	orders.Create(o)

	series, err := svc.Kline("2330")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("len(series) = %d, want 1", len(series))
	}

	if o.Status != domain.OrderStatusMatched {
		t.Errorf("order status = %s after kline fetch, want matched", o.Status)
	}
	if got := portfolio.Quantity("2330"); got != 5 {
		t.Errorf("portfolio quantity = %d, want 5", got)
	}
}

func TestKline_DoesNotMatchOtherInstruments(t *testing.T) {
	svc, orders, _ := newTestStockService(10000)

	o := &domain.Order{
		OrderID:      "o1",
		Date:         time.Now(),
		InstrumentID: "2317",
		Action:       domain.OrderActionBuy,
		LimitPrice:   99999,
		Quantity:     5,
		Status:       domain.OrderStatusOpen,
		CreatedAt:    time.Now(),
	}
	orders.Create(o)

	if _, err := svc.Kline("2330"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != domain.OrderStatusOpen {
		t.Errorf("order status = %s, want open (different instrument)", o.Status)
	}
}
