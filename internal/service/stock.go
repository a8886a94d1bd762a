package service

import (
	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/engine"
)

// KlineSource produces a synthetic daily price series for an
// instrument.
type KlineSource interface {
	Generate(instrumentID string, days int) []domain.Candle
}

// StockService serves the instrument catalog and synthesized price
// series.
type StockService struct {
	catalog *domain.Catalog
	klines  KlineSource
	matcher *engine.Matcher
	days    int
}

// NewStockService creates a StockService producing series of the
// given length.
func NewStockService(catalog *domain.Catalog, klines KlineSource, matcher *engine.Matcher, days int) *StockService {
	return &StockService{
		catalog: catalog,
		klines:  klines,
		matcher: matcher,
		days:    days,
	}
}

// List returns the catalog in listing order.
func (s *StockService) List() []domain.Instrument {
	return s.catalog.List()
}

// Kline synthesizes a fresh series for the instrument and runs the
// matching engine against it before returning. This is the only
// matching trigger in the system.
func (s *StockService) Kline(instrumentID string) ([]domain.Candle, error) {
	if !s.catalog.Exists(instrumentID) {
		return nil, domain.ErrInstrumentNotFound
	}

	series := s.klines.Generate(instrumentID, s.days)
	s.matcher.Match(instrumentID, series)
	return series, nil
}
