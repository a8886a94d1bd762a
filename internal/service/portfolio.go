package service

import (
	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

// Holding pairs a catalog instrument with its held quantity.
type Holding struct {
	Instrument domain.Instrument
	Quantity   int64
}

// PortfolioService reports current holdings and trade history.
type PortfolioService struct {
	catalog   *domain.Catalog
	portfolio *store.PortfolioStore
	trades    *store.TradeStore
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(catalog *domain.Catalog, portfolio *store.PortfolioStore, trades *store.TradeStore) *PortfolioService {
	return &PortfolioService{
		catalog:   catalog,
		portfolio: portfolio,
		trades:    trades,
	}
}

// Report returns holdings in catalog order, omitting zero-quantity
// positions (a fully sold instrument disappears), plus the full
// unpaginated trade history.
func (s *PortfolioService) Report() ([]Holding, []*domain.TradeRecord) {
	snapshot := s.portfolio.Snapshot()

	holdings := []Holding{}
	for _, ins := range s.catalog.List() {
		if qty := snapshot[ins.ID]; qty > 0 {
			holdings = append(holdings, Holding{Instrument: ins, Quantity: qty})
		}
	}
	return holdings, s.trades.All()
}
