package store

import (
	"sync"

	"github.com/efreitasn/papertrade/internal/domain"
)

// PortfolioStore is the thread-safe mapping of instrument id to held
// quantity. Quantities never go negative: a sell exceeding the
// current holding clamps it at zero.
type PortfolioStore struct {
	mu       sync.RWMutex
	holdings map[string]int64
}

// NewPortfolioStore creates an empty PortfolioStore.
func NewPortfolioStore() *PortfolioStore {
	return &PortfolioStore{
		holdings: make(map[string]int64),
	}
}

// Apply mutates the holding for a filled order: a buy adds the
// quantity, a sell subtracts it clamped at zero. Returns the
// resulting quantity.
func (s *PortfolioStore) Apply(instrumentID string, action domain.OrderAction, quantity int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty := s.holdings[instrumentID]
	switch action {
	case domain.OrderActionBuy:
		qty += quantity
	case domain.OrderActionSell:
		qty -= quantity
		if qty < 0 {
			qty = 0
		}
	}
	s.holdings[instrumentID] = qty
	return qty
}

// Quantity returns the held quantity for an instrument, zero if none.
func (s *PortfolioStore) Quantity(instrumentID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.holdings[instrumentID]
}

// Snapshot returns a copy of all holdings, including zero entries
// left behind by fully sold positions.
func (s *PortfolioStore) Snapshot() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int64, len(s.holdings))
	for id, qty := range s.holdings {
		out[id] = qty
	}
	return out
}
