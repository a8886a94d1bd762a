package store

import (
	"sync"

	"github.com/efreitasn/papertrade/internal/domain"
)

// TradeStore is the thread-safe append-only trade history,
// chronological across all instruments.
type TradeStore struct {
	mu      sync.RWMutex
	records []*domain.TradeRecord
}

// NewTradeStore creates an empty TradeStore.
func NewTradeStore() *TradeStore {
	return &TradeStore{}
}

// Append adds a record to the history.
func (s *TradeStore) Append(t *domain.TradeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, t)
}

// All returns the full history in execution order. The returned
// slice is a copy to keep callers from mutating the internal one.
func (s *TradeStore) All() []*domain.TradeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.TradeRecord, len(s.records))
	copy(result, s.records)
	return result
}
