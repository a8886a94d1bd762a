package store

import (
	"sync"

	"github.com/google/btree"

	"github.com/efreitasn/papertrade/internal/domain"
)

// openEntry indexes an open order for creation-ordered iteration,
// grouped by instrument.
type openEntry struct {
	instrumentID string
	seq          uint64
	order        *domain.Order
}

// openLess orders entries by instrument id, then by submission
// sequence, so an instrument's open orders iterate oldest first.
func openLess(a, b openEntry) bool {
	if a.instrumentID != b.instrumentID {
		return a.instrumentID < b.instrumentID
	}
	return a.seq < b.seq
}

// OrderStore is the thread-safe in-memory order book. Orders are
// append-only with mutable status; a primary index holds every order
// by id and a B-tree holds the open ones in submission order per
// instrument.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order // order_id → order, all statuses
	open   *btree.BTreeG[openEntry]
	index  map[string]openEntry // order_id → open entry
	seq    uint64
}

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	const degree = 32
	return &OrderStore{
		orders: make(map[string]*domain.Order),
		open:   btree.NewG[openEntry](degree, openLess),
		index:  make(map[string]openEntry),
	}
}

// Create adds an open order to the book.
func (s *OrderStore) Create(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	entry := openEntry{instrumentID: o.InstrumentID, seq: s.seq, order: o}
	s.orders[o.OrderID] = o
	s.open.ReplaceOrInsert(entry)
	s.index[o.OrderID] = entry
}

// Get retrieves an order by id.
func (s *OrderStore) Get(id string) (*domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	return o, ok
}

// ListOpen returns open orders in submission order. A non-empty
// instrumentID restricts the listing to that instrument.
func (s *OrderStore) ListOpen(instrumentID string) []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*domain.Order{}
	if instrumentID == "" {
		s.open.Ascend(func(e openEntry) bool {
			result = append(result, e.order)
			return true
		})
		return result
	}

	s.open.AscendGreaterOrEqual(openEntry{instrumentID: instrumentID}, func(e openEntry) bool {
		if e.instrumentID != instrumentID {
			return false
		}
		result = append(result, e.order)
		return true
	})
	return result
}

// Cancel transitions an open order to canceled. A missing or already
// terminal order yields domain.ErrOrderNotCancelable.
func (s *OrderStore) Cancel(id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok || o.Status != domain.OrderStatusOpen {
		return nil, domain.ErrOrderNotCancelable
	}

	o.Status = domain.OrderStatusCanceled
	s.open.Delete(s.index[id])
	delete(s.index, id)
	return o, nil
}

// FillOpen runs fill over the instrument's open orders in submission
// order, transitioning to matched every order for which fill returns
// true. The write lock is held for the whole pass, so the matching
// engine's read-then-write scan is atomic with respect to submissions
// and cancellations.
func (s *OrderStore) FillOpen(instrumentID string, fill func(*domain.Order) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Snapshot the instrument's entries first: the tree must not be
	// mutated mid-iteration.
	var entries []openEntry
	s.open.AscendGreaterOrEqual(openEntry{instrumentID: instrumentID}, func(e openEntry) bool {
		if e.instrumentID != instrumentID {
			return false
		}
		entries = append(entries, e)
		return true
	})

	for _, e := range entries {
		if !fill(e.order) {
			continue
		}
		e.order.Status = domain.OrderStatusMatched
		s.open.Delete(e)
		delete(s.index, e.order.OrderID)
	}
}
