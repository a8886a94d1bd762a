package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/engine"
	"github.com/efreitasn/papertrade/internal/store"
)

// SubmitOrderRequest represents the input for order submission.
// Price and Quantity are pointers so absent fields are distinguishable
// from zero values.
type SubmitOrderRequest struct {
	StockID  string
	Action   string
	Price    *float64
	Quantity *int64
}

// OrderService handles order submission, listing, and cancellation.
type OrderService struct {
	catalog *domain.Catalog
	gate    *engine.HoursGate
	orders  *store.OrderStore
	now     func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(catalog *domain.Catalog, gate *engine.HoursGate, orders *store.OrderStore, now func() time.Time) *OrderService {
	return &OrderService{
		catalog: catalog,
		gate:    gate,
		orders:  orders,
		now:     now,
	}
}

// Submit places a new open order. The trading-hours gate is checked
// before anything else, so an out-of-session submission is rejected
// regardless of field validity. The order rests on the book until a
// kline fetch runs the matching engine.
func (s *OrderService) Submit(req SubmitOrderRequest) (*domain.Order, error) {
	if err := s.gate.Check(); err != nil {
		return nil, err
	}

	action := domain.OrderAction(req.Action)
	if action != domain.OrderActionBuy && action != domain.OrderActionSell {
		return nil, &domain.ValidationError{
			Message: "action must be 'buy' or 'sell'",
		}
	}
	if req.Price == nil || *req.Price <= 0 {
		return nil, &domain.ValidationError{
			Message: "price must be greater than 0",
		}
	}
	priceCents, err := domain.DollarsToCents(*req.Price)
	if err != nil {
		return nil, &domain.ValidationError{
			Message: "price must have at most 2 decimal places",
		}
	}
	if req.Quantity == nil || *req.Quantity <= 0 {
		return nil, &domain.ValidationError{
			Message: "quantity must be a positive integer",
		}
	}
	if !s.catalog.Exists(req.StockID) {
		return nil, domain.ErrInstrumentNotFound
	}

	now := s.now()
	order := &domain.Order{
		OrderID:      uuid.New().String(),
		Date:         now,
		InstrumentID: req.StockID,
		Action:       action,
		LimitPrice:   priceCents,
		Quantity:     *req.Quantity,
		Status:       domain.OrderStatusOpen,
		CreatedAt:    now,
	}
	s.orders.Create(order)
	return order, nil
}

// ListOpen returns open orders in submission order, optionally
// restricted to one instrument.
func (s *OrderService) ListOpen(stockID string) []*domain.Order {
	return s.orders.ListOpen(stockID)
}

// Cancel transitions an open order to canceled. A missing or already
// terminal order yields domain.ErrOrderNotCancelable.
func (s *OrderService) Cancel(orderID string) (*domain.Order, error) {
	return s.orders.Cancel(orderID)
}
