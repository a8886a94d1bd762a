package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/service"
)

// OrderHandler handles HTTP requests for order endpoints.
type OrderHandler struct {
	orderSvc *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc *service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// tradeRequest is the JSON request body for POST /api/trade.
type tradeRequest struct {
	StockID  string   `json:"stock_id"`
	Action   string   `json:"action"`
	Price    *float64 `json:"price"`
	Quantity *int64   `json:"quantity"`
}

// orderResponse is one order in GET /api/orders.
type orderResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	StockID  string  `json:"stock_id"`
	Action   string  `json:"action"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Status   string  `json:"status"`
}

// Submit handles POST /api/trade.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteFail(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.orderSvc.Submit(service.SubmitOrderRequest{
		StockID:  req.StockID,
		Action:   req.Action,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		mapOrderError(w, err)
		return
	}

	WriteSuccess(w, "order accepted; it fills automatically when the market price touches the limit")
}

// ListOpen handles GET /api/orders?stock_id=.
func (h *OrderHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	stockID := r.URL.Query().Get("stock_id")

	orders := h.orderSvc.ListOpen(stockID)
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = orderResponse{
			ID:       o.OrderID,
			Date:     o.Date.Format(dateLayout),
			StockID:  o.InstrumentID,
			Action:   string(o.Action),
			Price:    domain.CentsToDollars(o.LimitPrice),
			Quantity: o.Quantity,
			Status:   string(o.Status),
		}
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Cancel handles POST /api/cancel_order/{order_id}.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	if _, err := h.orderSvc.Cancel(orderID); err != nil {
		if errors.Is(err, domain.ErrOrderNotCancelable) {
			WriteFail(w, http.StatusNotFound, "no cancelable order with that id")
			return
		}
		WriteFail(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	WriteSuccess(w, "order canceled")
}

// mapOrderError maps domain errors to HTTP responses for the trade
// endpoint.
func mapOrderError(w http.ResponseWriter, err error) {
	var closedErr *domain.TradingClosedError
	if errors.As(err, &closedErr) {
		WriteFail(w, http.StatusForbidden, closedErr.Message)
		return
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteFail(w, http.StatusBadRequest, validationErr.Message)
		return
	}

	if errors.Is(err, domain.ErrInstrumentNotFound) {
		WriteFail(w, http.StatusNotFound, "unknown stock id")
		return
	}

	WriteFail(w, http.StatusInternalServerError, "An unexpected error occurred")
}
