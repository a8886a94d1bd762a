package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/service"
)

// StockHandler handles HTTP requests for catalog and kline endpoints.
type StockHandler struct {
	stockSvc *service.StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockSvc *service.StockService) *StockHandler {
	return &StockHandler{stockSvc: stockSvc}
}

// instrumentResponse is one catalog entry in GET /api/stocks.
type instrumentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// candleResponse is one daily price bar in GET /api/kline/{stock_id}.
type candleResponse struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// List handles GET /api/stocks.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	instruments := h.stockSvc.List()

	resp := make([]instrumentResponse, len(instruments))
	for i, ins := range instruments {
		resp[i] = instrumentResponse{ID: ins.ID, Name: ins.Name}
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Kline handles GET /api/kline/{stock_id}. Fetching a series is the
// trigger for order matching, so this request has side effects on the
// order book, portfolio, and trade history.
func (h *StockHandler) Kline(w http.ResponseWriter, r *http.Request) {
	stockID := chi.URLParam(r, "stock_id")

	series, err := h.stockSvc.Kline(stockID)
	if err != nil {
		if errors.Is(err, domain.ErrInstrumentNotFound) {
			WriteFail(w, http.StatusNotFound, "unknown stock id")
			return
		}
		WriteFail(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	resp := make([]candleResponse, len(series))
	for i, c := range series {
		resp[i] = candleResponse{
			Date:   c.Date.Format(dateLayout),
			Open:   domain.CentsToDollars(c.Open),
			High:   domain.CentsToDollars(c.High),
			Low:    domain.CentsToDollars(c.Low),
			Close:  domain.CentsToDollars(c.Close),
			Volume: c.Volume,
		}
	}
	WriteJSON(w, http.StatusOK, resp)
}
