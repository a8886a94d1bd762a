package handler

import (
	"net/http"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/service"
)

// PortfolioHandler handles GET /api/portfolio.
type PortfolioHandler struct {
	portfolioSvc *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioSvc *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioSvc: portfolioSvc}
}

// holdingResponse is one held position in the portfolio report.
type holdingResponse struct {
	StockID  string `json:"stock_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// tradeRecordResponse is one executed trade in the history.
type tradeRecordResponse struct {
	Date     string  `json:"date"`
	StockID  string  `json:"stock_id"`
	Action   string  `json:"action"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Matched  bool    `json:"matched"`
}

// portfolioResponse is the JSON response for GET /api/portfolio.
type portfolioResponse struct {
	Portfolio    []holdingResponse     `json:"portfolio"`
	TradeHistory []tradeRecordResponse `json:"trade_history"`
}

// Report handles GET /api/portfolio.
func (h *PortfolioHandler) Report(w http.ResponseWriter, r *http.Request) {
	holdings, history := h.portfolioSvc.Report()

	resp := portfolioResponse{
		Portfolio:    make([]holdingResponse, len(holdings)),
		TradeHistory: make([]tradeRecordResponse, len(history)),
	}
	for i, hld := range holdings {
		resp.Portfolio[i] = holdingResponse{
			StockID:  hld.Instrument.ID,
			Name:     hld.Instrument.Name,
			Quantity: hld.Quantity,
		}
	}
	for i, t := range history {
		resp.TradeHistory[i] = tradeRecordResponse{
			Date:     t.Date.Format(dateLayout),
			StockID:  t.InstrumentID,
			Action:   string(t.Action),
			Price:    domain.CentsToDollars(t.Price),
			Quantity: t.Quantity,
			Matched:  t.Matched,
		}
	}
	WriteJSON(w, http.StatusOK, resp)
}
