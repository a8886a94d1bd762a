package handler

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/efreitasn/papertrade/internal/service"
)

// NewRouter creates a chi router with all routes registered, request
// logging, and wide-open CORS (the frontend is served from arbitrary
// origins during development).
func NewRouter(
	stockSvc *service.StockService,
	orderSvc *service.OrderService,
	portfolioSvc *service.PortfolioService,
	staticDir string,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(requestLogging(logger))
	r.Use(cors.AllowAll().Handler)

	// Create handlers.
	stockH := NewStockHandler(stockSvc)
	orderH := NewOrderHandler(orderSvc)
	portfolioH := NewPortfolioHandler(portfolioSvc)

	// Health check.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Market data.
	r.Get("/api/stocks", stockH.List)
	r.Get("/api/kline/{stock_id}", stockH.Kline)

	// Orders. Only the trade endpoint carries a body, so the
	// Content-Type check applies there alone.
	r.With(contentTypeJSON).Post("/api/trade", orderH.Submit)
	r.Get("/api/orders", orderH.ListOpen)
	r.Post("/api/cancel_order/{order_id}", orderH.Cancel)

	// Portfolio.
	r.Get("/api/portfolio", portfolioH.Report)

	// Frontend.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})

	return r
}

// requestLogging returns middleware that logs each request's method, path,
// status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// contentTypeJSON is middleware that rejects body-carrying requests
// whose Content-Type header doesn't start with "application/json"
// with 400 Bad Request before the handler runs.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(ct, "application/json") {
			WriteFail(w, http.StatusBadRequest, "Content-Type must be application/json")
			return
		}
		next.ServeHTTP(w, r)
	})
}
