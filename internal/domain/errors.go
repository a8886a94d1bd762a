package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrInstrumentNotFound = errors.New("instrument_not_found")
	ErrOrderNotCancelable = errors.New("order_not_cancelable")
)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TradingClosedError rejects order submission outside the trading
// window. The message explains the allowed window to the caller.
type TradingClosedError struct {
	Message string
}

func (e *TradingClosedError) Error() string {
	return e.Message
}
