package engine

import (
	"fmt"
	"time"

	"github.com/efreitasn/papertrade/internal/domain"
)

// Trading session bounds in minutes from midnight, [09:00, 13:30]
// inclusive at both ends.
const (
	sessionOpenMinute  = 9 * 60
	sessionCloseMinute = 13*60 + 30
)

// HoursGate admits new order submissions only during the trading
// session: Monday through Friday, 09:00–13:30 in the market timezone.
// Cancellation and quote requests are not gated.
type HoursGate struct {
	loc *time.Location
	now func() time.Time
}

// NewHoursGate creates a gate for the given market timezone, with now
// supplying the current wall-clock time.
func NewHoursGate(loc *time.Location, now func() time.Time) *HoursGate {
	return &HoursGate{loc: loc, now: now}
}

// Check returns nil during the session and a TradingClosedError
// explaining the window otherwise.
func (g *HoursGate) Check() error {
	t := g.now().In(g.loc)

	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return g.closed()
	}

	minute := t.Hour()*60 + t.Minute()
	if minute < sessionOpenMinute || minute > sessionCloseMinute {
		return g.closed()
	}
	return nil
}

func (g *HoursGate) closed() error {
	return &domain.TradingClosedError{
		Message: fmt.Sprintf("orders are accepted Monday through Friday 09:00-13:30 (%s) only", g.loc),
	}
}
