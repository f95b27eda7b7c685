package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is the lifecycle stage of a presale campaign. Transitions only
// move forward: Active -> Closed -> Settled.
type State int

const (
	// StateActive means the campaign is selling (or waiting for its
	// window to open).
	StateActive State = iota
	// StateClosed means the campaign window ended and proceeds were
	// routed to the liquidity pool.
	StateClosed
	// StateSettled means the leftover inventory was withdrawn by the
	// owner. Terminal.
	StateSettled
)

// String returns the lowercase name used in storage and logs.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateSettled:
		return "settled"
	default:
		return "active"
	}
}

// ParseState converts a stored state name back into a State.
func ParseState(s string) State {
	switch s {
	case "closed":
		return StateClosed
	case "settled":
		return StateSettled
	default:
		return StateActive
	}
}

// Campaign is one time-boxed offer to sell a fixed inventory of a token
// at a fixed price. Token quantities and native-currency amounts are
// 18-decimal scaled integers. A campaign is never deleted; once settled
// it remains as an immutable historical record.
type Campaign struct {
	ID        int64
	Owner     string
	StartTime int64 // unix seconds, inclusive
	EndTime   int64 // unix seconds, exclusive
	// UnitPrice is the cost of one whole (1e18 base units) sale token,
	// denominated in native smallest units.
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	AmountLeft  decimal.Decimal
	// Raised is the native currency collected through purchases,
	// including accepted overpayment.
	Raised    decimal.Decimal
	State     State
	SaleToken string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sold returns the inventory sold so far.
func (c *Campaign) Sold() decimal.Decimal {
	return c.TotalAmount.Sub(c.AmountLeft)
}

// Started reports whether the sale window has opened at the given instant.
func (c *Campaign) Started(now time.Time) bool {
	return now.Unix() >= c.StartTime
}

// Ended reports whether the sale window has closed at the given instant.
func (c *Campaign) Ended(now time.Time) bool {
	return now.Unix() >= c.EndTime
}
