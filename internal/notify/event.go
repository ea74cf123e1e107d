package notify

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindSent                Kind = "sent"
	KindBlocked             Kind = "blocked"
	KindFailed              Kind = "failed"
	KindManualSend          Kind = "manual-send"
	KindOutOfLimits         Kind = "out-of-limits"
	KindExchangeUnavailable Kind = "exchange-unavailable"
	KindExchangeError       Kind = "exchange-error"
	KindUnexpectedError     Kind = "unexpected-error"
	KindOrderCompleted      Kind = "order-completed"
	KindAttemptInterrupted  Kind = "attempt-interrupted"
)

// Link is a transaction hash with its explorer page, when known.
type Link struct {
	Hash string
	URL  string
}

func (l Link) String() string {
	if l.URL != "" {
		return l.URL
	}
	return l.Hash
}

// Event is a status update for the owner of a plan.
type Event struct {
	Kind          Kind
	Owner         string
	PlanID        uint
	Network       string
	Amount        decimal.Decimal
	IntervalHours int

	OrderID         string
	OrderURL        string
	DepositAddress  string
	DepositAmount   decimal.Decimal
	DepositCurrency string

	ApproveTx  Link
	TransferTx Link
	PayoutTx   Link

	LimitMin decimal.Decimal
	LimitMax decimal.Decimal

	Error     string
	NextDueAt time.Time
}
