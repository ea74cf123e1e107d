package handler

import (
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/notify"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
)

type orderView struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	DepositAddress string    `json:"deposit_address,omitempty"`
	DepositAmount  string    `json:"deposit_amount,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type planView struct {
	ID            uint       `json:"id"`
	Network       string     `json:"network"`
	Amount        string     `json:"amount"`
	IntervalHours int        `json:"interval_hours"`
	Every         string     `json:"every"`
	Destination   string     `json:"destination"`
	Active        bool       `json:"active"`
	Lifecycle     string     `json:"lifecycle"`
	NextDueAt     time.Time  `json:"next_due_at"`
	Order         *orderView `json:"order,omitempty"`
}

type attemptView struct {
	ID             uint       `json:"id"`
	PlanID         uint       `json:"plan_id"`
	OrderID        string     `json:"order_id"`
	OrderURL       string     `json:"order_url"`
	Network        string     `json:"network"`
	Amount         string     `json:"amount"`
	DepositAddress string     `json:"deposit_address"`
	State          string     `json:"state"`
	FailureKind    string     `json:"failure_kind,omitempty"`
	Error          string     `json:"error,omitempty"`
	ApproveTx      string     `json:"approve_tx,omitempty"`
	TransferTx     string     `json:"transfer_tx,omitempty"`
	Block          uint64     `json:"block,omitempty"`
	PayoutTx       string     `json:"payout_tx,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type limitsView struct {
	Network string `json:"network"`
	Min     string `json:"min"`
	Max     string `json:"max"`
}

func toPlanView(p repository.Plan) planView {
	v := planView{
		ID:            p.ID,
		Network:       p.Network,
		Amount:        p.Amount.StringFixed(2),
		IntervalHours: p.IntervalHours,
		Every:         notify.Interval(p.IntervalHours),
		Destination:   p.Destination,
		Active:        p.Active,
		Lifecycle:     string(p.Lifecycle),
		NextDueAt:     p.NextDueAt.UTC(),
	}
	if order, ok := p.Order(); ok {
		v.Order = &orderView{
			ID:             order.ID,
			URL:            exchange.OrderURL(order.ID),
			DepositAddress: order.Address,
			Currency:       order.Currency,
			ExpiresAt:      order.ExpiresAt.UTC(),
		}
		if !order.Amount.IsZero() {
			v.Order.DepositAmount = order.Amount.String()
		}
	}
	return v
}

func toPlanViews(plans []repository.Plan) []planView {
	views := make([]planView, 0, len(plans))
	for _, p := range plans {
		views = append(views, toPlanView(p))
	}
	return views
}

func toAttemptViews(attempts []repository.OrderAttempt) []attemptView {
	views := make([]attemptView, 0, len(attempts))
	for _, a := range attempts {
		v := attemptView{
			ID:             a.ID,
			PlanID:         a.PlanID,
			OrderID:        a.OrderID,
			OrderURL:       exchange.OrderURL(a.OrderID),
			Network:        a.Network,
			Amount:         a.Amount.String(),
			DepositAddress: a.DepositAddress,
			State:          string(a.State),
			FailureKind:    deref(a.FailureKind),
			Error:          deref(a.ErrorDetail),
			ApproveTx:      deref(a.ApproveTxHash),
			TransferTx:     deref(a.TransferTxHash),
			PayoutTx:       deref(a.PayoutTxID),
			CompletedAt:    a.CompletedAt,
			CreatedAt:      a.CreatedAt.UTC(),
		}
		if a.TransferBlock != nil {
			v.Block = *a.TransferBlock
		}
		views = append(views, v)
	}
	return views
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
