package core

import (
	"context"
	"fmt"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/notify"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"go.uber.org/zap"
)

const interruptedDetail = "interrupted before the transfer was confirmed"

// Monitor resolves attempts left behind by a previous process and follows
// sent attempts until the exchange pays out.
type Monitor struct {
	logs     *zap.SugaredLogger
	plans    PlanStore
	ledger   Ledger
	exchange Exchange
	chains   Chains
	notifier Notifier
	registry *networks.Registry
	now      func() time.Time
}

type MonitorOption func(*Monitor)

func WithMonitorClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) {
		m.now = now
	}
}

func NewMonitor(logger *zap.SugaredLogger, plans PlanStore, ledger Ledger, exchange Exchange, chains Chains, notifier Notifier, registry *networks.Registry, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		logs:     logger,
		plans:    plans,
		ledger:   ledger,
		exchange: exchange,
		chains:   chains,
		notifier: notifier,
		registry: registry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reconcile closes every attempt still in sending state. It must run before
// the coordinator starts. Nothing is resent: a transfer whose outcome cannot
// be proven is failed and the owner is asked to check on-chain.
func (m *Monitor) Reconcile(ctx context.Context) error {
	attempts, err := m.ledger.Sending(ctx)
	if err != nil {
		return fmt.Errorf("load sending attempts: %w", err)
	}

	for _, attempt := range attempts {
		if err := m.reconcile(ctx, attempt); err != nil {
			m.logs.Errorw("reconcile attempt", "attempt_id", attempt.ID, "plan_id", attempt.PlanID, "error", err)
		}
	}

	if len(attempts) > 0 {
		m.logs.Infow("interrupted attempts reconciled", "count", len(attempts))
	}
	return nil
}

func (m *Monitor) reconcile(ctx context.Context, attempt repository.OrderAttempt) error {
	plan, err := m.plans.GetPlan(ctx, attempt.PlanID)
	if err != nil {
		return err
	}
	next := m.now().Add(plan.Interval())
	event := m.attemptEvent(plan, attempt)

	if attempt.TransferTxHash != nil {
		receipt, found, err := m.chains.Receipt(ctx, attempt.Network, *attempt.TransferTxHash)
		switch {
		case err != nil:
			m.logs.Warnw("transfer receipt lookup failed", "attempt_id", attempt.ID, "error", err)
		case found && receipt.Succeeded():
			if err := m.ledger.MarkSent(ctx, attempt.ID, receipt.BlockNumber, next); err != nil {
				return err
			}
			event.Kind, event.NextDueAt = notify.KindSent, next
			m.notify(ctx, event)
			m.logs.Infow("interrupted attempt confirmed sent", "attempt_id", attempt.ID, "block", receipt.BlockNumber)
			return nil
		case found:
			detail := fmt.Sprintf("transfer %s: transaction reverted", *attempt.TransferTxHash)
			if err := m.ledger.MarkFailed(ctx, attempt.ID, failure.KindPermanent.String(), detail, next); err != nil {
				return err
			}
			event.Kind, event.Error, event.NextDueAt = notify.KindFailed, detail, next
			m.notify(ctx, event)
			m.logs.Warnw("interrupted attempt reverted", "attempt_id", attempt.ID)
			return nil
		}
	}

	if err := m.ledger.MarkFailed(ctx, attempt.ID, failure.KindPermanent.String(), interruptedDetail, next); err != nil {
		return err
	}
	event.Kind, event.Error = notify.KindAttemptInterrupted, interruptedDetail
	m.notify(ctx, event)
	m.logs.Warnw("interrupted attempt marked failed", "attempt_id", attempt.ID, "plan_id", attempt.PlanID)
	return nil
}

// CheckCompletions polls the exchange for sent attempts whose payout is not
// recorded yet.
func (m *Monitor) CheckCompletions(ctx context.Context) {
	attempts, err := m.ledger.AwaitingCompletion(ctx)
	if err != nil {
		m.logs.Errorw("load attempts awaiting completion", "error", err)
		return
	}

	for _, attempt := range attempts {
		if ctx.Err() != nil {
			return
		}
		if attempt.OrderToken == "" {
			continue
		}

		state, err := m.exchange.OrderStatus(ctx, attempt.OrderID, attempt.OrderToken)
		if err != nil {
			m.logs.Warnw("order status lookup failed", "attempt_id", attempt.ID, "order_id", attempt.OrderID, "error", err)
			continue
		}

		switch state.Status {
		case exchange.StatusDone:
			m.complete(ctx, attempt, state)
		case exchange.StatusExpired, exchange.StatusEmergency:
			m.logs.Warnw("order needs attention on the exchange", "attempt_id", attempt.ID, "order_id", attempt.OrderID, "status", state.Status)
		}
	}
}

func (m *Monitor) complete(ctx context.Context, attempt repository.OrderAttempt, state exchange.OrderState) {
	if err := m.ledger.MarkCompleted(ctx, attempt.ID, state.PayoutTxID, m.now()); err != nil {
		m.logs.Errorw("mark attempt completed", "attempt_id", attempt.ID, "error", err)
		return
	}

	plan, err := m.plans.GetPlan(ctx, attempt.PlanID)
	if err != nil {
		m.logs.Errorw("load plan of completed attempt", "plan_id", attempt.PlanID, "error", err)
		return
	}

	event := m.attemptEvent(plan, attempt)
	event.Kind = notify.KindOrderCompleted
	if state.PayoutTxID != "" {
		event.PayoutTx = notify.Link{Hash: state.PayoutTxID}
		if n, err := m.registry.Lookup(attempt.Network); err == nil {
			event.PayoutTx.URL = n.PayoutURL(state.PayoutTxID)
		}
	}
	m.notify(ctx, event)
	m.logs.Infow("order completed", "attempt_id", attempt.ID, "order_id", attempt.OrderID, "payout_tx", state.PayoutTxID)
}

// Housekeeping retires deleted plans whose preserved order has expired.
func (m *Monitor) Housekeeping(ctx context.Context) {
	retired, err := m.plans.RetireExpiredPending(ctx, m.now())
	if err != nil {
		m.logs.Errorw("retire expired plans", "error", err)
		return
	}
	if retired > 0 {
		m.logs.Infow("deleted plans retired", "count", retired)
	}
}

func (m *Monitor) attemptEvent(plan repository.Plan, attempt repository.OrderAttempt) notify.Event {
	e := notify.Event{
		Owner:          attempt.Owner,
		PlanID:         plan.ID,
		Network:        attempt.Network,
		Amount:         plan.Amount,
		IntervalHours:  plan.IntervalHours,
		OrderID:        attempt.OrderID,
		OrderURL:       exchange.OrderURL(attempt.OrderID),
		DepositAddress: attempt.DepositAddress,
		DepositAmount:  attempt.Amount,
	}
	if order, ok := plan.Order(); ok && order.ID == attempt.OrderID {
		e.DepositCurrency = order.Currency
	}

	n, err := m.registry.Lookup(attempt.Network)
	if attempt.ApproveTxHash != nil {
		e.ApproveTx = notify.Link{Hash: *attempt.ApproveTxHash}
		if err == nil {
			e.ApproveTx.URL = n.TxURL(*attempt.ApproveTxHash)
		}
	}
	if attempt.TransferTxHash != nil {
		e.TransferTx = notify.Link{Hash: *attempt.TransferTxHash}
		if err == nil {
			e.TransferTx.URL = n.TxURL(*attempt.TransferTxHash)
		}
	}
	return e
}

func (m *Monitor) notify(ctx context.Context, e notify.Event) {
	if err := m.notifier.Notify(ctx, e); err != nil {
		m.logs.Warnw("notification not delivered", "plan_id", e.PlanID, "kind", e.Kind, "error", err)
	}
}
