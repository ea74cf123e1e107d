package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/notify"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/transfer"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPlanBusy     = errors.New("plan is being processed")
	ErrPlanInactive = errors.New("plan is paused or deleted")
)

// Coordinator drives due plans through order creation and fund transfer.
// Each call processes at most one step per plan; state that decides the next
// step is always read back from the plan and ledger tables.
type Coordinator struct {
	logs        *zap.SugaredLogger
	plans       PlanStore
	ledger      Ledger
	exchange    Exchange
	sender      FundSender
	chains      Chains
	credentials Credentials
	notifier    Notifier
	registry    *networks.Registry
	maxAmount   decimal.Decimal
	now         func() time.Time
	locks       *planLocks
}

type CoordinatorOption func(*Coordinator)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) {
		c.now = now
	}
}

func NewCoordinator(
	logger *zap.SugaredLogger,
	plans PlanStore,
	ledger Ledger,
	exchange Exchange,
	sender FundSender,
	chains Chains,
	credentials Credentials,
	notifier Notifier,
	registry *networks.Registry,
	maxAmount decimal.Decimal,
	opts ...CoordinatorOption,
) *Coordinator {
	c := &Coordinator{
		logs:        logger,
		plans:       plans,
		ledger:      ledger,
		exchange:    exchange,
		sender:      sender,
		chains:      chains,
		credentials: credentials,
		notifier:    notifier,
		registry:    registry,
		maxAmount:   maxAmount,
		now:         time.Now,
		locks:       newPlanLocks(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tick processes every due plan once. A failing plan never stops the others.
func (c *Coordinator) Tick(ctx context.Context) []Execution {
	due, err := c.plans.DuePlans(ctx, c.now())
	if err != nil {
		c.logs.Errorw("select due plans", "error", err)
		return nil
	}

	executions := make([]Execution, 0, len(due))
	for _, plan := range due {
		if ctx.Err() != nil {
			c.logs.Warnw("tick interrupted", "error", ctx.Err())
			break
		}

		exec, err := c.run(ctx, plan.ID, false)
		switch {
		case errors.Is(err, ErrPlanBusy):
			c.logs.Infow("plan busy, skipping", "plan_id", plan.ID)
			continue
		case err != nil:
			c.logs.Errorw("plan step failed", "plan_id", plan.ID, "error", err)
			continue
		}
		executions = append(executions, exec)
	}

	return executions
}

// Execute runs one step for an owner's plan right away, applying the same
// eligibility rules as the scheduler.
func (c *Coordinator) Execute(ctx context.Context, owner string, planID uint) (Execution, error) {
	plan, err := c.plans.GetOwnedPlan(ctx, owner, planID)
	if err != nil {
		return Execution{}, err
	}
	if !plan.Active || plan.Lifecycle != repository.LifecycleLive {
		return Execution{}, ErrPlanInactive
	}

	return c.run(ctx, planID, true)
}

// stepState tracks the attempt opened during a step so a panic can close it.
type stepState struct {
	plan    repository.Plan
	order   *repository.LiveOrder
	attempt *repository.OrderAttempt
}

func (c *Coordinator) run(ctx context.Context, planID uint, manual bool) (exec Execution, err error) {
	if !c.locks.tryLock(planID) {
		return Execution{}, ErrPlanBusy
	}
	defer c.locks.unlock(planID)

	st := &stepState{}
	defer func() {
		if r := recover(); r != nil {
			c.logs.Errorw("panic while processing plan", "plan_id", planID, zap.Any("panic", r), zap.Stack("stack"))
			exec = c.unexpected(ctx, st, fmt.Errorf("panic: %v", r))
			err = nil
		}
	}()

	plan, err := c.plans.GetPlan(ctx, planID)
	if err != nil {
		return Execution{}, fmt.Errorf("load plan %d: %w", planID, err)
	}
	if !plan.Active || plan.Lifecycle != repository.LifecycleLive {
		return skipped(plan.ID, "plan is not active"), nil
	}
	if !manual && plan.NextDueAt.After(c.now()) {
		return skipped(plan.ID, "plan is not due"), nil
	}
	st.plan = plan

	exec, err = c.step(ctx, st)
	if err != nil && st.attempt == nil {
		return c.unexpected(ctx, st, err), nil
	}
	return exec, err
}

func (c *Coordinator) step(ctx context.Context, st *stepState) (Execution, error) {
	plan := st.plan
	now := c.now()
	logger := c.logs.With("plan_id", plan.ID, "owner", plan.Owner, "network", plan.Network)

	open, err := c.ledger.OpenAttempt(ctx, plan.ID)
	if err != nil {
		return Execution{}, err
	}

	var supersede *uint
	if open != nil {
		if open.State == repository.StateSending {
			return skipped(plan.ID, "attempt in flight"), nil
		}
		if now.Sub(open.CreatedAt) < plan.Interval() {
			return skipped(plan.ID, "blocked attempt waits for the plan interval"), nil
		}
		if exec, done, err := c.settleBlocked(ctx, plan, *open); done || err != nil {
			return exec, err
		}
		supersede = &open.ID
		logger.Infow("retrying blocked attempt", "attempt_id", open.ID, "order_id", open.OrderID)
	}

	if order, ok := plan.Order(); ok {
		switch {
		case !plan.HasLiveOrder(now):
			if err := c.plans.ClearLiveOrder(ctx, plan.ID, order.ID); err != nil {
				return conflictSkip(plan.ID, err)
			}
			logger.Infow("expired order reference cleared", "order_id", order.ID)

		case supersede != nil:
			if err := c.plans.ClearLiveOrder(ctx, plan.ID, order.ID); err != nil {
				return conflictSkip(plan.ID, err)
			}
			logger.Infow("order reference cleared for retry", "order_id", order.ID)

		default:
			latest, err := c.ledger.LatestAttempt(ctx, plan.ID, order.ID)
			if err != nil {
				return Execution{}, err
			}
			if latest == nil {
				return skipped(plan.ID, "order awaiting its first attempt"), nil
			}
			if err := c.plans.ClearLiveOrder(ctx, plan.ID, order.ID); err != nil {
				return conflictSkip(plan.ID, err)
			}
			logger.Infow("finished order reference cleared", "order_id", order.ID, "state", latest.State)
		}
	}

	limits, err := c.exchange.GetLimits(ctx, plan.Network)
	if err != nil {
		return c.exchangeFailure(ctx, plan, err), nil
	}

	upper := decimal.Min(limits.Max, c.maxAmount)
	if plan.Amount.LessThan(limits.Min) || plan.Amount.GreaterThan(upper) {
		next := now.Add(plan.Interval())
		if err := c.plans.Reschedule(ctx, plan.ID, next); err != nil {
			return Execution{}, err
		}
		event := c.event(notify.KindOutOfLimits, plan, nil)
		event.LimitMin, event.LimitMax, event.NextDueAt = limits.Min, upper, next
		c.notify(ctx, event)

		logger.Warnw("plan amount outside limits", "amount", plan.Amount, "min", limits.Min, "max", upper)
		return Execution{PlanID: plan.ID, Outcome: OutcomeOutOfLimits, Reason: fmt.Sprintf("limits %s - %s", limits.Min, upper)}, nil
	}

	created, err := c.exchange.CreateOrder(ctx, exchange.OrderRequest{
		Network:     plan.Network,
		Amount:      plan.Amount,
		Destination: plan.Destination,
	})
	if err != nil {
		return c.exchangeFailure(ctx, plan, err), nil
	}

	order := repository.LiveOrder{
		ID:          created.ID,
		Token:       created.Token,
		Address:     created.DepositAddress,
		Amount:      created.Amount(plan.Amount),
		Currency:    created.DepositCurrency,
		Destination: plan.Destination,
		ExpiresAt:   now.Add(created.ExpiresIn),
	}
	if err := c.plans.SetLiveOrder(ctx, plan.ID, order); err != nil {
		logger.Errorw("order created but not stored", "order_id", order.ID, "error", err)
		return conflictSkip(plan.ID, err)
	}
	st.order = &order
	logger.Infow("order created", "order_id", order.ID, "deposit", order.Address, "amount", order.Amount, "expires_at", order.ExpiresAt)

	if !c.credentials.Credentials(plan.Owner) {
		next := now.Add(plan.Interval())
		if supersede != nil {
			detail := fmt.Sprintf("superseded by order %s for manual deposit", order.ID)
			err := c.ledger.MarkFailed(ctx, *supersede, failure.KindTransient.String(), detail, next)
			if errors.Is(err, repository.ErrAttemptConflict) {
				return skipped(plan.ID, "attempt in flight"), nil
			}
			if err != nil {
				return Execution{}, err
			}
		} else if err := c.plans.Reschedule(ctx, plan.ID, next); err != nil {
			return Execution{}, err
		}
		event := c.event(notify.KindManualSend, plan, &order)
		event.NextDueAt = next
		c.notify(ctx, event)

		logger.Infow("wallet locked, order left for manual deposit", "order_id", order.ID)
		return c.orderExecution(plan.ID, OutcomeManual, order, "wallet credentials unavailable"), nil
	}

	return c.send(ctx, st, supersede)
}

// settleBlocked looks up the transfer a blocked attempt may have broadcast
// before anything is sent again. It reports done when the step ends here.
func (c *Coordinator) settleBlocked(ctx context.Context, plan repository.Plan, open repository.OrderAttempt) (Execution, bool, error) {
	if open.TransferTxHash == nil {
		return Execution{}, false, nil
	}
	hash := *open.TransferTxHash
	logger := c.logs.With("plan_id", plan.ID, "attempt_id", open.ID, "transfer_tx", hash)

	receipt, found, err := c.chains.Receipt(ctx, open.Network, hash)
	if err == nil && found && !receipt.Succeeded() {
		logger.Warnw("blocked transfer reverted, retrying")
		return Execution{}, false, nil
	}

	next := c.now().Add(plan.Interval())
	event := c.attemptEvent("", plan, open)
	exec := Execution{
		PlanID:    plan.ID,
		AttemptID: open.ID,
		OrderID:   open.OrderID,
		OrderURL:  exchange.OrderURL(open.OrderID),
	}

	if err == nil && found {
		if err := c.ledger.MarkSent(ctx, open.ID, receipt.BlockNumber, next); err != nil {
			if errors.Is(err, repository.ErrAttemptConflict) {
				return skipped(plan.ID, "attempt in flight"), true, nil
			}
			return Execution{}, true, err
		}
		event.Kind, event.NextDueAt = notify.KindSent, next
		c.notify(ctx, event)

		logger.Infow("blocked attempt confirmed sent", "block", receipt.BlockNumber)
		exec.Outcome = OutcomeSent
		return exec, true, nil
	}

	// Unknown on-chain state: sending again could pay twice.
	detail := fmt.Sprintf("transfer %s not confirmed, retry held back", hash)
	if err != nil {
		detail = fmt.Sprintf("%s: %v", detail, err)
	}
	if err := c.plans.Reschedule(ctx, plan.ID, next); err != nil {
		return Execution{}, true, err
	}
	event.Kind, event.Error, event.NextDueAt = notify.KindBlocked, detail, next
	c.notify(ctx, event)

	logger.Warnw("blocked transfer unconfirmed, retry held back", "error", err)
	exec.Outcome, exec.Reason = OutcomeBlocked, detail
	return exec, true, nil
}

// send writes the sending row and moves the funds. From here on every
// outcome is recorded on the attempt.
func (c *Coordinator) send(ctx context.Context, st *stepState, supersede *uint) (Execution, error) {
	plan, order := st.plan, *st.order
	logger := c.logs.With("plan_id", plan.ID, "order_id", order.ID)

	attempt := &repository.OrderAttempt{
		PlanID:         plan.ID,
		Owner:          plan.Owner,
		OrderID:        order.ID,
		OrderToken:     order.Token,
		Network:        plan.Network,
		Amount:         order.Amount,
		DepositAddress: order.Address,
		CreatedAt:      c.now(),
	}
	if err := c.ledger.BeginAttempt(ctx, attempt, supersede); err != nil {
		if errors.Is(err, repository.ErrAttemptInFlight) || errors.Is(err, repository.ErrAttemptConflict) {
			return skipped(plan.ID, "attempt in flight"), nil
		}
		return Execution{}, fmt.Errorf("begin attempt: %w", err)
	}
	st.attempt = attempt
	logger.Infow("attempt started", "attempt_id", attempt.ID, "amount", attempt.Amount)

	result, sendErr := c.sender.Send(ctx, transfer.Request{
		Owner:          plan.Owner,
		Network:        plan.Network,
		DepositAddress: order.Address,
		Amount:         order.Amount,
	}, &attemptRecorder{ledger: c.ledger, id: attempt.ID})

	// Bookkeeping must land even when the caller is shutting down.
	ctx = context.WithoutCancel(ctx)
	next := c.now().Add(plan.Interval())
	exec := c.orderExecution(plan.ID, "", order, "")
	exec.AttemptID = attempt.ID

	event := c.event("", plan, &order)
	event.ApproveTx = c.txLink(plan.Network, result.ApproveTxHash)
	event.TransferTx = c.txLink(plan.Network, result.TransferTxHash)

	if sendErr != nil {
		detail := sendErr.Error()
		event.Error = detail

		if failure.IsTransient(sendErr) {
			if err := c.ledger.MarkBlocked(ctx, attempt.ID, detail); err != nil {
				return exec, fmt.Errorf("mark attempt %d blocked: %w", attempt.ID, err)
			}
			event.Kind = notify.KindBlocked
			c.notify(ctx, event)

			logger.Warnw("attempt blocked", "attempt_id", attempt.ID, "error", sendErr)
			exec.Outcome, exec.Reason = OutcomeBlocked, detail
			return exec, nil
		}

		kind := failure.KindOf(sendErr).String()
		if err := c.ledger.MarkFailed(ctx, attempt.ID, kind, detail, next); err != nil {
			return exec, fmt.Errorf("mark attempt %d failed: %w", attempt.ID, err)
		}
		event.Kind, event.NextDueAt = notify.KindFailed, next
		c.notify(ctx, event)

		logger.Errorw("attempt failed", "attempt_id", attempt.ID, "kind", kind, "error", sendErr)
		exec.Outcome, exec.Reason = OutcomeFailed, detail
		return exec, nil
	}

	if err := c.ledger.MarkSent(ctx, attempt.ID, result.Block, next); err != nil {
		return exec, fmt.Errorf("mark attempt %d sent: %w", attempt.ID, err)
	}
	event.Kind, event.NextDueAt = notify.KindSent, next
	c.notify(ctx, event)

	logger.Infow("attempt sent", "attempt_id", attempt.ID, "transfer_tx", result.TransferTxHash, "block", result.Block)
	exec.Outcome = OutcomeSent
	return exec, nil
}

func (c *Coordinator) exchangeFailure(ctx context.Context, plan repository.Plan, err error) Execution {
	next := c.now().Add(plan.Interval())
	if rErr := c.plans.Reschedule(ctx, plan.ID, next); rErr != nil {
		c.logs.Errorw("reschedule after exchange failure", "plan_id", plan.ID, "error", rErr)
	}

	kind, outcome := notify.KindExchangeError, OutcomeExchangeError
	if errors.Is(err, exchange.ErrUnavailable) {
		kind, outcome = notify.KindExchangeUnavailable, OutcomeExchangeUnavailable
	}

	event := c.event(kind, plan, nil)
	event.Error, event.NextDueAt = err.Error(), next
	c.notify(ctx, event)

	c.logs.Warnw("exchange request failed", "plan_id", plan.ID, "network", plan.Network, "error", err)
	return Execution{PlanID: plan.ID, Outcome: outcome, Reason: err.Error()}
}

// unexpected handles errors outside the classified paths as permanent for
// this plan only.
func (c *Coordinator) unexpected(ctx context.Context, st *stepState, cause error) Execution {
	ctx = context.WithoutCancel(ctx)
	plan := st.plan
	next := c.now().Add(plan.Interval())

	if st.attempt != nil {
		err := c.ledger.MarkFailed(ctx, st.attempt.ID, failure.KindPermanent.String(), cause.Error(), next)
		if err != nil && !errors.Is(err, repository.ErrAttemptConflict) {
			c.logs.Errorw("close attempt after unexpected error", "attempt_id", st.attempt.ID, "error", err)
		}
	} else if plan.ID != 0 {
		if err := c.plans.Reschedule(ctx, plan.ID, next); err != nil {
			c.logs.Errorw("reschedule after unexpected error", "plan_id", plan.ID, "error", err)
		}
	}

	if plan.ID != 0 {
		event := c.event(notify.KindUnexpectedError, plan, st.order)
		event.Error = cause.Error()
		c.notify(ctx, event)
	}

	c.logs.Errorw("unexpected error while processing plan", "plan_id", plan.ID, "error", cause)
	exec := Execution{PlanID: plan.ID, Outcome: OutcomeError, Reason: cause.Error()}
	if st.attempt != nil {
		exec.AttemptID = st.attempt.ID
	}
	return exec
}

func (c *Coordinator) event(kind notify.Kind, plan repository.Plan, order *repository.LiveOrder) notify.Event {
	e := notify.Event{
		Kind:          kind,
		Owner:         plan.Owner,
		PlanID:        plan.ID,
		Network:       plan.Network,
		Amount:        plan.Amount,
		IntervalHours: plan.IntervalHours,
	}
	if order != nil {
		e.OrderID = order.ID
		e.OrderURL = exchange.OrderURL(order.ID)
		e.DepositAddress = order.Address
		e.DepositAmount = order.Amount
		e.DepositCurrency = order.Currency
	}
	return e
}

func (c *Coordinator) attemptEvent(kind notify.Kind, plan repository.Plan, attempt repository.OrderAttempt) notify.Event {
	e := c.event(kind, plan, nil)
	e.OrderID = attempt.OrderID
	e.OrderURL = exchange.OrderURL(attempt.OrderID)
	e.DepositAddress = attempt.DepositAddress
	e.DepositAmount = attempt.Amount
	if order, ok := plan.Order(); ok && order.ID == attempt.OrderID {
		e.DepositCurrency = order.Currency
	}
	if attempt.ApproveTxHash != nil {
		e.ApproveTx = c.txLink(plan.Network, *attempt.ApproveTxHash)
	}
	if attempt.TransferTxHash != nil {
		e.TransferTx = c.txLink(plan.Network, *attempt.TransferTxHash)
	}
	return e
}

func (c *Coordinator) txLink(network, hash string) notify.Link {
	if hash == "" {
		return notify.Link{}
	}
	link := notify.Link{Hash: hash}
	if n, err := c.registry.Lookup(network); err == nil {
		link.URL = n.TxURL(hash)
	}
	return link
}

func (c *Coordinator) notify(ctx context.Context, e notify.Event) {
	if err := c.notifier.Notify(ctx, e); err != nil {
		c.logs.Warnw("notification not delivered", "plan_id", e.PlanID, "kind", e.Kind, "error", err)
	}
}

func (c *Coordinator) orderExecution(planID uint, outcome Outcome, order repository.LiveOrder, reason string) Execution {
	return Execution{
		PlanID:   planID,
		Outcome:  outcome,
		Reason:   reason,
		OrderID:  order.ID,
		OrderURL: exchange.OrderURL(order.ID),
	}
}

func skipped(planID uint, reason string) Execution {
	return Execution{PlanID: planID, Outcome: OutcomeSkipped, Reason: reason}
}

// conflictSkip turns a lost compare-and-set into a skip.
func conflictSkip(planID uint, err error) (Execution, error) {
	if errors.Is(err, repository.ErrOrderConflict) {
		return skipped(planID, "order reference changed concurrently"), nil
	}
	return Execution{}, err
}

// attemptRecorder stores broadcast hashes on the attempt row.
type attemptRecorder struct {
	ledger Ledger
	id     uint
}

func (r *attemptRecorder) RecordApproval(ctx context.Context, hash string) error {
	return r.ledger.RecordApproval(context.WithoutCancel(ctx), r.id, hash)
}

func (r *attemptRecorder) RecordTransfer(ctx context.Context, hash string) error {
	return r.ledger.RecordTransfer(context.WithoutCancel(ctx), r.id, hash)
}
