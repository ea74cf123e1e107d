package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/db"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidInterval    = errors.New("interval must be one of 12, 24, 168 or 720 hours")
	ErrInvalidAmount      = errors.New("amount outside the allowed range")
	ErrInvalidDestination = errors.New("invalid bitcoin address")
	ErrPlanLimitReached   = errors.New("plan limit reached for network")
	ErrDuplicatePlan      = errors.New("an identical plan already exists")
	ErrPendingOrder       = errors.New("a deleted identical plan still has an open order")
)

// AllowedIntervals are the plan cadences in hours.
var AllowedIntervals = []int{12, 24, 168, 720}

const historyLimit = 20

// PlanManager owns plan creation and the user facing lifecycle operations.
type PlanManager struct {
	logs     *zap.SugaredLogger
	plans    PlanStore
	ledger   Ledger
	exchange Exchange
	registry *networks.Registry
	limits   PlanLimits
	btcNet   *chaincfg.Params
	now      func() time.Time
}

type PlanManagerOption func(*PlanManager)

func WithPlanClock(now func() time.Time) PlanManagerOption {
	return func(m *PlanManager) {
		m.now = now
	}
}

// NewPlanManager validates destinations against testnet addresses when
// useTestnet is set.
func NewPlanManager(logger *zap.SugaredLogger, plans PlanStore, ledger Ledger, exchange Exchange, registry *networks.Registry, limits PlanLimits, useTestnet bool, opts ...PlanManagerOption) *PlanManager {
	btcNet := &chaincfg.MainNetParams
	if useTestnet {
		btcNet = &chaincfg.TestNet3Params
	}

	m := &PlanManager{
		logs:     logger,
		plans:    plans,
		ledger:   ledger,
		exchange: exchange,
		registry: registry,
		limits:   limits,
		btcNet:   btcNet,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create validates req and stores a new live plan, due one interval from now.
func (m *PlanManager) Create(ctx context.Context, owner string, req NewPlan) (repository.Plan, error) {
	req, err := m.validate(req)
	if err != nil {
		return repository.Plan{}, err
	}

	now := m.now()
	plan := &repository.Plan{
		Owner:         owner,
		Network:       req.Network,
		Amount:        req.Amount,
		IntervalHours: req.IntervalHours,
		Destination:   req.Destination,
		Active:        true,
		Lifecycle:     repository.LifecycleLive,
		NextDueAt:     now.Add(time.Duration(req.IntervalHours) * time.Hour),
	}

	err = m.plans.CreatePlan(ctx, plan, func(existing []repository.Plan) error {
		return m.admit(existing, *plan, now)
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return repository.Plan{}, ErrDuplicatePlan
		}
		return repository.Plan{}, err
	}

	m.logs.Infow("plan created", "plan_id", plan.ID, "owner", owner, "network", plan.Network, "amount", plan.Amount, "interval_hours", plan.IntervalHours)
	return *plan, nil
}

// admit enforces the per network plan cap and identity rules against the
// owner's other plans on the network.
func (m *PlanManager) admit(existing []repository.Plan, plan repository.Plan, now time.Time) error {
	live := 0
	for _, other := range existing {
		sameIdentity := other.Amount.Equal(plan.Amount) && other.IntervalHours == plan.IntervalHours

		switch other.Lifecycle {
		case repository.LifecycleLive:
			live++
			if sameIdentity {
				return ErrDuplicatePlan
			}
		case repository.LifecycleDeletedPendingOrder:
			if sameIdentity && other.HasLiveOrder(now) && other.OrderDestination != nil && *other.OrderDestination == plan.Destination {
				return ErrPendingOrder
			}
		}
	}

	if live >= m.limits.MaxPerNetwork {
		return fmt.Errorf("%w: %d plans on %s", ErrPlanLimitReached, m.limits.MaxPerNetwork, plan.Network)
	}
	return nil
}

func (m *PlanManager) validate(req NewPlan) (NewPlan, error) {
	if _, err := m.registry.Lookup(req.Network); err != nil {
		return req, failure.Validation(err)
	}

	if !validInterval(req.IntervalHours) {
		return req, failure.Validation(ErrInvalidInterval)
	}

	req.Amount = req.Amount.Round(2)
	if req.Amount.LessThan(m.limits.MinAmount) || req.Amount.GreaterThan(m.limits.MaxAmount) {
		return req, failure.Validation(fmt.Errorf("%w: %s not in [%s, %s]", ErrInvalidAmount, req.Amount, m.limits.MinAmount, m.limits.MaxAmount))
	}

	req.Destination = strings.TrimSpace(req.Destination)
	addr, err := btcutil.DecodeAddress(req.Destination, m.btcNet)
	if err != nil || !addr.IsForNet(m.btcNet) {
		return req, failure.Validation(fmt.Errorf("%w: %q", ErrInvalidDestination, req.Destination))
	}

	return req, nil
}

func (m *PlanManager) Pause(ctx context.Context, owner string, id uint) error {
	if err := m.plans.SetActive(ctx, owner, id, false); err != nil {
		return err
	}
	m.logs.Infow("plan paused", "plan_id", id, "owner", owner)
	return nil
}

func (m *PlanManager) Resume(ctx context.Context, owner string, id uint) error {
	if err := m.plans.SetActive(ctx, owner, id, true); err != nil {
		return err
	}
	m.logs.Infow("plan resumed", "plan_id", id, "owner", owner)
	return nil
}

// Delete retires a plan. A plan holding an unexpired order is kept as
// DeletedWithPendingOrder until the order expires.
func (m *PlanManager) Delete(ctx context.Context, owner string, id uint) (repository.Plan, error) {
	plan, err := m.plans.DeletePlan(ctx, owner, id, m.now())
	if err != nil {
		return repository.Plan{}, err
	}
	m.logs.Infow("plan deleted", "plan_id", id, "owner", owner, "lifecycle", plan.Lifecycle)
	return plan, nil
}

func (m *PlanManager) List(ctx context.Context, owner string) ([]repository.Plan, error) {
	return m.plans.ListPlans(ctx, owner)
}

// History returns the owner's most recent order attempts.
func (m *PlanManager) History(ctx context.Context, owner string) ([]repository.OrderAttempt, error) {
	return m.ledger.ListByOwner(ctx, owner, historyLimit)
}

// Limits returns the exchange limits for network, capped by the configured maximum.
func (m *PlanManager) Limits(ctx context.Context, network string) (exchange.Limits, error) {
	if _, err := m.registry.Lookup(network); err != nil {
		return exchange.Limits{}, failure.Validation(err)
	}

	limits, err := m.exchange.GetLimits(ctx, network)
	if err != nil {
		return exchange.Limits{}, err
	}
	limits.Max = decimal.Min(limits.Max, m.limits.MaxAmount)
	return limits, nil
}

func validInterval(hours int) bool {
	for _, allowed := range AllowedIntervals {
		if hours == allowed {
			return true
		}
	}
	return false
}
