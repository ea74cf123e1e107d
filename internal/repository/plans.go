package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrOrderConflict = errors.New("plan order reference changed concurrently")
)

type PlanRepository struct {
	db *db.Database
}

func NewPlanRepository(database *db.Database) *PlanRepository {
	return &PlanRepository{
		db: database,
	}
}

// CreatePlan inserts plan atomically with check, which receives the owner's
// plans on the same network that are not fully deleted and may veto the insert.
func (r *PlanRepository) CreatePlan(ctx context.Context, plan *Plan, check func(existing []Plan) error) error {
	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		var existing []Plan
		err := tx.Where("owner = ? AND network = ? AND lifecycle <> ?", plan.Owner, plan.Network, LifecycleDeleted).
			Order("id").
			Find(&existing).Error
		if err != nil {
			return fmt.Errorf("load owner plans: %w", err)
		}

		if err := check(existing); err != nil {
			return err
		}

		if err := tx.Create(plan).Error; err != nil {
			return fmt.Errorf("insert plan: %w", db.Translate(err))
		}
		return nil
	})
}

func (r *PlanRepository) GetPlan(ctx context.Context, id uint) (Plan, error) {
	var plan Plan
	err := r.db.WithContext(ctx).First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Plan{}, ErrPlanNotFound
		}
		return Plan{}, fmt.Errorf("get plan %d: %w", id, err)
	}
	return plan, nil
}

// GetOwnedPlan returns a plan of owner that is not fully deleted.
func (r *PlanRepository) GetOwnedPlan(ctx context.Context, owner string, id uint) (Plan, error) {
	var plan Plan
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner = ? AND lifecycle <> ?", id, owner, LifecycleDeleted).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Plan{}, ErrPlanNotFound
		}
		return Plan{}, fmt.Errorf("get plan %d: %w", id, err)
	}
	return plan, nil
}

func (r *PlanRepository) ListPlans(ctx context.Context, owner string) ([]Plan, error) {
	var plans []Plan
	err := r.db.WithContext(ctx).
		Where("owner = ? AND lifecycle <> ?", owner, LifecycleDeleted).
		Order("id").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// DuePlans returns active live plans whose next due time is not after now.
func (r *PlanRepository) DuePlans(ctx context.Context, now time.Time) ([]Plan, error) {
	var plans []Plan
	err := r.db.WithContext(ctx).
		Where("active = ? AND lifecycle = ? AND next_due_at <= ?", true, LifecycleLive, now.UTC()).
		Order("next_due_at, id").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("select due plans: %w", err)
	}
	return plans, nil
}

func (r *PlanRepository) SetActive(ctx context.Context, owner string, id uint, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("id = ? AND owner = ? AND lifecycle = ?", id, owner, LifecycleLive).
		Update("active", active)
	if res.Error != nil {
		return fmt.Errorf("update plan %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// DeletePlan retires a live plan. A plan still referencing an unexpired remote
// order keeps the reference and becomes DeletedWithPendingOrder.
func (r *PlanRepository) DeletePlan(ctx context.Context, owner string, id uint, now time.Time) (Plan, error) {
	var plan Plan
	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND owner = ? AND lifecycle = ?", id, owner, LifecycleLive).First(&plan).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return fmt.Errorf("load plan %d: %w", id, err)
		}

		updates := map[string]any{"active": false}
		if plan.HasLiveOrder(now) {
			updates["lifecycle"] = LifecycleDeletedPendingOrder
		} else {
			updates = clearedOrder()
			updates["active"] = false
			updates["lifecycle"] = LifecycleDeleted
		}

		err = tx.Model(&Plan{}).Where("id = ?", plan.ID).Updates(updates).Error
		if err != nil {
			return fmt.Errorf("retire plan %d: %w", id, err)
		}

		plan.Active = false
		plan.Lifecycle = updates["lifecycle"].(Lifecycle)
		if plan.Lifecycle == LifecycleDeleted {
			plan.OrderID, plan.OrderToken, plan.OrderAddress = nil, nil, nil
			plan.OrderAmount, plan.OrderCurrency, plan.OrderDestination, plan.OrderExpiresAt = nil, nil, nil, nil
		}
		return nil
	})
	if err != nil {
		return Plan{}, err
	}

	return plan, nil
}

// RetireExpiredPending moves DeletedWithPendingOrder plans whose order expired to Deleted.
func (r *PlanRepository) RetireExpiredPending(ctx context.Context, now time.Time) (int64, error) {
	updates := clearedOrder()
	updates["lifecycle"] = LifecycleDeleted

	res := r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("lifecycle = ? AND (order_expires_at IS NULL OR order_expires_at <= ?)", LifecycleDeletedPendingOrder, now.UTC()).
		Updates(updates)
	if res.Error != nil {
		return 0, fmt.Errorf("retire expired plans: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// SetLiveOrder stores order on the plan if the plan carries no order reference.
func (r *PlanRepository) SetLiveOrder(ctx context.Context, planID uint, order LiveOrder) error {
	res := r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("id = ? AND order_id IS NULL", planID).
		Updates(map[string]any{
			"order_id":          order.ID,
			"order_token":       order.Token,
			"order_address":     order.Address,
			"order_amount":      order.Amount,
			"order_currency":    order.Currency,
			"order_destination": order.Destination,
			"order_expires_at":  order.ExpiresAt.UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("store order on plan %d: %w", planID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrOrderConflict
	}
	return nil
}

// ClearLiveOrder drops the plan's order reference if it still points at orderID.
func (r *PlanRepository) ClearLiveOrder(ctx context.Context, planID uint, orderID string) error {
	res := r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("id = ? AND order_id = ?", planID, orderID).
		Updates(clearedOrder())
	if res.Error != nil {
		return fmt.Errorf("clear order on plan %d: %w", planID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrOrderConflict
	}
	return nil
}

func (r *PlanRepository) Reschedule(ctx context.Context, planID uint, next time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Plan{}).
		Where("id = ?", planID).
		Update("next_due_at", next.UTC())
	if res.Error != nil {
		return fmt.Errorf("reschedule plan %d: %w", planID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func clearedOrder() map[string]any {
	return map[string]any{
		"order_id":          nil,
		"order_token":       nil,
		"order_address":     nil,
		"order_amount":      nil,
		"order_currency":    nil,
		"order_destination": nil,
		"order_expires_at":  nil,
	}
}
