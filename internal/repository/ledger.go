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
	// ErrAttemptInFlight is returned when the plan already holds an open attempt.
	ErrAttemptInFlight = errors.New("plan has an attempt in flight")
	// ErrAttemptConflict is returned when an attempt is no longer in the state a
	// transition expects.
	ErrAttemptConflict = errors.New("attempt state changed concurrently")
)

const supersededDetail = "superseded by retry"

type LedgerRepository struct {
	db *db.Database
}

func NewLedgerRepository(database *db.Database) *LedgerRepository {
	return &LedgerRepository{
		db: database,
	}
}

// OpenAttempt returns the plan's attempt in sending or blocked state, or nil.
func (r *LedgerRepository) OpenAttempt(ctx context.Context, planID uint) (*OrderAttempt, error) {
	var attempt OrderAttempt
	err := r.db.WithContext(ctx).
		Where("plan_id = ? AND state IN ?", planID, []AttemptState{StateSending, StateBlocked}).
		Order("id DESC").
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open attempt: %w", err)
	}
	return &attempt, nil
}

// LatestAttempt returns the newest attempt of the plan for orderID, or nil.
func (r *LedgerRepository) LatestAttempt(ctx context.Context, planID uint, orderID string) (*OrderAttempt, error) {
	var attempt OrderAttempt
	err := r.db.WithContext(ctx).
		Where("plan_id = ? AND order_id = ?", planID, orderID).
		Order("id DESC").
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest attempt: %w", err)
	}
	return &attempt, nil
}

// BeginAttempt writes attempt as sending before any funds move. When supersede
// is set, that blocked attempt is closed in the same transaction.
func (r *LedgerRepository) BeginAttempt(ctx context.Context, attempt *OrderAttempt, supersede *uint) error {
	attempt.State = StateSending
	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if supersede != nil {
			err := transition(tx, *supersede, []AttemptState{StateBlocked}, map[string]any{
				"state":        StateFailed,
				"error_detail": supersededDetail,
			})
			if err != nil {
				return fmt.Errorf("close blocked attempt %d: %w", *supersede, err)
			}
		}

		if err := tx.Create(attempt).Error; err != nil {
			if errors.Is(db.Translate(err), db.ErrDuplicate) {
				return ErrAttemptInFlight
			}
			return fmt.Errorf("insert attempt: %w", err)
		}
		return nil
	})
}

func (r *LedgerRepository) RecordApproval(ctx context.Context, id uint, hash string) error {
	return r.record(ctx, id, "approve_tx_hash", hash)
}

func (r *LedgerRepository) RecordTransfer(ctx context.Context, id uint, hash string) error {
	return r.record(ctx, id, "transfer_tx_hash", hash)
}

func (r *LedgerRepository) record(ctx context.Context, id uint, column, hash string) error {
	err := transition(r.db.WithContext(ctx), id, []AttemptState{StateSending}, map[string]any{column: hash})
	if err != nil {
		return fmt.Errorf("record %s on attempt %d: %w", column, id, err)
	}
	return nil
}

// MarkSent closes the attempt as sent and advances the plan schedule atomically.
// A blocked attempt can be closed too once its transfer is found on-chain.
func (r *LedgerRepository) MarkSent(ctx context.Context, id uint, block uint64, nextDue time.Time) error {
	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		attempt, err := loadAttempt(tx, id)
		if err != nil {
			return err
		}

		err = transition(tx, id, []AttemptState{StateSending, StateBlocked}, map[string]any{
			"state":          StateSent,
			"transfer_block": block,
			"error_detail":   nil,
			"failure_kind":   nil,
		})
		if err != nil {
			return fmt.Errorf("mark attempt %d sent: %w", id, err)
		}

		return reschedule(tx, attempt.PlanID, nextDue)
	})
}

// MarkBlocked parks the attempt after a transient failure. The schedule is kept.
func (r *LedgerRepository) MarkBlocked(ctx context.Context, id uint, detail string) error {
	err := transition(r.db.WithContext(ctx), id, []AttemptState{StateSending}, map[string]any{
		"state":        StateBlocked,
		"failure_kind": "transient",
		"error_detail": detail,
	})
	if err != nil {
		return fmt.Errorf("mark attempt %d blocked: %w", id, err)
	}
	return nil
}

// MarkFailed closes an open attempt as failed and advances the plan schedule atomically.
func (r *LedgerRepository) MarkFailed(ctx context.Context, id uint, kind, detail string, nextDue time.Time) error {
	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		attempt, err := loadAttempt(tx, id)
		if err != nil {
			return err
		}

		err = transition(tx, id, []AttemptState{StateSending, StateBlocked}, map[string]any{
			"state":        StateFailed,
			"failure_kind": kind,
			"error_detail": detail,
		})
		if err != nil {
			return fmt.Errorf("mark attempt %d failed: %w", id, err)
		}

		return reschedule(tx, attempt.PlanID, nextDue)
	})
}

// MarkCompleted records the exchange payout of a sent attempt.
func (r *LedgerRepository) MarkCompleted(ctx context.Context, id uint, payoutTxID string, at time.Time) error {
	updates := map[string]any{"completed_at": at.UTC()}
	if payoutTxID != "" {
		updates["payout_tx_id"] = payoutTxID
	}
	res := r.db.WithContext(ctx).
		Model(&OrderAttempt{}).
		Where("id = ? AND state = ? AND completed_at IS NULL", id, StateSent).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("mark attempt %d completed: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAttemptConflict
	}
	return nil
}

// ListByOwner returns the owner's most recent attempts, newest first.
func (r *LedgerRepository) ListByOwner(ctx context.Context, owner string, limit int) ([]OrderAttempt, error) {
	var attempts []OrderAttempt
	err := r.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("id DESC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	return attempts, nil
}

// Sending returns every attempt currently in sending state.
func (r *LedgerRepository) Sending(ctx context.Context) ([]OrderAttempt, error) {
	return r.byState(ctx, r.db.WithContext(ctx).Where("state = ?", StateSending))
}

// AwaitingCompletion returns sent attempts whose exchange payout is not recorded yet.
func (r *LedgerRepository) AwaitingCompletion(ctx context.Context) ([]OrderAttempt, error) {
	return r.byState(ctx, r.db.WithContext(ctx).Where("state = ? AND completed_at IS NULL", StateSent))
}

func (r *LedgerRepository) byState(_ context.Context, q *gorm.DB) ([]OrderAttempt, error) {
	var attempts []OrderAttempt
	if err := q.Order("id").Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("select attempts: %w", err)
	}
	return attempts, nil
}

func loadAttempt(tx *gorm.DB, id uint) (OrderAttempt, error) {
	var attempt OrderAttempt
	if err := tx.First(&attempt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderAttempt{}, fmt.Errorf("attempt %d: %w", id, ErrAttemptConflict)
		}
		return OrderAttempt{}, fmt.Errorf("load attempt %d: %w", id, err)
	}
	return attempt, nil
}

func transition(tx *gorm.DB, id uint, from []AttemptState, updates map[string]any) error {
	res := tx.Model(&OrderAttempt{}).Where("id = ? AND state IN ?", id, from).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAttemptConflict
	}
	return nil
}

func reschedule(tx *gorm.DB, planID uint, next time.Time) error {
	err := tx.Model(&Plan{}).Where("id = ?", planID).Update("next_due_at", next.UTC()).Error
	if err != nil {
		return fmt.Errorf("reschedule plan %d: %w", planID, err)
	}
	return nil
}
