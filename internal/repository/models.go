package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lifecycle is the tagged state of a plan.
type Lifecycle string

const (
	LifecycleLive                Lifecycle = "live"
	LifecycleDeletedPendingOrder Lifecycle = "deleted_pending_order"
	LifecycleDeleted             Lifecycle = "deleted"
)

// AttemptState is the state of one order attempt in the ledger.
type AttemptState string

const (
	StateScheduled AttemptState = "scheduled"
	StateSending   AttemptState = "sending"
	StateBlocked   AttemptState = "blocked"
	StateFailed    AttemptState = "failed"
	StateSent      AttemptState = "sent"
)

// Open reports whether the attempt still holds the plan's execution slot.
func (s AttemptState) Open() bool {
	return s == StateSending || s == StateBlocked
}

// Plan is a recurring purchase. The order columns hold the plan's live remote
// order reference, at most one at a time.
type Plan struct {
	ID            uint            `gorm:"primaryKey"`
	Owner         string          `gorm:"size:64;not null;index;uniqueIndex:idx_plans_live_identity,priority:1,where:lifecycle = 'live'"`
	Network       string          `gorm:"size:32;not null;uniqueIndex:idx_plans_live_identity,priority:2"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null;uniqueIndex:idx_plans_live_identity,priority:3"`
	IntervalHours int             `gorm:"not null;uniqueIndex:idx_plans_live_identity,priority:4"`
	Destination   string          `gorm:"size:128;not null"`
	Active        bool            `gorm:"not null;default:true"`
	Lifecycle     Lifecycle       `gorm:"size:32;not null;default:live;index"`
	NextDueAt     time.Time       `gorm:"not null;index"`

	OrderID          *string          `gorm:"size:64"`
	OrderToken       *string          `gorm:"size:128"`
	OrderAddress     *string          `gorm:"size:128"`
	OrderAmount      *decimal.Decimal `gorm:"type:numeric(30,8)"`
	OrderCurrency    *string          `gorm:"size:32"`
	OrderDestination *string          `gorm:"size:128"`
	OrderExpiresAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Plan) TableName() string {
	return "plans"
}

// Interval returns the plan cadence.
func (p Plan) Interval() time.Duration {
	return time.Duration(p.IntervalHours) * time.Hour
}

// HasLiveOrder reports whether the plan references a remote order that has not expired at now.
func (p Plan) HasLiveOrder(now time.Time) bool {
	return p.OrderID != nil && p.OrderExpiresAt != nil && p.OrderExpiresAt.After(now)
}

// HasOrder reports whether any order reference is stored, expired or not.
func (p Plan) HasOrder() bool {
	return p.OrderID != nil
}

// LiveOrder is the remote order reference persisted on a plan before funds move.
type LiveOrder struct {
	ID          string
	Token       string
	Address     string
	Amount      decimal.Decimal
	Currency    string
	Destination string
	ExpiresAt   time.Time
}

// Order returns the stored order reference.
func (p Plan) Order() (LiveOrder, bool) {
	if p.OrderID == nil {
		return LiveOrder{}, false
	}
	order := LiveOrder{ID: *p.OrderID}
	if p.OrderToken != nil {
		order.Token = *p.OrderToken
	}
	if p.OrderAddress != nil {
		order.Address = *p.OrderAddress
	}
	if p.OrderAmount != nil {
		order.Amount = *p.OrderAmount
	}
	if p.OrderCurrency != nil {
		order.Currency = *p.OrderCurrency
	}
	if p.OrderDestination != nil {
		order.Destination = *p.OrderDestination
	}
	if p.OrderExpiresAt != nil {
		order.ExpiresAt = *p.OrderExpiresAt
	}
	return order, true
}

// OrderAttempt is one ledger row: a single execution attempt for one remote order.
type OrderAttempt struct {
	ID             uint            `gorm:"primaryKey"`
	// The open index is per plan, not per order: a plan never has two transfers in flight.
	PlanID         uint            `gorm:"not null;index;uniqueIndex:idx_order_attempts_open,where:state = 'sending' OR state = 'blocked'"`
	Plan           *Plan           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Owner          string          `gorm:"size:64;not null;index"`
	OrderID        string          `gorm:"size:64;not null;index"`
	OrderToken     string          `gorm:"size:128"`
	Network        string          `gorm:"size:32;not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(30,8);not null"`
	DepositAddress string          `gorm:"size:128;not null"`
	State          AttemptState    `gorm:"size:16;not null;default:scheduled;index"`
	FailureKind    *string         `gorm:"size:16"`
	ErrorDetail    *string         `gorm:"type:text"`
	ApproveTxHash  *string         `gorm:"size:66"`
	TransferTxHash *string         `gorm:"size:66"`
	TransferBlock  *uint64
	CompletedAt    *time.Time
	PayoutTxID     *string         `gorm:"size:128"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderAttempt) TableName() string {
	return "order_attempts"
}

// User is an operator allowed to own plans and a wallet.
type User struct {
	ID             string `gorm:"primaryKey;size:36"`
	Username       string `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	TelegramChatID *int64
	CreatedAt      time.Time
}

func (User) TableName() string {
	return "users"
}

// Wallet records the public address of an owner's custodial wallet. Secret
// material stays in the custody provider.
type Wallet struct {
	Owner     string `gorm:"primaryKey;size:64"`
	Address   string `gorm:"size:42;not null"`
	CreatedAt time.Time
}

func (Wallet) TableName() string {
	return "wallets"
}

// Models lists every table the service migrates.
func Models() []any {
	return []any{&User{}, &Wallet{}, &Plan{}, &OrderAttempt{}}
}
