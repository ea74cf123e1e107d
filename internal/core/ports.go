package core

import (
	"context"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/ethereum"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/notify"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/transfer"
	tokenIssuer "github.com/Bezhaltur/Auto-DCA-bot/pkg/jwt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// PlanStore is the durable plan table.
type PlanStore interface {
	CreatePlan(ctx context.Context, plan *repository.Plan, check func(existing []repository.Plan) error) error
	GetPlan(ctx context.Context, id uint) (repository.Plan, error)
	GetOwnedPlan(ctx context.Context, owner string, id uint) (repository.Plan, error)
	ListPlans(ctx context.Context, owner string) ([]repository.Plan, error)
	DuePlans(ctx context.Context, now time.Time) ([]repository.Plan, error)
	SetActive(ctx context.Context, owner string, id uint, active bool) error
	DeletePlan(ctx context.Context, owner string, id uint, now time.Time) (repository.Plan, error)
	RetireExpiredPending(ctx context.Context, now time.Time) (int64, error)
	SetLiveOrder(ctx context.Context, planID uint, order repository.LiveOrder) error
	ClearLiveOrder(ctx context.Context, planID uint, orderID string) error
	Reschedule(ctx context.Context, planID uint, next time.Time) error
}

// Ledger is the order attempt table.
type Ledger interface {
	OpenAttempt(ctx context.Context, planID uint) (*repository.OrderAttempt, error)
	LatestAttempt(ctx context.Context, planID uint, orderID string) (*repository.OrderAttempt, error)
	BeginAttempt(ctx context.Context, attempt *repository.OrderAttempt, supersede *uint) error
	RecordApproval(ctx context.Context, id uint, hash string) error
	RecordTransfer(ctx context.Context, id uint, hash string) error
	MarkSent(ctx context.Context, id uint, block uint64, nextDue time.Time) error
	MarkBlocked(ctx context.Context, id uint, detail string) error
	MarkFailed(ctx context.Context, id uint, kind, detail string, nextDue time.Time) error
	MarkCompleted(ctx context.Context, id uint, payoutTxID string, at time.Time) error
	ListByOwner(ctx context.Context, owner string, limit int) ([]repository.OrderAttempt, error)
	Sending(ctx context.Context) ([]repository.OrderAttempt, error)
	AwaitingCompletion(ctx context.Context) ([]repository.OrderAttempt, error)
}

// UserStore holds operators and their wallet addresses.
type UserStore interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	SaveWallet(ctx context.Context, wallet repository.Wallet) error
	GetWallet(ctx context.Context, owner string) (repository.Wallet, error)
	DeleteWallet(ctx context.Context, owner string) error
}

//counterfeiter:generate -o fake -fake-name Exchange . Exchange
type Exchange interface {
	GetLimits(ctx context.Context, network string) (exchange.Limits, error)
	CreateOrder(ctx context.Context, req exchange.OrderRequest) (exchange.Order, error)
	OrderStatus(ctx context.Context, id, token string) (exchange.OrderState, error)
}

//counterfeiter:generate -o fake -fake-name FundSender . FundSender
type FundSender interface {
	Send(ctx context.Context, req transfer.Request, rec transfer.Recorder) (transfer.Result, error)
}

//counterfeiter:generate -o fake -fake-name Credentials . Credentials
type Credentials interface {
	Credentials(owner string) bool
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Notify(ctx context.Context, e notify.Event) error
}

//counterfeiter:generate -o fake -fake-name Chains . Chains
type Chains interface {
	Networks() []string
	Receipt(ctx context.Context, network, hash string) (ethereum.Receipt, bool, error)
	Balance(ctx context.Context, network string, owner common.Address) (ethereum.Balance, error)
}

//counterfeiter:generate -o fake -fake-name KeyVault . KeyVault
type KeyVault interface {
	Import(owner, hexKey, password string) (common.Address, error)
	Delete(owner string) error
}

//counterfeiter:generate -o fake -fake-name PasswordVault . PasswordVault
type PasswordVault interface {
	Store(owner, password string) error
	Remove(owner string) error
}

//counterfeiter:generate -o fake -fake-name PasswordSession . PasswordSession
type PasswordSession interface {
	Put(owner, password string)
	Invalidate(owner string)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
