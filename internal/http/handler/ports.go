package handler

import (
	"context"
	"net/http"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name PlanService . PlanService
type PlanService interface {
	Create(ctx context.Context, owner string, req core.NewPlan) (repository.Plan, error)
	List(ctx context.Context, owner string) ([]repository.Plan, error)
	Pause(ctx context.Context, owner string, id uint) error
	Resume(ctx context.Context, owner string, id uint) error
	Delete(ctx context.Context, owner string, id uint) (repository.Plan, error)
	History(ctx context.Context, owner string) ([]repository.OrderAttempt, error)
	Limits(ctx context.Context, network string) (exchange.Limits, error)
}

//counterfeiter:generate -o fake -fake-name Executor . Executor
type Executor interface {
	Execute(ctx context.Context, owner string, planID uint) (core.Execution, error)
}

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Status(ctx context.Context, owner string) (core.WalletStatus, error)
	Delete(ctx context.Context, owner string) error
}
