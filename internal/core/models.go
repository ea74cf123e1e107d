package core

import (
	"github.com/Bezhaltur/Auto-DCA-bot/internal/ethereum"
	"github.com/shopspring/decimal"
)

// Outcome is what one coordinator step did with a plan.
type Outcome string

const (
	OutcomeSkipped             Outcome = "skipped"
	OutcomeOutOfLimits         Outcome = "out_of_limits"
	OutcomeExchangeUnavailable Outcome = "exchange_unavailable"
	OutcomeExchangeError       Outcome = "exchange_error"
	OutcomeManual              Outcome = "manual"
	OutcomeSent                Outcome = "sent"
	OutcomeBlocked             Outcome = "blocked"
	OutcomeFailed              Outcome = "failed"
	OutcomeError               Outcome = "error"
)

// Execution reports the result of processing one plan.
type Execution struct {
	PlanID    uint    `json:"plan_id"`
	Outcome   Outcome `json:"outcome"`
	Reason    string  `json:"reason,omitempty"`
	OrderID   string  `json:"order_id,omitempty"`
	OrderURL  string  `json:"order_url,omitempty"`
	AttemptID uint    `json:"attempt_id,omitempty"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewPlan is a plan creation request.
type NewPlan struct {
	Network       string
	Amount        decimal.Decimal
	IntervalHours int
	Destination   string
}

// PlanLimits bounds what users may configure.
type PlanLimits struct {
	MinAmount     decimal.Decimal
	MaxAmount     decimal.Decimal
	MaxPerNetwork int
}

type WalletStatus struct {
	Address  string             `json:"address"`
	Balances []ethereum.Balance `json:"balances"`
	Errors   map[string]string  `json:"errors,omitempty"`
}
