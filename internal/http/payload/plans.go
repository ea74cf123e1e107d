package payload

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var ErrInvalidPlanID = errors.New("plan id must be a positive integer")

type CreatePlanRequest struct {
	Network       string          `json:"network"`
	Amount        decimal.Decimal `json:"amount"`
	IntervalHours int             `json:"interval_hours"`
	Destination   string          `json:"destination"`
}

func (c CreatePlanRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Network, validation.Required),
		validation.Field(&c.Amount, validation.By(positive)),
		validation.Field(&c.IntervalHours, validation.Required),
		validation.Field(&c.Destination, validation.Required, validation.Length(26, 90)),
	)
}

func (c CreatePlanRequest) ToNewPlan() core.NewPlan {
	return core.NewPlan{
		Network:       strings.ToUpper(strings.TrimSpace(c.Network)),
		Amount:        c.Amount,
		IntervalHours: c.IntervalHours,
		Destination:   strings.TrimSpace(c.Destination),
	}
}

func positive(value any) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if !amount.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

// PlanID parses a plan id taken from the request path.
func PlanID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlanID, raw)
	}
	return uint(id), nil
}
