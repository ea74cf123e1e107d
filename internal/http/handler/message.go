package handler

import (
	"errors"
	"net/http"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

const unexpectedErr = "unexpected error occurred"

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// statusFor maps service errors to an HTTP status and the detail safe to
// show to the caller.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrIncorrectPassword):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, repository.ErrPlanNotFound), errors.Is(err, repository.ErrWalletNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrDuplicatePlan),
		errors.Is(err, core.ErrPendingOrder),
		errors.Is(err, core.ErrPlanLimitReached),
		errors.Is(err, core.ErrPlanBusy),
		errors.Is(err, core.ErrPlanInactive):
		return http.StatusConflict, err.Error()
	case failure.KindOf(err) == failure.KindValidation:
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, exchange.ErrUnavailable), failure.IsTransient(err):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, unexpectedErr
	}
}
