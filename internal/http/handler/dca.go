package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/handler/middleware"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Authenticate = "POST /dca/authenticate"
	ListPlans    = "GET /dca/plans"
	CreatePlan   = "POST /dca/plans"
	PausePlan    = "POST /dca/plans/{id}/pause"
	ResumePlan   = "POST /dca/plans/{id}/resume"
	ExecutePlan  = "POST /dca/plans/{id}/execute"
	DeletePlan   = "DELETE /dca/plans/{id}"
	History      = "GET /dca/history"
	Limits       = "GET /dca/limits/{network}"
	WalletStatus = "GET /dca/wallet"
	DeleteWallet = "DELETE /dca/wallet"
)

type DCAHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             Authenticator
	plans            PlanService
	executor         Executor
	wallets          WalletService
}

func NewDCAHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	auth Authenticator,
	plans PlanService,
	executor Executor,
	wallets WalletService,
) *DCAHandler {
	return &DCAHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             auth,
		plans:            plans,
		executor:         executor,
		wallets:          wallets,
	}
}

func (h *DCAHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not authenticate", err, Authenticate, requestId)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Authenticate, requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

func (h *DCAHandler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	owner, ok := h.owner(w, r, requestId)
	if !ok {
		return
	}

	plans, err := h.plans.List(r.Context(), owner)
	if err != nil {
		h.fail(w, "Could not list plans", err, ListPlans, requestId)
		return
	}

	h.respond(w, Response{Data: toPlanViews(plans)}, http.StatusOK, requestId)
}

func (h *DCAHandler) HandleCreatePlan(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	owner, ok := h.owner(w, r, requestId)
	if !ok {
		return
	}

	var req payload.CreatePlanRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, "Could not create plan", err, CreatePlan, requestId)
		return
	}

	plan, err := h.plans.Create(r.Context(), owner, req.ToNewPlan())
	if err != nil {
		h.fail(w, "Could not create plan", err, CreatePlan, requestId)
		return
	}

	h.logs.Infow("plan created",
		"plan_id", plan.ID,
		"handler", CreatePlan,
		"request_id", requestId)
	h.respond(w, Response{Message: "Plan created", Data: toPlanView(plan)}, http.StatusCreated, requestId)
}

func (h *DCAHandler) HandlePausePlan(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, PausePlan, "Plan paused", h.plans.Pause)
}

func (h *DCAHandler) HandleResumePlan(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, ResumePlan, "Plan resumed", h.plans.Resume)
}

func (h *DCAHandler) HandleExecutePlan(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	owner, id, ok := h.ownedPlan(w, r, ExecutePlan, requestId)
	if !ok {
		return
	}

	exec, err := h.executor.Execute(r.Context(), owner, id)
	if err != nil {
		h.fail(w, "Could not execute plan", err, ExecutePlan, requestId)
		return
	}

	h.respond(w, Response{Message: "Plan executed", Data: exec}, http.StatusOK, requestId)
}

func (h *DCAHandler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	owner, id, ok := h.ownedPlan(w, r, DeletePlan, requestId)
	if !ok {
		return
	}

	plan, err := h.plans.Delete(r.Context(), owner, id)
	if err != nil {
		h.fail(w, "Could not delete plan", err, DeletePlan, requestId)
		return
	}

	msg := "Plan deleted"
	if _, open := plan.Order(); open {
		msg = "Plan deleted, its open order stays payable until it expires"
	}
	h.respond(w, Response{Message: msg, Data: toPlanView(plan)}, http.StatusOK, requestId)
}

func (h *DCAHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	owner, ok := h.owner(w, r, requestId)
	if !ok {
		return
	}

	attempts, err := h.plans.History(r.Context(), owner)
	if err != nil {
		h.fail(w, "Could not load history", err, History, requestId)
		return
	}

	h.respond(w, Response{Data: toAttemptViews(attempts)}, http.StatusOK, requestId)
}

func (h *DCAHandler) HandleLimits(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	network := r.PathValue("network")

	limits, err := h.plans.Limits(r.Context(), network)
	if err != nil {
		h.fail(w, "Could not load limits", err, Limits, requestId)
		return
	}

	h.respond(w, Response{Data: limitsView{
		Network: network,
		Min:     limits.Min.StringFixed(2),
		Max:     limits.Max.StringFixed(2),
	}}, http.StatusOK, requestId)
}

func (h *DCAHandler) HandleWalletStatus(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	owner, ok := h.owner(w, r, requestId)
	if !ok {
		return
	}

	status, err := h.wallets.Status(r.Context(), owner)
	if err != nil {
		h.fail(w, "Could not load wallet", err, WalletStatus, requestId)
		return
	}

	h.respond(w, Response{Data: status}, http.StatusOK, requestId)
}

func (h *DCAHandler) HandleDeleteWallet(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	owner, ok := h.owner(w, r, requestId)
	if !ok {
		return
	}

	if err := h.wallets.Delete(r.Context(), owner); err != nil {
		h.fail(w, "Could not delete wallet", err, DeleteWallet, requestId)
		return
	}

	h.respond(w, Response{Message: "Wallet deleted"}, http.StatusOK, requestId)
}

func (h *DCAHandler) toggle(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	msg string,
	apply func(ctx context.Context, owner string, id uint) error,
) {
	requestId := middleware.RequestID(r.Context())
	owner, id, ok := h.ownedPlan(w, r, route, requestId)
	if !ok {
		return
	}

	if err := apply(r.Context(), owner, id); err != nil {
		h.fail(w, "Could not update plan", err, route, requestId)
		return
	}

	h.respond(w, Response{Message: msg}, http.StatusOK, requestId)
}

func (h *DCAHandler) owner(w http.ResponseWriter, r *http.Request, requestId string) (string, bool) {
	owner, ok := middleware.Owner(r.Context())
	if !ok {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "missing owner",
		}, http.StatusUnauthorized, requestId)
	}
	return owner, ok
}

func (h *DCAHandler) ownedPlan(w http.ResponseWriter, r *http.Request, route, requestId string) (string, uint, bool) {
	owner, ok := h.owner(w, r, requestId)
	if !ok {
		return "", 0, false
	}

	id, err := payload.PlanID(r.PathValue("id"))
	if err != nil {
		h.badRequest(w, "Invalid plan", err, route, requestId)
		return "", 0, false
	}
	return owner, id, true
}

func (h *DCAHandler) badRequest(w http.ResponseWriter, msg string, err error, route, requestId string) {
	h.respond(w, Response{
		Message: msg,
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest, requestId)
	h.logs.Warnw("failed to decode and validate request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *DCAHandler) fail(w http.ResponseWriter, msg string, err error, route, requestId string) {
	code, detail := statusFor(err)
	h.respond(w, Response{Message: msg, Error: detail}, code, requestId)

	log := h.logs.Warnw
	if code >= http.StatusInternalServerError {
		log = h.logs.Errorw
	}
	log("request failed",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

func (h *DCAHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
