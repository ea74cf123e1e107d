package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/handler"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/handler/fake"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/handler/middleware"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/payload"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DCAHandler", func() {
	const owner = "5f7c1c1e-7d3a-4f55-9a39-2f1f0b1f6a10"

	var (
		dh            *handler.DCAHandler
		fakeValidator *fake.RequestValidator
		fakeAuth      *fake.Authenticator
		fakePlans     *fake.PlanService
		fakeExecutor  *fake.Executor
		fakeWallets   *fake.WalletService
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		response      map[string]any
	)

	asOwner := func(r *http.Request) *http.Request {
		return r.WithContext(middleware.WithOwner(r.Context(), owner))
	}

	decode := func() {
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload
		fakeAuth = new(fake.Authenticator)
		fakePlans = new(fake.PlanService)
		fakeExecutor = new(fake.Executor)
		fakeWallets = new(fake.WalletService)
		response = nil

		w = httptest.NewRecorder()
		dh = handler.NewDCAHandler(zap.NewNop().Sugar(), fakeValidator, fakeAuth, fakePlans, fakeExecutor, fakeWallets)
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/dca/authenticate", strings.NewReader(`{"username":"alice","password":"pass"}`))
			fakeAuth.AuthenticateReturns("test-token", nil)
		})

		JustBeforeEach(func() {
			dh.HandleAuthenticate(w, req)
			decode()
		})

		It("returns a token", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(response["token"]).To(Equal("test-token"))

			_, msg := fakeAuth.AuthenticateArgsForCall(0)
			Expect(msg).To(Equal(core.AuthMessage{Username: "alice", Password: "pass"}))
		})

		When("the payload is incomplete", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/dca/authenticate", strings.NewReader(`{"username":"alice"}`))
			})

			It("returns bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeAuth.AuthenticateCallCount()).To(BeZero())
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeAuth.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("returns unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(response["error"]).To(Equal(core.ErrIncorrectPassword.Error()))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeAuth.AuthenticateReturns("", fakeErr)
			})

			It("hides the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response["error"]).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleCreatePlan", func() {
		var body string

		BeforeEach(func() {
			body = `{"network":"usdt-arb","amount":"50","interval_hours":24,"destination":"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"}`
			fakePlans.CreateReturns(repository.Plan{
				ID:            7,
				Network:       "USDT-ARB",
				Amount:        decimal.NewFromInt(50),
				IntervalHours: 24,
				Destination:   "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
				Active:        true,
				Lifecycle:     repository.LifecycleLive,
			}, nil)
		})

		JustBeforeEach(func() {
			req = asOwner(httptest.NewRequest("POST", "/dca/plans", strings.NewReader(body)))
			dh.HandleCreatePlan(w, req)
			decode()
		})

		It("creates the plan for the caller", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			_, gotOwner, plan := fakePlans.CreateArgsForCall(0)
			Expect(gotOwner).To(Equal(owner))
			Expect(plan.Network).To(Equal("USDT-ARB"))
			Expect(plan.Amount.Equal(decimal.NewFromInt(50))).To(BeTrue())
			Expect(plan.IntervalHours).To(Equal(24))

			data := response["data"].(map[string]any)
			Expect(data["id"]).To(BeNumerically("==", 7))
			Expect(data["amount"]).To(Equal("50.00"))
			Expect(data["every"]).To(Equal("day"))
		})

		When("the amount is not positive", func() {
			BeforeEach(func() {
				body = `{"network":"USDT-ARB","amount":"-5","interval_hours":24,"destination":"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"}`
			})

			It("returns bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakePlans.CreateCallCount()).To(BeZero())
			})
		})

		When("unknown fields are sent", func() {
			BeforeEach(func() {
				body = `{"network":"USDT-ARB","amount":"50","interval_hours":24,"destination":"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq","mode":"dry"}`
			})

			It("returns bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		DescribeTable("maps service errors",
			func(err error, code int) {
				fakePlans.CreateReturns(repository.Plan{}, err)
				w = httptest.NewRecorder()

				dh.HandleCreatePlan(w, asOwner(httptest.NewRequest("POST", "/dca/plans", strings.NewReader(body))))

				Expect(w.Code).To(Equal(code))
			},
			Entry("validation", failure.Validation(core.ErrInvalidInterval), http.StatusBadRequest),
			Entry("duplicate", core.ErrDuplicatePlan, http.StatusConflict),
			Entry("pending order", core.ErrPendingOrder, http.StatusConflict),
			Entry("limit", core.ErrPlanLimitReached, http.StatusConflict),
			Entry("unexpected", errors.New("disk full"), http.StatusInternalServerError),
		)
	})

	Describe("HandleListPlans", func() {
		It("lists plans with their open order", func() {
			orderID := "ORD1"
			expires := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
			fakePlans.ListReturns([]repository.Plan{{
				ID:             3,
				Network:        "USDT-BSC",
				Amount:         decimal.NewFromInt(20),
				IntervalHours:  168,
				Lifecycle:      repository.LifecycleLive,
				OrderID:        &orderID,
				OrderExpiresAt: &expires,
			}}, nil)

			dh.HandleListPlans(w, asOwner(httptest.NewRequest("GET", "/dca/plans", nil)))
			decode()

			Expect(w.Code).To(Equal(http.StatusOK))
			plans := response["data"].([]any)
			Expect(plans).To(HaveLen(1))
			order := plans[0].(map[string]any)["order"].(map[string]any)
			Expect(order["id"]).To(Equal("ORD1"))
			Expect(order["url"]).To(Equal(exchange.OrderURL("ORD1")))
		})

		It("requires an owner", func() {
			dh.HandleListPlans(w, httptest.NewRequest("GET", "/dca/plans", nil))

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakePlans.ListCallCount()).To(BeZero())
		})
	})

	Describe("plan actions", func() {
		request := func(method, target, id string) *http.Request {
			r := asOwner(httptest.NewRequest(method, target, nil))
			r.SetPathValue("id", id)
			return r
		}

		It("pauses the plan named in the path", func() {
			dh.HandlePausePlan(w, request("POST", "/dca/plans/7/pause", "7"))

			Expect(w.Code).To(Equal(http.StatusOK))
			_, gotOwner, id := fakePlans.PauseArgsForCall(0)
			Expect(gotOwner).To(Equal(owner))
			Expect(id).To(Equal(uint(7)))
		})

		It("resumes the plan", func() {
			dh.HandleResumePlan(w, request("POST", "/dca/plans/7/resume", "7"))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakePlans.ResumeCallCount()).To(Equal(1))
		})

		It("rejects malformed ids", func() {
			dh.HandlePausePlan(w, request("POST", "/dca/plans/abc/pause", "abc"))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakePlans.PauseCallCount()).To(BeZero())
		})

		It("reports unknown plans", func() {
			fakePlans.ResumeReturns(repository.ErrPlanNotFound)

			dh.HandleResumePlan(w, request("POST", "/dca/plans/9/resume", "9"))

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("executes the plan", func() {
			fakeExecutor.ExecuteReturns(core.Execution{PlanID: 7, Outcome: core.OutcomeSent, OrderID: "ORD1"}, nil)

			dh.HandleExecutePlan(w, request("POST", "/dca/plans/7/execute", "7"))
			decode()

			Expect(w.Code).To(Equal(http.StatusOK))
			data := response["data"].(map[string]any)
			Expect(data["outcome"]).To(Equal("sent"))
			Expect(data["order_id"]).To(Equal("ORD1"))
		})

		It("reports a busy plan as a conflict", func() {
			fakeExecutor.ExecuteReturns(core.Execution{}, core.ErrPlanBusy)

			dh.HandleExecutePlan(w, request("POST", "/dca/plans/7/execute", "7"))

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("deletes the plan and mentions a still payable order", func() {
			orderID := "ORD1"
			fakePlans.DeleteReturns(repository.Plan{ID: 7, Lifecycle: repository.LifecycleDeletedPendingOrder, OrderID: &orderID}, nil)

			dh.HandleDeletePlan(w, request("DELETE", "/dca/plans/7", "7"))
			decode()

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(response["message"]).To(ContainSubstring("open order"))
		})
	})

	Describe("HandleHistory", func() {
		It("returns the attempts", func() {
			detail := "execution reverted"
			fakePlans.HistoryReturns([]repository.OrderAttempt{{
				ID:          1,
				PlanID:      7,
				OrderID:     "ORD1",
				Amount:      decimal.RequireFromString("50.12"),
				State:       repository.StateFailed,
				ErrorDetail: &detail,
			}}, nil)

			dh.HandleHistory(w, asOwner(httptest.NewRequest("GET", "/dca/history", nil)))
			decode()

			Expect(w.Code).To(Equal(http.StatusOK))
			attempt := response["data"].([]any)[0].(map[string]any)
			Expect(attempt["state"]).To(Equal("failed"))
			Expect(attempt["error"]).To(Equal(detail))
		})
	})

	Describe("HandleLimits", func() {
		It("returns the network limits", func() {
			fakePlans.LimitsReturns(exchange.Limits{Min: decimal.NewFromInt(12), Max: decimal.NewFromInt(500)}, nil)
			r := httptest.NewRequest("GET", "/dca/limits/USDT-BSC", nil)
			r.SetPathValue("network", "USDT-BSC")

			dh.HandleLimits(w, r)
			decode()

			Expect(w.Code).To(Equal(http.StatusOK))
			data := response["data"].(map[string]any)
			Expect(data["min"]).To(Equal("12.00"))
			Expect(data["max"]).To(Equal("500.00"))
		})

		It("reports an unavailable exchange", func() {
			fakePlans.LimitsReturns(exchange.Limits{}, exchange.ErrUnavailable)
			r := httptest.NewRequest("GET", "/dca/limits/USDT-BSC", nil)
			r.SetPathValue("network", "USDT-BSC")

			dh.HandleLimits(w, r)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})

	Describe("wallet", func() {
		It("returns the wallet status", func() {
			fakeWallets.StatusReturns(core.WalletStatus{Address: "0xabc"}, nil)

			dh.HandleWalletStatus(w, asOwner(httptest.NewRequest("GET", "/dca/wallet", nil)))
			decode()

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(response["data"].(map[string]any)["address"]).To(Equal("0xabc"))
		})

		It("reports a missing wallet", func() {
			fakeWallets.StatusReturns(core.WalletStatus{}, repository.ErrWalletNotFound)

			dh.HandleWalletStatus(w, asOwner(httptest.NewRequest("GET", "/dca/wallet", nil)))

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("deletes the wallet", func() {
			dh.HandleDeleteWallet(w, asOwner(httptest.NewRequest("DELETE", "/dca/wallet", nil)))

			Expect(w.Code).To(Equal(http.StatusOK))
			_, gotOwner := fakeWallets.DeleteArgsForCall(0)
			Expect(gotOwner).To(Equal(owner))
		})
	})

	It("hides unexpected service errors", func() {
		r := httptest.NewRequest("GET", "/dca/wallet", nil)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, "req-1")
		fakeWallets.StatusReturns(core.WalletStatus{}, fakeErr)

		dh.HandleWalletStatus(w, asOwner(r.WithContext(ctx)))
		decode()

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(response["error"]).To(Equal("unexpected error occurred"))
		Expect(response["message"]).To(Equal("Could not load wallet"))
	})
})
