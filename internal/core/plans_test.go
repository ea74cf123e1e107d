package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/core/fake"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PlanManager", func() {
	var (
		ctx          context.Context
		now          time.Time
		plans        *repository.PlanRepository
		ledger       *repository.LedgerRepository
		fakeExchange *fake.Exchange
		manager      *core.PlanManager
		req          core.NewPlan
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		database := newTestDB()
		plans = repository.NewPlanRepository(database)
		ledger = repository.NewLedgerRepository(database)
		fakeExchange = new(fake.Exchange)

		manager = core.NewPlanManager(
			zap.NewNop().Sugar(),
			plans,
			ledger,
			fakeExchange,
			networks.NewRegistry(false, networks.Overrides{}),
			core.PlanLimits{
				MinAmount:     decimal.NewFromInt(10),
				MaxAmount:     decimal.NewFromInt(500),
				MaxPerNetwork: 3,
			},
			false,
			core.WithPlanClock(func() time.Time { return now }),
		)

		req = core.NewPlan{
			Network:       networks.Arbitrum,
			Amount:        decimal.NewFromInt(50),
			IntervalHours: 24,
			Destination:   testDestination,
		}
	})

	Describe("Create", func() {
		It("stores a live plan due one interval from now", func() {
			plan, err := manager.Create(ctx, testOwner, req)

			Expect(err).NotTo(HaveOccurred())
			Expect(plan.ID).NotTo(BeZero())
			Expect(plan.Active).To(BeTrue())
			Expect(plan.Lifecycle).To(Equal(repository.LifecycleLive))
			Expect(plan.NextDueAt).To(BeTemporally("==", now.Add(24*time.Hour)))

			list, err := manager.List(ctx, testOwner)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
		})

		It("rounds the amount to cents", func() {
			req.Amount = decimal.RequireFromString("50.555")

			plan, err := manager.Create(ctx, testOwner, req)

			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Amount.String()).To(Equal("50.56"))
		})

		DescribeTable("rejects invalid requests",
			func(mutate func(*core.NewPlan), expected error) {
				mutate(&req)

				_, err := manager.Create(ctx, testOwner, req)

				Expect(err).To(MatchError(expected))
				Expect(failure.KindOf(err)).To(Equal(failure.KindValidation))
			},
			Entry("unsupported network", func(r *core.NewPlan) { r.Network = "USDT-SOL" }, networks.ErrUnsupportedNetwork),
			Entry("interval", func(r *core.NewPlan) { r.IntervalHours = 6 }, core.ErrInvalidInterval),
			Entry("amount below minimum", func(r *core.NewPlan) { r.Amount = decimal.NewFromInt(5) }, core.ErrInvalidAmount),
			Entry("amount above maximum", func(r *core.NewPlan) { r.Amount = decimal.NewFromInt(501) }, core.ErrInvalidAmount),
			Entry("malformed destination", func(r *core.NewPlan) { r.Destination = "not-an-address" }, core.ErrInvalidDestination),
			Entry("testnet destination", func(r *core.NewPlan) { r.Destination = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx" }, core.ErrInvalidDestination),
		)

		It("rejects a duplicate of a live plan", func() {
			_, err := manager.Create(ctx, testOwner, req)
			Expect(err).NotTo(HaveOccurred())

			req.Destination = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
			_, err = manager.Create(ctx, testOwner, req)

			Expect(err).To(MatchError(core.ErrDuplicatePlan))
		})

		It("allows the same plan for another owner", func() {
			_, err := manager.Create(ctx, testOwner, req)
			Expect(err).NotTo(HaveOccurred())

			_, err = manager.Create(ctx, "another-owner", req)
			Expect(err).NotTo(HaveOccurred())
		})

		It("caps live plans per network", func() {
			for _, amount := range []int64{20, 30, 40} {
				req.Amount = decimal.NewFromInt(amount)
				_, err := manager.Create(ctx, testOwner, req)
				Expect(err).NotTo(HaveOccurred())
			}

			req.Amount = decimal.NewFromInt(50)
			_, err := manager.Create(ctx, testOwner, req)
			Expect(err).To(MatchError(core.ErrPlanLimitReached))

			req.Network = networks.Polygon
			_, err = manager.Create(ctx, testOwner, req)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Delete", func() {
		var plan repository.Plan

		BeforeEach(func() {
			var err error
			plan, err = manager.Create(ctx, testOwner, req)
			Expect(err).NotTo(HaveOccurred())
		})

		It("retires a plan without an order", func() {
			deleted, err := manager.Delete(ctx, testOwner, plan.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.Lifecycle).To(Equal(repository.LifecycleDeleted))

			list, err := manager.List(ctx, testOwner)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())

			_, err = manager.Create(ctx, testOwner, req)
			Expect(err).NotTo(HaveOccurred())
		})

		When("the plan holds an open order", func() {
			BeforeEach(func() {
				Expect(plans.SetLiveOrder(ctx, plan.ID, repository.LiveOrder{
					ID:          "ORD1",
					Address:     testDeposit,
					Amount:      decimal.NewFromInt(50),
					Destination: testDestination,
					ExpiresAt:   now.Add(time.Hour),
				})).To(Succeed())
			})

			It("keeps the order reference on the deleted plan", func() {
				deleted, err := manager.Delete(ctx, testOwner, plan.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(deleted.Lifecycle).To(Equal(repository.LifecycleDeletedPendingOrder))
				Expect(deleted.Active).To(BeFalse())

				stored, err := plans.GetPlan(ctx, plan.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(*stored.OrderID).To(Equal("ORD1"))
			})

			It("rejects an identical plan until the order expires", func() {
				_, err := manager.Delete(ctx, testOwner, plan.ID)
				Expect(err).NotTo(HaveOccurred())

				_, err = manager.Create(ctx, testOwner, req)
				Expect(err).To(MatchError(core.ErrPendingOrder))

				now = now.Add(2 * time.Hour)
				created, err := manager.Create(ctx, testOwner, req)
				Expect(err).NotTo(HaveOccurred())
				Expect(created.OrderID).To(BeNil())
			})

			It("creates a plan with another destination independently", func() {
				_, err := manager.Delete(ctx, testOwner, plan.ID)
				Expect(err).NotTo(HaveOccurred())

				req.Destination = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
				created, err := manager.Create(ctx, testOwner, req)

				Expect(err).NotTo(HaveOccurred())
				Expect(created.OrderID).To(BeNil())
				Expect(created.Destination).To(Equal("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"))
			})
		})

		It("does not delete another owner's plan", func() {
			_, err := manager.Delete(ctx, "another-owner", plan.ID)

			Expect(err).To(MatchError(repository.ErrPlanNotFound))
		})
	})

	Describe("Pause and Resume", func() {
		It("toggles the active flag", func() {
			plan, err := manager.Create(ctx, testOwner, req)
			Expect(err).NotTo(HaveOccurred())

			Expect(manager.Pause(ctx, testOwner, plan.ID)).To(Succeed())
			stored, err := plans.GetPlan(ctx, plan.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Active).To(BeFalse())

			Expect(manager.Resume(ctx, testOwner, plan.ID)).To(Succeed())
			stored, err = plans.GetPlan(ctx, plan.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Active).To(BeTrue())
		})

		It("fails for unknown plans", func() {
			Expect(manager.Pause(ctx, testOwner, 42)).To(MatchError(repository.ErrPlanNotFound))
		})
	})

	Describe("History", func() {
		It("returns the owner's attempts newest first", func() {
			plan, err := manager.Create(ctx, testOwner, req)
			Expect(err).NotTo(HaveOccurred())

			for _, id := range []string{"ORD1", "ORD2"} {
				attempt := &repository.OrderAttempt{
					PlanID:         plan.ID,
					Owner:          testOwner,
					OrderID:        id,
					Network:        plan.Network,
					Amount:         plan.Amount,
					DepositAddress: testDeposit,
				}
				Expect(ledger.BeginAttempt(ctx, attempt, nil)).To(Succeed())
				Expect(ledger.MarkFailed(ctx, attempt.ID, "permanent", "execution reverted", now)).To(Succeed())
			}

			history, err := manager.History(ctx, testOwner)

			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(2))
			Expect(history[0].OrderID).To(Equal("ORD2"))
		})
	})

	Describe("Limits", func() {
		It("caps the exchange maximum", func() {
			fakeExchange.GetLimitsReturns(exchange.Limits{Min: decimal.NewFromInt(12), Max: decimal.NewFromInt(2000)}, nil)

			limits, err := manager.Limits(ctx, networks.BSC)

			Expect(err).NotTo(HaveOccurred())
			Expect(limits.Min.Equal(decimal.NewFromInt(12))).To(BeTrue())
			Expect(limits.Max.Equal(decimal.NewFromInt(500))).To(BeTrue())
		})

		It("passes exchange errors through", func() {
			fakeErr := errors.New("fake error")
			fakeExchange.GetLimitsReturns(exchange.Limits{}, fakeErr)

			_, err := manager.Limits(ctx, networks.BSC)

			Expect(err).To(MatchError(fakeErr))
		})

		It("rejects unknown networks", func() {
			_, err := manager.Limits(ctx, "USDT-SOL")

			Expect(err).To(MatchError(networks.ErrUnsupportedNetwork))
			Expect(fakeExchange.GetLimitsCallCount()).To(BeZero())
		})
	})
})
