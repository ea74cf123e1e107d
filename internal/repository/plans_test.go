package repository_test

import (
	"context"
	"errors"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/db"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PlanRepository", func() {
	var (
		repo *repository.PlanRepository
		ctx  context.Context
		now  time.Time
	)

	newPlan := func(amount int64, interval int) *repository.Plan {
		return &repository.Plan{
			Owner:         "owner-1",
			Network:       "USDT-ARB",
			Amount:        decimal.NewFromInt(amount),
			IntervalHours: interval,
			Destination:   "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
			Active:        true,
			Lifecycle:     repository.LifecycleLive,
			NextDueAt:     now.Add(-time.Minute),
		}
	}

	allow := func([]repository.Plan) error { return nil }

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		repo = repository.NewPlanRepository(newTestDB())
	})

	Describe("CreatePlan", func() {
		It("passes the owner's network plans to the check", func() {
			Expect(repo.CreatePlan(ctx, newPlan(50, 24), allow)).To(Succeed())
			Expect(repo.CreatePlan(ctx, newPlan(60, 24), allow)).To(Succeed())

			var seen []repository.Plan
			err := repo.CreatePlan(ctx, newPlan(70, 24), func(existing []repository.Plan) error {
				seen = existing
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(HaveLen(2))
			Expect(seen[0].Amount.String()).To(Equal("50"))
		})

		It("does not insert when the check vetoes", func() {
			vetoErr := errors.New("veto")
			err := repo.CreatePlan(ctx, newPlan(50, 24), func([]repository.Plan) error { return vetoErr })
			Expect(err).To(MatchError(vetoErr))

			plans, err := repo.ListPlans(ctx, "owner-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(plans).To(BeEmpty())
		})

		It("enforces live identity uniqueness in the store", func() {
			Expect(repo.CreatePlan(ctx, newPlan(50, 24), allow)).To(Succeed())
			err := repo.CreatePlan(ctx, newPlan(50, 24), allow)
			Expect(errors.Is(err, db.ErrDuplicate)).To(BeTrue())
		})
	})

	Describe("DuePlans", func() {
		It("selects active live plans that are due", func() {
			due := newPlan(50, 24)
			Expect(repo.CreatePlan(ctx, due, allow)).To(Succeed())

			later := newPlan(60, 24)
			later.NextDueAt = now.Add(time.Hour)
			Expect(repo.CreatePlan(ctx, later, allow)).To(Succeed())

			paused := newPlan(70, 24)
			Expect(repo.CreatePlan(ctx, paused, allow)).To(Succeed())
			Expect(repo.SetActive(ctx, "owner-1", paused.ID, false)).To(Succeed())

			plans, err := repo.DuePlans(ctx, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(plans).To(HaveLen(1))
			Expect(plans[0].ID).To(Equal(due.ID))
		})
	})

	Describe("SetActive", func() {
		It("rejects plans of other owners", func() {
			plan := newPlan(50, 24)
			Expect(repo.CreatePlan(ctx, plan, allow)).To(Succeed())
			Expect(repo.SetActive(ctx, "owner-2", plan.ID, false)).To(MatchError(repository.ErrPlanNotFound))
		})
	})

	Describe("live order reference", func() {
		var (
			plan  *repository.Plan
			order repository.LiveOrder
		)

		BeforeEach(func() {
			plan = newPlan(50, 24)
			Expect(repo.CreatePlan(ctx, plan, allow)).To(Succeed())
			order = repository.LiveOrder{
				ID:          "ORD1",
				Token:       "tok",
				Address:     "0x1111111111111111111111111111111111111111",
				Amount:      decimal.RequireFromString("50.12"),
				Currency:    "USDTARBITRUM",
				Destination: plan.Destination,
				ExpiresAt:   now.Add(30 * time.Minute),
			}
		})

		It("stores the order only when none is referenced", func() {
			Expect(repo.SetLiveOrder(ctx, plan.ID, order)).To(Succeed())
			Expect(repo.SetLiveOrder(ctx, plan.ID, order)).To(MatchError(repository.ErrOrderConflict))

			stored, err := repo.GetPlan(ctx, plan.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.HasLiveOrder(now)).To(BeTrue())
			Expect(stored.HasLiveOrder(now.Add(time.Hour))).To(BeFalse())
			got, ok := stored.Order()
			Expect(ok).To(BeTrue())
			Expect(got.ID).To(Equal("ORD1"))
			Expect(got.Amount.Equal(order.Amount)).To(BeTrue())
		})

		It("clears only the referenced order", func() {
			Expect(repo.SetLiveOrder(ctx, plan.ID, order)).To(Succeed())
			Expect(repo.ClearLiveOrder(ctx, plan.ID, "OTHER")).To(MatchError(repository.ErrOrderConflict))
			Expect(repo.ClearLiveOrder(ctx, plan.ID, "ORD1")).To(Succeed())

			stored, err := repo.GetPlan(ctx, plan.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.HasOrder()).To(BeFalse())
		})

		Describe("DeletePlan", func() {
			It("keeps a live order and marks the plan pending", func() {
				Expect(repo.SetLiveOrder(ctx, plan.ID, order)).To(Succeed())

				deleted, err := repo.DeletePlan(ctx, "owner-1", plan.ID, now)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted.Lifecycle).To(Equal(repository.LifecycleDeletedPendingOrder))
				Expect(deleted.Active).To(BeFalse())
				Expect(*deleted.OrderID).To(Equal("ORD1"))

				plans, err := repo.DuePlans(ctx, now)
				Expect(err).NotTo(HaveOccurred())
				Expect(plans).To(BeEmpty())
			})

			It("fully deletes a plan without a live order", func() {
				deleted, err := repo.DeletePlan(ctx, "owner-1", plan.ID, now)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted.Lifecycle).To(Equal(repository.LifecycleDeleted))

				_, err = repo.GetOwnedPlan(ctx, "owner-1", plan.ID)
				Expect(err).To(MatchError(repository.ErrPlanNotFound))
			})

			It("retires pending plans once the order expires", func() {
				Expect(repo.SetLiveOrder(ctx, plan.ID, order)).To(Succeed())
				_, err := repo.DeletePlan(ctx, "owner-1", plan.ID, now)
				Expect(err).NotTo(HaveOccurred())

				n, err := repo.RetireExpiredPending(ctx, now)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(BeZero())

				n, err = repo.RetireExpiredPending(ctx, now.Add(time.Hour))
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(int64(1)))

				stored, err := repo.GetPlan(ctx, plan.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(stored.Lifecycle).To(Equal(repository.LifecycleDeleted))
				Expect(stored.HasOrder()).To(BeFalse())
			})

			It("lets an identical plan be stored once the original is no longer live", func() {
				Expect(repo.SetLiveOrder(ctx, plan.ID, order)).To(Succeed())
				_, err := repo.DeletePlan(ctx, "owner-1", plan.ID, now)
				Expect(err).NotTo(HaveOccurred())

				Expect(repo.CreatePlan(ctx, newPlan(50, 24), allow)).To(Succeed())
			})
		})
	})

	Describe("Reschedule", func() {
		It("moves the due time", func() {
			plan := newPlan(50, 24)
			Expect(repo.CreatePlan(ctx, plan, allow)).To(Succeed())
			Expect(repo.Reschedule(ctx, plan.ID, now.Add(24*time.Hour))).To(Succeed())

			stored, err := repo.GetPlan(ctx, plan.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.NextDueAt).To(BeTemporally("==", now.Add(24*time.Hour)))
			Expect(repo.Reschedule(ctx, 999, now)).To(MatchError(repository.ErrPlanNotFound))
		})
	})
})
