package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/core/fake"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/ethereum"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/exchange"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/notify"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/repository"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/transfer"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Coordinator", func() {
	var (
		ctx          context.Context
		now          time.Time
		start        time.Time
		plans        *repository.PlanRepository
		ledger       *repository.LedgerRepository
		fakeExchange *fake.Exchange
		fakeSender   *fake.FundSender
		fakeChains   *fake.Chains
		fakeCreds    *fake.Credentials
		fakeNotifier *fake.Notifier
		coordinator  *core.Coordinator
		plan         *repository.Plan
	)

	order := func(id string, expiresIn time.Duration) exchange.Order {
		return exchange.Order{
			ID:              id,
			Token:           "token-" + id,
			DepositAddress:  testDeposit,
			DepositAmount:   "50.12",
			DepositCurrency: "USDTBSC",
			ExpiresIn:       expiresIn,
		}
	}

	sendSucceeds := func(_ context.Context, _ transfer.Request, rec transfer.Recorder) (transfer.Result, error) {
		Expect(rec.RecordApproval(ctx, "0xapprove")).To(Succeed())
		Expect(rec.RecordTransfer(ctx, "0xtransfer")).To(Succeed())
		return transfer.Result{ApproveTxHash: "0xapprove", TransferTxHash: "0xtransfer", Block: 123}, nil
	}

	reload := func() repository.Plan {
		p, err := plans.GetPlan(ctx, plan.ID)
		Expect(err).NotTo(HaveOccurred())
		return p
	}

	attempts := func() []repository.OrderAttempt {
		list, err := ledger.ListByOwner(ctx, testOwner, 100)
		Expect(err).NotTo(HaveOccurred())
		return list
	}

	notified := func() []notify.Kind {
		kinds := make([]notify.Kind, 0, fakeNotifier.NotifyCallCount())
		for i := 0; i < fakeNotifier.NotifyCallCount(); i++ {
			_, e := fakeNotifier.NotifyArgsForCall(i)
			kinds = append(kinds, e.Kind)
		}
		return kinds
	}

	BeforeEach(func() {
		ctx = context.Background()
		start = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		now = start

		database := newTestDB()
		plans = repository.NewPlanRepository(database)
		ledger = repository.NewLedgerRepository(database)

		fakeExchange = new(fake.Exchange)
		fakeSender = new(fake.FundSender)
		fakeChains = new(fake.Chains)
		fakeCreds = new(fake.Credentials)
		fakeNotifier = new(fake.Notifier)

		fakeExchange.GetLimitsReturns(exchange.Limits{Min: decimal.NewFromInt(10), Max: decimal.NewFromInt(500)}, nil)
		fakeExchange.CreateOrderReturns(order("ORD1", 30*time.Minute), nil)
		fakeCreds.CredentialsReturns(true)
		fakeSender.SendCalls(sendSucceeds)

		coordinator = core.NewCoordinator(
			zap.NewNop().Sugar(),
			plans,
			ledger,
			fakeExchange,
			fakeSender,
			fakeChains,
			fakeCreds,
			fakeNotifier,
			networks.NewRegistry(false, networks.Overrides{}),
			decimal.NewFromInt(500),
			core.WithClock(func() time.Time { return now }),
		)

		plan = &repository.Plan{
			Owner:         testOwner,
			Network:       networks.BSC,
			Amount:        decimal.NewFromInt(50),
			IntervalHours: 24,
			Destination:   testDestination,
			Active:        true,
			Lifecycle:     repository.LifecycleLive,
			NextDueAt:     start,
		}
		Expect(plans.CreatePlan(ctx, plan, func([]repository.Plan) error { return nil })).To(Succeed())
	})

	Describe("Tick", func() {
		It("sends a due plan and advances its schedule", func() {
			executions := coordinator.Tick(ctx)

			Expect(executions).To(HaveLen(1))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeSent))
			Expect(executions[0].OrderID).To(Equal("ORD1"))
			Expect(executions[0].OrderURL).To(Equal("https://fixedfloat.com/order/ORD1"))

			Expect(fakeExchange.CreateOrderCallCount()).To(Equal(1))
			_, req := fakeExchange.CreateOrderArgsForCall(0)
			Expect(req.Network).To(Equal(networks.BSC))
			Expect(req.Destination).To(Equal(testDestination))
			Expect(req.Amount.Equal(decimal.NewFromInt(50))).To(BeTrue())

			Expect(fakeSender.SendCallCount()).To(Equal(1))
			_, sendReq, _ := fakeSender.SendArgsForCall(0)
			Expect(sendReq.Owner).To(Equal(testOwner))
			Expect(sendReq.DepositAddress).To(Equal(testDeposit))
			Expect(sendReq.Amount.Equal(decimal.RequireFromString("50.12"))).To(BeTrue())

			list := attempts()
			Expect(list).To(HaveLen(1))
			Expect(list[0].State).To(Equal(repository.StateSent))
			Expect(*list[0].ApproveTxHash).To(Equal("0xapprove"))
			Expect(*list[0].TransferTxHash).To(Equal("0xtransfer"))
			Expect(*list[0].TransferBlock).To(Equal(uint64(123)))

			p := reload()
			Expect(p.NextDueAt).To(BeTemporally("==", start.Add(24*time.Hour)))
			Expect(p.OrderID).NotTo(BeNil())
			Expect(*p.OrderID).To(Equal("ORD1"))

			Expect(notified()).To(Equal([]notify.Kind{notify.KindSent}))
			_, e := fakeNotifier.NotifyArgsForCall(0)
			Expect(e.TransferTx.URL).To(Equal("https://bscscan.com/tx/0xtransfer"))
			Expect(e.NextDueAt).To(BeTemporally("==", start.Add(24*time.Hour)))
		})

		It("does nothing for plans that are not due", func() {
			Expect(plans.Reschedule(ctx, plan.ID, start.Add(time.Hour))).To(Succeed())

			Expect(coordinator.Tick(ctx)).To(BeEmpty())
			Expect(fakeExchange.GetLimitsCallCount()).To(BeZero())
		})

		It("creates a fresh order on the next cycle after a sent attempt", func() {
			coordinator.Tick(ctx)

			now = start.Add(24 * time.Hour)
			fakeExchange.CreateOrderReturns(order("ORD2", 30*time.Minute), nil)
			executions := coordinator.Tick(ctx)

			Expect(executions).To(HaveLen(1))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeSent))
			Expect(executions[0].OrderID).To(Equal("ORD2"))
			Expect(fakeExchange.CreateOrderCallCount()).To(Equal(2))
			Expect(attempts()).To(HaveLen(2))
		})

		When("the transfer fails transiently", func() {
			BeforeEach(func() {
				fakeSender.SendReturns(transfer.Result{ApproveTxHash: "0xapprove"}, failure.Transient(errors.New("connection timeout")))
			})

			It("blocks the attempt and keeps the schedule", func() {
				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeBlocked))
				Expect(executions[0].Reason).To(ContainSubstring("connection timeout"))

				list := attempts()
				Expect(list).To(HaveLen(1))
				Expect(list[0].State).To(Equal(repository.StateBlocked))
				Expect(*list[0].FailureKind).To(Equal("transient"))

				Expect(reload().NextDueAt).To(BeTemporally("==", start))
				Expect(notified()).To(Equal([]notify.Kind{notify.KindBlocked}))
			})

			It("does not retry before the plan interval has elapsed", func() {
				coordinator.Tick(ctx)

				now = start.Add(23 * time.Hour)
				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeSkipped))
				Expect(fakeSender.SendCallCount()).To(Equal(1))
				Expect(fakeExchange.CreateOrderCallCount()).To(Equal(1))
				Expect(fakeNotifier.NotifyCallCount()).To(Equal(1))
			})

			It("retries once after the interval with a new order when the old one expired", func() {
				coordinator.Tick(ctx)

				now = start.Add(24*time.Hour + time.Minute)
				fakeSender.SendCalls(sendSucceeds)
				fakeExchange.CreateOrderReturns(order("ORD2", 30*time.Minute), nil)
				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeSent))
				Expect(executions[0].OrderID).To(Equal("ORD2"))
				Expect(fakeSender.SendCallCount()).To(Equal(2))

				list := attempts()
				Expect(list).To(HaveLen(2))
				Expect(list[0].State).To(Equal(repository.StateSent))
				Expect(list[1].State).To(Equal(repository.StateFailed))
				Expect(*list[1].ErrorDetail).To(ContainSubstring("superseded"))

				Expect(reload().NextDueAt).To(BeTemporally("==", now.Add(24*time.Hour)))
			})

			It("rechecks limits and creates a new order even while the old one is open", func() {
				fakeExchange.CreateOrderReturns(order("ORD1", 48*time.Hour), nil)
				coordinator.Tick(ctx)

				now = start.Add(25 * time.Hour)
				fakeSender.SendCalls(sendSucceeds)
				fakeExchange.CreateOrderReturns(order("ORD2", 30*time.Minute), nil)
				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeSent))
				Expect(executions[0].OrderID).To(Equal("ORD2"))
				Expect(fakeExchange.GetLimitsCallCount()).To(Equal(2))
				Expect(fakeExchange.CreateOrderCallCount()).To(Equal(2))
				Expect(fakeChains.ReceiptCallCount()).To(BeZero())

				list := attempts()
				Expect(list).To(HaveLen(2))
				Expect(list[0].OrderID).To(Equal("ORD2"))
				Expect(list[1].State).To(Equal(repository.StateFailed))
			})

			It("leaves the retry for a manual deposit when the wallet got locked", func() {
				fakeExchange.CreateOrderReturns(order("ORD1", 48*time.Hour), nil)
				coordinator.Tick(ctx)

				now = start.Add(25 * time.Hour)
				fakeCreds.CredentialsReturns(false)
				fakeExchange.CreateOrderReturns(order("ORD2", 30*time.Minute), nil)
				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeManual))
				Expect(executions[0].OrderID).To(Equal("ORD2"))
				Expect(fakeSender.SendCallCount()).To(Equal(1))
				Expect(fakeExchange.GetLimitsCallCount()).To(Equal(2))

				list := attempts()
				Expect(list).To(HaveLen(1))
				Expect(list[0].State).To(Equal(repository.StateFailed))
				Expect(*list[0].ErrorDetail).To(ContainSubstring("manual deposit"))

				open, err := ledger.OpenAttempt(ctx, plan.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(open).To(BeNil())

				p := reload()
				Expect(*p.OrderID).To(Equal("ORD2"))
				Expect(p.NextDueAt).To(BeTemporally("==", now.Add(24*time.Hour)))
				Expect(notified()).To(Equal([]notify.Kind{notify.KindBlocked, notify.KindManualSend}))
			})
		})

		When("the transfer was broadcast before the attempt blocked", func() {
			BeforeEach(func() {
				fakeSender.SendCalls(func(_ context.Context, _ transfer.Request, rec transfer.Recorder) (transfer.Result, error) {
					Expect(rec.RecordApproval(ctx, "0xapprove")).To(Succeed())
					Expect(rec.RecordTransfer(ctx, "0xtransfer1")).To(Succeed())
					return transfer.Result{ApproveTxHash: "0xapprove", TransferTxHash: "0xtransfer1"}, failure.Transient(errors.New("receipt timeout"))
				})
				fakeExchange.CreateOrderReturns(order("ORD1", 48*time.Hour), nil)

				executions := coordinator.Tick(ctx)
				Expect(executions[0].Outcome).To(Equal(core.OutcomeBlocked))
				now = start.Add(25 * time.Hour)
			})

			It("confirms the landed transfer instead of sending again", func() {
				fakeChains.ReceiptReturns(ethereum.Receipt{TxHash: "0xtransfer1", Status: 1, BlockNumber: 88}, true, nil)

				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeSent))
				Expect(executions[0].OrderID).To(Equal("ORD1"))
				Expect(fakeSender.SendCallCount()).To(Equal(1))
				Expect(fakeExchange.CreateOrderCallCount()).To(Equal(1))

				Expect(fakeChains.ReceiptCallCount()).To(Equal(1))
				_, network, hash := fakeChains.ReceiptArgsForCall(0)
				Expect(network).To(Equal(networks.BSC))
				Expect(hash).To(Equal("0xtransfer1"))

				list := attempts()
				Expect(list).To(HaveLen(1))
				Expect(executions[0].AttemptID).To(Equal(list[0].ID))
				Expect(list[0].State).To(Equal(repository.StateSent))
				Expect(*list[0].TransferBlock).To(Equal(uint64(88)))

				Expect(reload().NextDueAt).To(BeTemporally("==", now.Add(24*time.Hour)))
				Expect(notified()).To(Equal([]notify.Kind{notify.KindBlocked, notify.KindSent}))
				_, e := fakeNotifier.NotifyArgsForCall(1)
				Expect(e.TransferTx.URL).To(Equal("https://bscscan.com/tx/0xtransfer1"))
			})

			It("retries with a new order when the transfer reverted", func() {
				fakeChains.ReceiptReturns(ethereum.Receipt{TxHash: "0xtransfer1", Status: 0, BlockNumber: 88}, true, nil)
				fakeSender.SendCalls(sendSucceeds)
				fakeExchange.CreateOrderReturns(order("ORD2", 30*time.Minute), nil)

				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeSent))
				Expect(executions[0].OrderID).To(Equal("ORD2"))
				Expect(fakeSender.SendCallCount()).To(Equal(2))

				list := attempts()
				Expect(list).To(HaveLen(2))
				Expect(list[1].State).To(Equal(repository.StateFailed))
				Expect(*list[1].ErrorDetail).To(ContainSubstring("superseded"))
			})

			It("holds the retry back while the transfer is not found", func() {
				fakeChains.ReceiptReturns(ethereum.Receipt{}, false, nil)

				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeBlocked))
				Expect(executions[0].Reason).To(ContainSubstring("0xtransfer1 not confirmed"))
				Expect(fakeSender.SendCallCount()).To(Equal(1))
				Expect(fakeExchange.CreateOrderCallCount()).To(Equal(1))

				list := attempts()
				Expect(list).To(HaveLen(1))
				Expect(list[0].State).To(Equal(repository.StateBlocked))

				Expect(reload().NextDueAt).To(BeTemporally("==", now.Add(24*time.Hour)))
				Expect(notified()).To(Equal([]notify.Kind{notify.KindBlocked, notify.KindBlocked}))
			})

			It("holds the retry back when the receipt lookup fails", func() {
				fakeChains.ReceiptReturns(ethereum.Receipt{}, false, errors.New("rpc unavailable"))

				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeBlocked))
				Expect(executions[0].Reason).To(ContainSubstring("rpc unavailable"))
				Expect(fakeSender.SendCallCount()).To(Equal(1))
				Expect(attempts()[0].State).To(Equal(repository.StateBlocked))
			})
		})

		When("the transfer fails permanently", func() {
			BeforeEach(func() {
				fakeSender.SendReturns(transfer.Result{}, failure.Permanent(errors.New("execution reverted")))
			})

			It("fails the attempt, advances the schedule and asks for a manual send", func() {
				executions := coordinator.Tick(ctx)

				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeFailed))

				list := attempts()
				Expect(list).To(HaveLen(1))
				Expect(list[0].State).To(Equal(repository.StateFailed))
				Expect(*list[0].FailureKind).To(Equal("permanent"))
				Expect(*list[0].ErrorDetail).To(Equal("execution reverted"))

				Expect(reload().NextDueAt).To(BeTemporally("==", start.Add(24*time.Hour)))

				Expect(notified()).To(Equal([]notify.Kind{notify.KindFailed}))
				_, e := fakeNotifier.NotifyArgsForCall(0)
				Expect(e.DepositAddress).To(Equal(testDeposit))
				Expect(e.DepositAmount.Equal(decimal.RequireFromString("50.12"))).To(BeTrue())
				Expect(e.OrderURL).To(Equal("https://fixedfloat.com/order/ORD1"))
			})
		})

		It("does not create a second order while an unattempted order is open", func() {
			Expect(plans.SetLiveOrder(ctx, plan.ID, repository.LiveOrder{
				ID:          "ORD0",
				Address:     testDeposit,
				Amount:      decimal.NewFromInt(50),
				Destination: testDestination,
				ExpiresAt:   start.Add(time.Hour),
			})).To(Succeed())

			for i := 0; i < 2; i++ {
				executions := coordinator.Tick(ctx)
				Expect(executions).To(HaveLen(1))
				Expect(executions[0].Outcome).To(Equal(core.OutcomeSkipped))
			}

			Expect(fakeExchange.CreateOrderCallCount()).To(BeZero())
			Expect(fakeSender.SendCallCount()).To(BeZero())
			Expect(attempts()).To(BeEmpty())
			Expect(*reload().OrderID).To(Equal("ORD0"))
		})

		It("skips a plan whose attempt is still sending", func() {
			Expect(ledger.BeginAttempt(ctx, &repository.OrderAttempt{
				PlanID:         plan.ID,
				Owner:          testOwner,
				OrderID:        "ORD0",
				Network:        plan.Network,
				Amount:         plan.Amount,
				DepositAddress: testDeposit,
			}, nil)).To(Succeed())

			executions := coordinator.Tick(ctx)

			Expect(executions).To(HaveLen(1))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeSkipped))
			Expect(executions[0].Reason).To(Equal("attempt in flight"))
			Expect(fakeExchange.GetLimitsCallCount()).To(BeZero())
		})

		It("reschedules without an order when the amount is outside the limits", func() {
			fakeExchange.GetLimitsReturns(exchange.Limits{Min: decimal.NewFromInt(100), Max: decimal.NewFromInt(500)}, nil)

			executions := coordinator.Tick(ctx)

			Expect(executions).To(HaveLen(1))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeOutOfLimits))
			Expect(fakeExchange.CreateOrderCallCount()).To(BeZero())

			p := reload()
			Expect(p.OrderID).To(BeNil())
			Expect(p.NextDueAt).To(BeTemporally("==", start.Add(24*time.Hour)))

			Expect(notified()).To(Equal([]notify.Kind{notify.KindOutOfLimits}))
			_, e := fakeNotifier.NotifyArgsForCall(0)
			Expect(e.LimitMin.Equal(decimal.NewFromInt(100))).To(BeTrue())
		})

		It("caps the upper limit at the configured maximum", func() {
			Expect(plans.Reschedule(ctx, plan.ID, start.Add(48*time.Hour))).To(Succeed())
			large := &repository.Plan{
				Owner:         testOwner,
				Network:       networks.BSC,
				Amount:        decimal.NewFromInt(600),
				IntervalHours: 24,
				Destination:   testDestination,
				Active:        true,
				Lifecycle:     repository.LifecycleLive,
				NextDueAt:     start,
			}
			Expect(plans.CreatePlan(ctx, large, func([]repository.Plan) error { return nil })).To(Succeed())
			fakeExchange.GetLimitsReturns(exchange.Limits{Min: decimal.NewFromInt(10), Max: decimal.NewFromInt(1000)}, nil)

			executions := coordinator.Tick(ctx)

			Expect(executions).To(HaveLen(1))
			Expect(executions[0].PlanID).To(Equal(large.ID))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeOutOfLimits))
		})

		It("reports an unavailable exchange and reschedules", func() {
			fakeExchange.GetLimitsReturns(exchange.Limits{}, failure.Permanent(&exchange.APIError{Code: 311, Msg: "currency unavailable"}))

			executions := coordinator.Tick(ctx)

			Expect(executions).To(HaveLen(1))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeExchangeUnavailable))
			Expect(reload().NextDueAt).To(BeTemporally("==", start.Add(24*time.Hour)))
			Expect(notified()).To(Equal([]notify.Kind{notify.KindExchangeUnavailable}))
		})

		It("reports other exchange errors without writing an order", func() {
			fakeExchange.CreateOrderReturns(exchange.Order{}, failure.Transient(errors.New("exchange returned 502")))

			executions := coordinator.Tick(ctx)

			Expect(executions[0].Outcome).To(Equal(core.OutcomeExchangeError))
			Expect(reload().OrderID).To(BeNil())
			Expect(attempts()).To(BeEmpty())
			Expect(notified()).To(Equal([]notify.Kind{notify.KindExchangeError}))
		})

		It("leaves the order for a manual deposit when the wallet is locked", func() {
			fakeCreds.CredentialsReturns(false)

			executions := coordinator.Tick(ctx)

			Expect(executions).To(HaveLen(1))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeManual))
			Expect(fakeSender.SendCallCount()).To(BeZero())
			Expect(attempts()).To(BeEmpty())

			p := reload()
			Expect(*p.OrderID).To(Equal("ORD1"))
			Expect(p.NextDueAt).To(BeTemporally("==", start.Add(24*time.Hour)))

			Expect(notified()).To(Equal([]notify.Kind{notify.KindManualSend}))
			_, e := fakeNotifier.NotifyArgsForCall(0)
			Expect(e.DepositAddress).To(Equal(testDeposit))
			Expect(e.DepositCurrency).To(Equal("USDTBSC"))
		})

		It("contains a panic to the plan that raised it", func() {
			Expect(plans.Reschedule(ctx, plan.ID, start.Add(-time.Minute))).To(Succeed())
			other := &repository.Plan{
				Owner:         testOwner,
				Network:       networks.BSC,
				Amount:        decimal.NewFromInt(60),
				IntervalHours: 24,
				Destination:   testDestination,
				Active:        true,
				Lifecycle:     repository.LifecycleLive,
				NextDueAt:     start,
			}
			Expect(plans.CreatePlan(ctx, other, func([]repository.Plan) error { return nil })).To(Succeed())

			fakeExchange.CreateOrderReturnsOnCall(1, order("ORD2", 30*time.Minute), nil)
			fakeSender.SendCalls(func(c context.Context, r transfer.Request, rec transfer.Recorder) (transfer.Result, error) {
				if fakeSender.SendCallCount() == 1 {
					panic("nil signer")
				}
				return sendSucceeds(c, r, rec)
			})

			executions := coordinator.Tick(ctx)

			Expect(executions).To(HaveLen(2))
			Expect(executions[0].PlanID).To(Equal(plan.ID))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeError))
			Expect(executions[0].Reason).To(ContainSubstring("nil signer"))
			Expect(executions[1].PlanID).To(Equal(other.ID))
			Expect(executions[1].Outcome).To(Equal(core.OutcomeSent))

			list := attempts()
			Expect(list).To(HaveLen(2))
			Expect(list[1].State).To(Equal(repository.StateFailed))
			Expect(reload().NextDueAt).To(BeTemporally("==", start.Add(24*time.Hour)))

			Expect(notified()).To(ConsistOf(notify.KindUnexpectedError, notify.KindSent))
		})

		It("sends even when the notification cannot be delivered", func() {
			fakeNotifier.NotifyReturns(errors.New("chat not found"))

			executions := coordinator.Tick(ctx)

			Expect(executions[0].Outcome).To(Equal(core.OutcomeSent))
		})
	})

	Describe("Execute", func() {
		It("runs a plan that is not due yet and advances its schedule", func() {
			Expect(plans.Reschedule(ctx, plan.ID, start.Add(12*time.Hour))).To(Succeed())

			exec, err := coordinator.Execute(ctx, testOwner, plan.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(exec.Outcome).To(Equal(core.OutcomeSent))
			Expect(reload().NextDueAt).To(BeTemporally("==", start.Add(24*time.Hour)))
		})

		It("rejects paused plans", func() {
			Expect(plans.SetActive(ctx, testOwner, plan.ID, false)).To(Succeed())

			_, err := coordinator.Execute(ctx, testOwner, plan.ID)

			Expect(err).To(MatchError(core.ErrPlanInactive))
			Expect(fakeExchange.GetLimitsCallCount()).To(BeZero())
		})

		It("does not reach other owners' plans", func() {
			_, err := coordinator.Execute(ctx, "someone-else", plan.ID)

			Expect(err).To(MatchError(repository.ErrPlanNotFound))
		})

		It("refuses to run a plan the scheduler is processing", func() {
			entered := make(chan struct{})
			release := make(chan struct{})
			fakeSender.SendCalls(func(c context.Context, r transfer.Request, rec transfer.Recorder) (transfer.Result, error) {
				close(entered)
				<-release
				return sendSucceeds(c, r, rec)
			})

			done := make(chan []core.Execution)
			go func() {
				defer GinkgoRecover()
				done <- coordinator.Tick(ctx)
			}()
			Eventually(entered).Should(BeClosed())

			_, err := coordinator.Execute(ctx, testOwner, plan.ID)
			Expect(err).To(MatchError(core.ErrPlanBusy))

			close(release)
			var executions []core.Execution
			Eventually(done).Should(Receive(&executions))
			Expect(executions).To(HaveLen(1))
			Expect(executions[0].Outcome).To(Equal(core.OutcomeSent))
			Expect(fakeSender.SendCallCount()).To(Equal(1))
			Expect(fakeExchange.CreateOrderCallCount()).To(Equal(1))
		})
	})
})
