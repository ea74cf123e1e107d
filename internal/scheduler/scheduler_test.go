package scheduler_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/scheduler"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Runner", func() {
	var runner *scheduler.Runner

	BeforeEach(func() {
		runner = scheduler.New(zap.NewNop().Sugar())
	})

	It("runs jobs on their interval", func() {
		var runs atomic.Int32
		_, err := runner.Every("tick", time.Second, func(context.Context) {
			runs.Add(1)
		})
		Expect(err).NotTo(HaveOccurred())

		runner.Start()
		defer runner.Stop()

		Eventually(runs.Load, 5*time.Second, 100*time.Millisecond).Should(BeNumerically(">=", 2))
	})

	It("keeps running after a job panics", func() {
		var runs atomic.Int32
		_, err := runner.Every("flaky", time.Second, func(context.Context) {
			if runs.Add(1) == 1 {
				panic("boom")
			}
		})
		Expect(err).NotTo(HaveOccurred())

		runner.Start()
		defer runner.Stop()

		Eventually(runs.Load, 5*time.Second, 100*time.Millisecond).Should(BeNumerically(">=", 2))
	})

	It("cancels the job context on stop and waits for the job", func() {
		entered := make(chan struct{})
		var finished atomic.Bool
		_, err := runner.Every("slow", time.Second, func(ctx context.Context) {
			select {
			case <-entered:
			default:
				close(entered)
			}
			<-ctx.Done()
			finished.Store(true)
		})
		Expect(err).NotTo(HaveOccurred())

		runner.Start()
		Eventually(entered, 3*time.Second).Should(BeClosed())

		runner.Stop()
		Expect(finished.Load()).To(BeTrue())
	})

	It("rejects non positive intervals", func() {
		_, err := runner.Every("broken", 0, func(context.Context) {})

		Expect(err).To(MatchError(scheduler.ErrInvalidInterval))
	})
})
