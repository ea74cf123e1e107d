package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/handler/middleware"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/http/handler/middleware/fake"
	"github.com/google/uuid"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Middleware", func() {
	var (
		w        *httptest.ResponseRecorder
		req      *http.Request
		reached  bool
		seenID   string
		seenUser string
		next     http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/dca/plans", nil)
		reached = false
		seenID, seenUser = "", ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			seenID = middleware.RequestID(r.Context())
			seenUser, _ = middleware.Owner(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("assigns a new id", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(uuid.Validate(seenID)).To(Succeed())
			Expect(w.Header().Get("X-Request-ID")).To(Equal(seenID))
		})

		It("keeps a valid incoming id", func() {
			id := uuid.NewString()
			req.Header.Set("X-Request-ID", id)

			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seenID).To(Equal(id))
		})

		It("replaces a malformed incoming id", func() {
			req.Header.Set("X-Request-ID", "<script>")

			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seenID).NotTo(Equal("<script>"))
			Expect(uuid.Validate(seenID)).To(Succeed())
		})
	})

	Describe("Logging", func() {
		It("passes the response through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)

			Expect(reached).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Authenticate", func() {
		var (
			fakeValidator *fake.TokenValidator
			handler       http.Handler
		)

		BeforeEach(func() {
			fakeValidator = new(fake.TokenValidator)
			handler = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeValidator).Authenticate(next)
		})

		It("puts the token owner on the context", func() {
			fakeValidator.OwnerReturns("owner-1", nil)
			req.Header.Set("Authorization", "Bearer abc.def")

			handler.ServeHTTP(w, req)

			Expect(reached).To(BeTrue())
			Expect(seenUser).To(Equal("owner-1"))
			Expect(fakeValidator.OwnerArgsForCall(0)).To(Equal("abc.def"))
		})

		DescribeTable("rejects requests without a usable bearer token",
			func(header string) {
				if header != "" {
					req.Header.Set("Authorization", header)
				}

				handler.ServeHTTP(w, req)

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(reached).To(BeFalse())
				Expect(fakeValidator.OwnerCallCount()).To(BeZero())
			},
			Entry("no header", ""),
			Entry("basic scheme", "Basic dXNlcjpwYXNz"),
			Entry("empty token", "Bearer "),
		)

		It("rejects invalid tokens", func() {
			fakeValidator.OwnerReturns("", errors.New("token expired"))
			req.Header.Set("Authorization", "Bearer abc.def")

			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(reached).To(BeFalse())
		})
	})
})
