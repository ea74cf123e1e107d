package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/notify"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/notify/fake"
	"github.com/mymmrac/telego"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var testToken = "123456:" + strings.Repeat("A", 35)

var _ = Describe("Telegram", func() {
	var (
		srv      *httptest.Server
		chats    *fake.ChatDirectory
		notifier *notify.Telegram
		paths    []string
		bodies   []map[string]any
		event    notify.Event
	)

	BeforeEach(func() {
		paths = nil
		bodies = nil

		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			Expect(err).NotTo(HaveOccurred())

			var body map[string]any
			Expect(json.Unmarshal(raw, &body)).To(Succeed())
			paths = append(paths, r.URL.Path)
			bodies = append(bodies, body)

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
		}))
		DeferCleanup(srv.Close)

		chats = new(fake.ChatDirectory)
		chats.ChatIDReturns(42, nil)

		var err error
		notifier, err = notify.NewTelegram(zap.NewNop().Sugar(), testToken, chats,
			telego.WithHTTPClient(srv.Client()),
			telego.WithAPIServer(srv.URL),
			telego.WithDiscardLogger(),
		)
		Expect(err).NotTo(HaveOccurred())

		event = baseEvent(notify.KindManualSend)
	})

	It("sends the rendered event to the owner's chat", func() {
		Expect(notifier.Notify(context.Background(), event)).To(Succeed())

		_, owner := chats.ChatIDArgsForCall(0)
		Expect(owner).To(Equal("owner-1"))

		Expect(paths).To(ConsistOf("/bot" + testToken + "/sendMessage"))
		Expect(bodies[0]).To(HaveKeyWithValue("chat_id", BeNumerically("==", 42)))
		Expect(bodies[0]).To(HaveKeyWithValue("text", notify.Render(event)))
	})

	It("fails when the owner has no chat", func() {
		lookupErr := errors.New("no chat")
		chats.ChatIDReturns(0, lookupErr)

		Expect(notifier.Notify(context.Background(), event)).To(MatchError(lookupErr))
		Expect(paths).To(BeEmpty())
	})

	It("rejects malformed tokens", func() {
		_, err := notify.NewTelegram(zap.NewNop().Sugar(), "bad", chats)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Log", func() {
	It("never fails", func() {
		sink := notify.NewLog(zap.NewNop().Sugar())
		Expect(sink.Notify(context.Background(), baseEvent(notify.KindSent))).To(Succeed())
	})
})
