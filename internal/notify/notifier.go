package notify

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChatDirectory . ChatDirectory
type ChatDirectory interface {
	ChatID(ctx context.Context, owner string) (int64, error)
}

// Telegram delivers events to the owner's Telegram chat.
type Telegram struct {
	logger *zap.SugaredLogger
	bot    *telego.Bot
	chats  ChatDirectory
}

func NewTelegram(logger *zap.SugaredLogger, token string, chats ChatDirectory, opts ...telego.BotOption) (*Telegram, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Telegram{logger: logger, bot: bot, chats: chats}, nil
}

func (t *Telegram) Notify(ctx context.Context, e Event) error {
	chatID, err := t.chats.ChatID(ctx, e.Owner)
	if err != nil {
		t.logger.Warnw("no telegram chat for owner", "owner", e.Owner, "kind", e.Kind, "error", err)
		return fmt.Errorf("resolve chat: %w", err)
	}

	msg := tu.Message(tu.ID(chatID), Render(e)).
		WithLinkPreviewOptions(&telego.LinkPreviewOptions{IsDisabled: true})
	if _, err := t.bot.SendMessage(ctx, msg); err != nil {
		t.logger.Errorw("telegram send failed", "owner", e.Owner, "kind", e.Kind, "error", err)
		return fmt.Errorf("send telegram message: %w", err)
	}

	t.logger.Infow("notification sent", "owner", e.Owner, "kind", e.Kind, "plan_id", e.PlanID)
	return nil
}

// Log writes events to the application log. It is used when no Telegram
// token is configured.
type Log struct {
	logger *zap.SugaredLogger
}

func NewLog(logger *zap.SugaredLogger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Notify(_ context.Context, e Event) error {
	l.logger.Infow("notification",
		"owner", e.Owner,
		"kind", e.Kind,
		"plan_id", e.PlanID,
		"order_id", e.OrderID,
		"text", Render(e),
	)
	return nil
}
