package notify

import (
	"fmt"
	"strings"
	"time"
)

var titles = map[Kind]string{
	KindSent:                "Purchase sent",
	KindBlocked:             "Purchase blocked by a temporary error",
	KindFailed:              "Purchase failed",
	KindManualSend:          "Wallet locked, manual deposit required",
	KindOutOfLimits:         "Purchase skipped: amount outside exchange limits",
	KindExchangeUnavailable: "Purchase skipped: network unavailable on the exchange",
	KindExchangeError:       "Purchase skipped: exchange error",
	KindUnexpectedError:     "Purchase interrupted by an unexpected error",
	KindOrderCompleted:      "Order completed",
	KindAttemptInterrupted:  "Purchase attempt interrupted",
}

// Render formats e as a plain text message.
func Render(e Event) string {
	var b strings.Builder

	title, ok := titles[e.Kind]
	if !ok {
		title = string(e.Kind)
	}
	line(&b, "%s", title)
	line(&b, "Plan #%d: %s USDT on %s every %s", e.PlanID, e.Amount.StringFixed(2), e.Network, Interval(e.IntervalHours))

	if e.OrderID != "" {
		line(&b, "Order: %s (%s)", e.OrderID, e.OrderURL)
	}

	switch e.Kind {
	case KindSent:
		txLines(&b, e)
		line(&b, "Next purchase: %s", formatTime(e.NextDueAt))
	case KindBlocked:
		errorLine(&b, e)
		line(&b, "It will be retried once the plan interval has passed.")
	case KindFailed:
		txLines(&b, e)
		errorLine(&b, e)
		manualLine(&b, e)
		line(&b, "Next purchase: %s", formatTime(e.NextDueAt))
	case KindManualSend:
		manualLine(&b, e)
		line(&b, "Next purchase: %s", formatTime(e.NextDueAt))
	case KindOutOfLimits:
		line(&b, "Limits: %s - %s USDT", e.LimitMin.StringFixed(2), e.LimitMax.StringFixed(2))
		line(&b, "Next purchase: %s", formatTime(e.NextDueAt))
	case KindExchangeUnavailable, KindExchangeError:
		errorLine(&b, e)
		line(&b, "Next purchase: %s", formatTime(e.NextDueAt))
	case KindUnexpectedError:
		errorLine(&b, e)
	case KindOrderCompleted:
		if e.PayoutTx.Hash != "" {
			line(&b, "BTC payout: %s", e.PayoutTx)
		}
	case KindAttemptInterrupted:
		txLines(&b, e)
		errorLine(&b, e)
		line(&b, "Check the wallet on-chain before sending funds manually.")
	}

	return b.String()
}

// Interval names a plan interval given in hours.
func Interval(hours int) string {
	switch hours {
	case 12:
		return "12 hours"
	case 24:
		return "day"
	case 168:
		return "week"
	case 720:
		return "month"
	}
	return fmt.Sprintf("%dh", hours)
}

func txLines(b *strings.Builder, e Event) {
	if e.ApproveTx.Hash != "" {
		line(b, "Approve tx: %s", e.ApproveTx)
	}
	if e.TransferTx.Hash != "" {
		line(b, "Transfer tx: %s", e.TransferTx)
	}
}

func errorLine(b *strings.Builder, e Event) {
	if e.Error != "" {
		line(b, "Error: %s", e.Error)
	}
}

func manualLine(b *strings.Builder, e Event) {
	if e.DepositAddress == "" {
		return
	}
	line(b, "Send manually: %s %s to %s", e.DepositAmount.String(), e.DepositCurrency, e.DepositAddress)
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

func line(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}
