package ethereum

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
)

// classify tags an RPC error with its retry class. Transport level problems
// and server side HTTP failures are transient; anything the node itself
// answered with (reverts, nonce or funds errors) is permanent.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var classified *failure.Error
	if errors.As(err, &classified) {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, geth.NotFound),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return failure.Transient(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return failure.Transient(err)
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode >= http.StatusInternalServerError || httpErr.StatusCode == http.StatusTooManyRequests {
			return failure.Transient(err)
		}
		return failure.Permanent(err)
	}

	return failure.Permanent(err)
}
