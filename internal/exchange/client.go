package exchange

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/config"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	targetCurrency = "BTC"
	rateFixed      = "fixed"
	directionFrom  = "from"
	defaultTimeout = 30 * time.Second
)

// quoteAmount is sent with price requests; any amount returns the limits.
var quoteAmount = decimal.NewFromInt(50)

// Client talks to the FixedFloat v2 API.
type Client struct {
	logger     *zap.SugaredLogger
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string

	mu    sync.RWMutex
	codes map[string]string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

func NewClient(logger *zap.SugaredLogger, cfg config.Exchange, reg *networks.Registry, opts ...Option) *Client {
	codes := make(map[string]string)
	for _, n := range reg.All() {
		codes[n.Key] = n.ExchangeCode
	}

	c := &Client{
		logger:     logger,
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		codes:      codes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RefreshCurrencies updates the network to currency code mapping from the
// exchange's currency list.
func (c *Client) RefreshCurrencies(ctx context.Context) error {
	var items []currency
	if err := c.do(ctx, "ccies", struct{}{}, &items); err != nil {
		return fmt.Errorf("refresh currencies: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		if item.Coin != "USDT" {
			continue
		}
		network := strings.ToUpper(item.Network)
		switch {
		case strings.Contains(network, "ARBITRUM"):
			c.codes[networks.Arbitrum] = item.Code
		case strings.Contains(network, "BSC"), strings.Contains(network, "BEP20"):
			c.codes[networks.BSC] = item.Code
		case strings.Contains(network, "POLYGON"), strings.Contains(network, "MATIC"):
			c.codes[networks.Polygon] = item.Code
		}
	}
	c.logger.Infow("exchange currencies refreshed", "codes", c.codes)
	return nil
}

func (c *Client) GetLimits(ctx context.Context, network string) (Limits, error) {
	code, err := c.code(network)
	if err != nil {
		return Limits{}, err
	}

	req := priceRequest{
		Type:      rateFixed,
		FromCcy:   code,
		ToCcy:     targetCurrency,
		Direction: directionFrom,
		Amount:    quoteAmount.String(),
	}
	var resp priceResponse
	if err := c.do(ctx, "price", req, &resp); err != nil {
		return Limits{}, fmt.Errorf("limits for %s: %w", network, err)
	}

	minAmount, err := decimal.NewFromString(resp.From.Min.String())
	if err != nil {
		return Limits{}, failure.Permanent(fmt.Errorf("limits for %s: bad min %q", network, resp.From.Min))
	}
	maxAmount, err := decimal.NewFromString(resp.From.Max.String())
	if err != nil {
		return Limits{}, failure.Permanent(fmt.Errorf("limits for %s: bad max %q", network, resp.From.Max))
	}
	return Limits{Min: minAmount, Max: maxAmount}, nil
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	code, err := c.code(req.Network)
	if err != nil {
		return Order{}, err
	}

	body := createRequest{
		Type:      rateFixed,
		FromCcy:   code,
		ToCcy:     targetCurrency,
		Direction: directionFrom,
		Amount:    req.Amount.String(),
		ToAddress: req.Destination,
	}
	var resp orderResponse
	if err := c.do(ctx, "create", body, &resp); err != nil {
		return Order{}, fmt.Errorf("create order on %s: %w", req.Network, err)
	}
	if resp.ID == "" || resp.From.Address == "" {
		return Order{}, failure.Permanent(fmt.Errorf("create order on %s: incomplete response", req.Network))
	}

	currency := resp.From.Code
	if currency == "" {
		currency = code
	}

	return Order{
		ID:              resp.ID,
		Token:           resp.Token,
		Status:          resp.Status,
		DepositAddress:  resp.From.Address,
		DepositAmount:   resp.From.Amount.String(),
		DepositCurrency: currency,
		ExpiresIn:       secondsLeft(resp.Time.Left),
	}, nil
}

func (c *Client) OrderStatus(ctx context.Context, id, token string) (OrderState, error) {
	var resp orderResponse
	if err := c.do(ctx, "order", orderRequest{ID: id, Token: token}, &resp); err != nil {
		return OrderState{}, fmt.Errorf("order %s status: %w", id, err)
	}
	return OrderState{ID: id, Status: resp.Status, PayoutTxID: resp.To.Tx.ID}, nil
}

func (c *Client) code(network string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	code, ok := c.codes[network]
	if !ok || code == "" {
		return "", failure.Validation(fmt.Errorf("%w: %s", ErrNoCurrency, network))
	}
	return code, nil
}

func (c *Client) do(ctx context.Context, method string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return failure.Permanent(fmt.Errorf("encode %s request: %w", method, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewReader(raw))
	if err != nil {
		return failure.Permanent(fmt.Errorf("build %s request: %w", method, err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("X-API-SIGN", c.sign(raw))

	c.logger.Debugw("exchange request", "method", method, "api_key", mask(c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure.Transient(fmt.Errorf("%s request failed: %w", method, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure.Transient(fmt.Errorf("read %s response: %w", method, err))
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError, resp.StatusCode == http.StatusTooManyRequests:
		return failure.Transient(fmt.Errorf("%s: http status %d", method, resp.StatusCode))
	case resp.StatusCode >= http.StatusBadRequest:
		return failure.Permanent(fmt.Errorf("%s: http status %d", method, resp.StatusCode))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return failure.Permanent(fmt.Errorf("decode %s response: %w", method, err))
	}
	if env.Code != 0 {
		apiErr := &APIError{Code: env.Code, Msg: env.Msg}
		c.logger.Warnw("exchange error response", "method", method, "code", env.Code, "msg", env.Msg)
		return failure.Permanent(apiErr)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return failure.Permanent(fmt.Errorf("decode %s data: %w", method, err))
	}
	return nil
}

func (c *Client) sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// secondsLeft converts the reported remaining lifetime, clamping to zero.
func secondsLeft(left json.Number) time.Duration {
	seconds, err := decimal.NewFromString(left.String())
	if err != nil || !seconds.IsPositive() {
		return 0
	}
	return time.Duration(seconds.Mul(decimal.NewFromInt(int64(time.Second))).IntPart())
}

func mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
