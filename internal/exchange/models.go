package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnavailable  = errors.New("currency or network unavailable on the exchange")
	ErrOutOfLimits  = errors.New("amount outside exchange limits")
	ErrUnauthorized = errors.New("exchange rejected the api credentials")
	ErrNoCurrency   = errors.New("no exchange currency for network")
)

// Order statuses reported by the exchange.
const (
	StatusNew       = "NEW"
	StatusPending   = "PENDING"
	StatusExchange  = "EXCHANGE"
	StatusWithdraw  = "WITHDRAW"
	StatusDone      = "DONE"
	StatusExpired   = "EXPIRED"
	StatusEmergency = "EMERGENCY"
)

const orderPageURL = "https://fixedfloat.com/order/"

// APIError is a response with a non-zero result code.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchange error (code=%d): %s", e.Code, e.Msg)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case 310, 311, 312:
		return ErrUnavailable
	case 301:
		return ErrOutOfLimits
	case 401, 501:
		return ErrUnauthorized
	}
	return nil
}

type Limits struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

type OrderRequest struct {
	Network     string
	Amount      decimal.Decimal
	Destination string
}

// Order is a freshly created fixed-rate order awaiting its deposit.
type Order struct {
	ID              string
	Token           string
	Status          string
	DepositAddress  string
	DepositAmount   string
	DepositCurrency string
	ExpiresIn       time.Duration
}

// URL is the exchange page of the order.
func (o Order) URL() string {
	return OrderURL(o.ID)
}

// Amount parses the quoted deposit amount, returning fallback when the quote
// is missing or unparseable.
func (o Order) Amount(fallback decimal.Decimal) decimal.Decimal {
	amount, err := decimal.NewFromString(o.DepositAmount)
	if err != nil || !amount.IsPositive() {
		return fallback
	}
	return amount
}

type OrderState struct {
	ID         string
	Status     string
	PayoutTxID string
}

func (s OrderState) Done() bool {
	return s.Status == StatusDone
}

func OrderURL(id string) string {
	return orderPageURL + id
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type currency struct {
	Code    string `json:"code"`
	Coin    string `json:"coin"`
	Network string `json:"network"`
}

type priceRequest struct {
	Type      string `json:"type"`
	FromCcy   string `json:"fromCcy"`
	ToCcy     string `json:"toCcy"`
	Direction string `json:"direction"`
	Amount    string `json:"amount"`
}

type priceResponse struct {
	From struct {
		Code string      `json:"code"`
		Min  json.Number `json:"min"`
		Max  json.Number `json:"max"`
	} `json:"from"`
}

type createRequest struct {
	Type      string `json:"type"`
	FromCcy   string `json:"fromCcy"`
	ToCcy     string `json:"toCcy"`
	Direction string `json:"direction"`
	Amount    string `json:"amount"`
	ToAddress string `json:"toAddress"`
}

type orderRequest struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Status string `json:"status"`
	Time   struct {
		Left json.Number `json:"left"`
	} `json:"time"`
	From struct {
		Code    string      `json:"code"`
		Amount  json.Number `json:"amount"`
		Address string      `json:"address"`
	} `json:"from"`
	To struct {
		Tx struct {
			ID string `json:"id"`
		} `json:"tx"`
	} `json:"to"`
}
