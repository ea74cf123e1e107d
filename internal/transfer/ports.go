package transfer

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Chain . Chain
type Chain interface {
	ToBaseUnits(ctx context.Context, amount decimal.Decimal) *big.Int
	TokenBalance(ctx context.Context, owner common.Address) (*big.Int, error)
	NativeBalance(ctx context.Context, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	EstimateApproveGas(ctx context.Context, from, spender common.Address, amount *big.Int) (uint64, error)
	EstimateTransferGas(ctx context.Context, from, to common.Address, amount *big.Int) (uint64, error)
	Approve(ctx context.Context, key *ecdsa.PrivateKey, spender common.Address, amount *big.Int) (common.Hash, error)
	Transfer(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, amount *big.Int) (common.Hash, error)
	WaitForReceipt(ctx context.Context, hash common.Hash, timeout time.Duration) (ethereum.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name KeyStore . KeyStore
type KeyStore interface {
	Key(owner string) (*ecdsa.PrivateKey, error)
}

// Recorder persists transaction hashes as soon as they are broadcast.
//
//counterfeiter:generate -o fake -fake-name Recorder . Recorder
type Recorder interface {
	RecordApproval(ctx context.Context, hash string) error
	RecordTransfer(ctx context.Context, hash string) error
}
