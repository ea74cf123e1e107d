package transfer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/custody"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInsufficientToken  = errors.New("insufficient token balance")
	ErrInsufficientNative = errors.New("insufficient native balance for gas")
	ErrInvalidDeposit     = errors.New("invalid deposit address")
	ErrInvalidAmount      = errors.New("transfer amount must be positive")
	ErrTxReverted         = errors.New("transaction reverted")
)

var (
	gasPriceMultiplier  = decimal.RequireFromString("1.2")
	nativeReserveFactor = decimal.RequireFromString("1.5")
)

// Request describes one deposit to an exchange order.
type Request struct {
	Owner          string
	Network        string
	DepositAddress string
	Amount         decimal.Decimal
}

type Result struct {
	From           common.Address
	ApproveTxHash  string
	TransferTxHash string
	Block          uint64
}

// Sequencer moves tokens from the owner's wallet to a deposit address with an
// allowance-gated approve followed by a transfer.
type Sequencer struct {
	logger         *zap.SugaredLogger
	chains         map[string]Chain
	keys           KeyStore
	receiptTimeout time.Duration
}

func NewSequencer(logger *zap.SugaredLogger, chains map[string]Chain, keys KeyStore, receiptTimeout time.Duration) *Sequencer {
	return &Sequencer{
		logger:         logger,
		chains:         chains,
		keys:           keys,
		receiptTimeout: receiptTimeout,
	}
}

// Send performs the deposit. Hashes are handed to rec as soon as each
// transaction is broadcast; the result carries whatever was sent even when an
// error is returned.
func (s *Sequencer) Send(ctx context.Context, req Request, rec Recorder) (Result, error) {
	chain, ok := s.chains[req.Network]
	if !ok {
		return Result{}, failure.Validation(fmt.Errorf("%w: %s", networks.ErrUnsupportedNetwork, req.Network))
	}
	if !common.IsHexAddress(req.DepositAddress) {
		return Result{}, failure.Validation(fmt.Errorf("%w: %q", ErrInvalidDeposit, req.DepositAddress))
	}
	if !req.Amount.IsPositive() {
		return Result{}, failure.Validation(ErrInvalidAmount)
	}
	deposit := common.HexToAddress(req.DepositAddress)

	key, err := s.keys.Key(req.Owner)
	if err != nil {
		return Result{}, fmt.Errorf("unlock wallet: %w", err)
	}
	defer custody.Scrub(key)

	from := crypto.PubkeyToAddress(key.PublicKey)
	result := Result{From: from}
	required := chain.ToBaseUnits(ctx, req.Amount)

	logger := s.logger.With("owner", req.Owner, "network", req.Network, "from", from.Hex(), "deposit", deposit.Hex())

	if err := s.checkBalances(ctx, chain, from, deposit, required); err != nil {
		return result, err
	}

	allowance, err := chain.Allowance(ctx, from, deposit)
	if err != nil {
		return result, err
	}

	if allowance.Cmp(required) < 0 {
		hash, err := chain.Approve(ctx, key, deposit, required)
		if err != nil {
			return result, fmt.Errorf("approve: %w", err)
		}
		result.ApproveTxHash = hash.Hex()
		logger.Infow("approve broadcast", "tx", result.ApproveTxHash)

		if err := rec.RecordApproval(ctx, result.ApproveTxHash); err != nil {
			return result, fmt.Errorf("record approval: %w", err)
		}
		if _, err := s.confirm(ctx, chain, hash, "approve"); err != nil {
			return result, err
		}
	} else {
		logger.Infow("allowance sufficient, skipping approve", "allowance", allowance.String())
	}

	hash, err := chain.Transfer(ctx, key, deposit, required)
	if err != nil {
		return result, fmt.Errorf("transfer: %w", err)
	}
	result.TransferTxHash = hash.Hex()
	logger.Infow("transfer broadcast", "tx", result.TransferTxHash)

	if err := rec.RecordTransfer(ctx, result.TransferTxHash); err != nil {
		return result, fmt.Errorf("record transfer: %w", err)
	}

	block, err := s.confirm(ctx, chain, hash, "transfer")
	if err != nil {
		return result, err
	}
	result.Block = block

	logger.Infow("transfer confirmed", "tx", result.TransferTxHash, "block", block)
	return result, nil
}

func (s *Sequencer) checkBalances(ctx context.Context, chain Chain, from, deposit common.Address, required *big.Int) error {
	balance, err := chain.TokenBalance(ctx, from)
	if err != nil {
		return err
	}
	if balance.Cmp(required) < 0 {
		return failure.Permanent(fmt.Errorf("%w: have %s, need %s", ErrInsufficientToken, balance, required))
	}

	approveGas, err := chain.EstimateApproveGas(ctx, from, deposit, required)
	if err != nil {
		return err
	}
	transferGas, err := chain.EstimateTransferGas(ctx, from, deposit, required)
	if err != nil {
		return err
	}
	gasPrice, err := chain.GasPrice(ctx)
	if err != nil {
		return err
	}

	native, err := chain.NativeBalance(ctx, from)
	if err != nil {
		return err
	}

	needed := MinNativeBalance(approveGas, transferGas, gasPrice)
	if decimal.NewFromBigInt(native, 0).LessThan(needed) {
		return failure.Permanent(fmt.Errorf("%w: have %s wei, need %s wei", ErrInsufficientNative, native, needed.Ceil()))
	}
	return nil
}

func (s *Sequencer) confirm(ctx context.Context, chain Chain, hash common.Hash, step string) (uint64, error) {
	receipt, err := chain.WaitForReceipt(ctx, hash, s.receiptTimeout)
	if err != nil {
		return 0, fmt.Errorf("await %s: %w", step, err)
	}
	if !receipt.Succeeded() {
		return 0, failure.Permanent(fmt.Errorf("%s %s: %w", step, hash.Hex(), ErrTxReverted))
	}
	return receipt.BlockNumber, nil
}

// MinNativeBalance is the native balance, in wei, required to pay for both
// transactions with the price and reserve margins applied.
func MinNativeBalance(approveGas, transferGas uint64, gasPrice *big.Int) decimal.Decimal {
	gas := decimal.NewFromBigInt(new(big.Int).SetUint64(approveGas), 0).
		Add(decimal.NewFromBigInt(new(big.Int).SetUint64(transferGas), 0))
	return gas.Mul(decimal.NewFromBigInt(gasPrice, 0)).Mul(gasPriceMultiplier).Mul(nativeReserveFactor)
}
