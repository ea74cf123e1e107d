package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/failure"
	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

const defaultPollInterval = 3 * time.Second

// gasLimitBuffer pads estimated gas limits by 20%.
var gasLimitBuffer = big.NewRat(12, 10)

// TokenClient talks to the USDT contract of a single network.
type TokenClient struct {
	client       EthClient
	network      networks.Network
	token        common.Address
	chainID      *big.Int
	erc20        abi.ABI
	pollInterval time.Duration

	decimalsMu sync.Mutex
	decimals   *uint8
}

type Option func(*TokenClient)

// WithPollInterval sets how often receipts are polled.
func WithPollInterval(d time.Duration) Option {
	return func(c *TokenClient) {
		c.pollInterval = d
	}
}

func NewTokenClient(client EthClient, network networks.Network, opts ...Option) (*TokenClient, error) {
	if !common.IsHexAddress(network.TokenContract) {
		return nil, fmt.Errorf("%w: %s", ErrNoTokenContract, network.Key)
	}

	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	c := &TokenClient{
		client:       client,
		network:      network,
		token:        common.HexToAddress(network.TokenContract),
		chainID:      big.NewInt(network.ChainID),
		erc20:        parsed,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *TokenClient) Network() networks.Network {
	return c.network
}

// Decimals returns the token decimals, asking the contract once and falling
// back to the configured value when the call fails.
func (c *TokenClient) Decimals(ctx context.Context) uint8 {
	c.decimalsMu.Lock()
	defer c.decimalsMu.Unlock()

	if c.decimals != nil {
		return *c.decimals
	}

	out, err := c.call(ctx, "decimals")
	if err != nil || len(out) == 0 {
		return c.network.TokenDecimals
	}
	d, ok := out[0].(uint8)
	if !ok {
		return c.network.TokenDecimals
	}
	c.decimals = &d
	return d
}

// ToBaseUnits converts a token amount to the contract's integer units, truncating
// precision the token cannot represent.
func (c *TokenClient) ToBaseUnits(ctx context.Context, amount decimal.Decimal) *big.Int {
	return amount.Shift(int32(c.Decimals(ctx))).BigInt()
}

func (c *TokenClient) FromBaseUnits(ctx context.Context, units *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(units, -int32(c.Decimals(ctx)))
}

func (c *TokenClient) TokenBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := c.call(ctx, "balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("token balance of %s: %w", owner.Hex(), err)
	}
	return firstBigInt(out)
}

func (c *TokenClient) NativeBalance(ctx context.Context, owner common.Address) (*big.Int, error) {
	balance, err := c.client.BalanceAt(ctx, owner, nil)
	if err != nil {
		return nil, fmt.Errorf("native balance of %s: %w", owner.Hex(), classify(err))
	}
	return balance, nil
}

func (c *TokenClient) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	out, err := c.call(ctx, "allowance", owner, spender)
	if err != nil {
		return nil, fmt.Errorf("allowance for %s: %w", spender.Hex(), err)
	}
	return firstBigInt(out)
}

func (c *TokenClient) GasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", classify(err))
	}
	return price, nil
}

func (c *TokenClient) EstimateApproveGas(ctx context.Context, from, spender common.Address, amount *big.Int) (uint64, error) {
	return c.estimate(ctx, from, "approve", spender, amount)
}

func (c *TokenClient) EstimateTransferGas(ctx context.Context, from, to common.Address, amount *big.Int) (uint64, error) {
	return c.estimate(ctx, from, "transfer", to, amount)
}

// Approve lets spender move amount of the key owner's tokens and returns the
// broadcast transaction hash.
func (c *TokenClient) Approve(ctx context.Context, key *ecdsa.PrivateKey, spender common.Address, amount *big.Int) (common.Hash, error) {
	return c.send(ctx, key, "approve", spender, amount)
}

// Transfer sends amount tokens to to and returns the broadcast transaction hash.
func (c *TokenClient) Transfer(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, amount *big.Int) (common.Hash, error) {
	return c.send(ctx, key, "transfer", to, amount)
}

// WaitForReceipt polls until the transaction is included or timeout elapses.
// Running out of time is transient: the transaction may still be mined.
func (c *TokenClient) WaitForReceipt(ctx context.Context, hash common.Hash, timeout time.Duration) (Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return toReceipt(hash, receipt), nil
		}
		if err != nil && !errors.Is(err, geth.NotFound) && !failure.IsTransient(classify(err)) {
			return Receipt{}, fmt.Errorf("receipt of %s: %w", hash.Hex(), classify(err))
		}

		select {
		case <-ctx.Done():
			return Receipt{}, failure.Transient(fmt.Errorf("%w: %s after %s", ErrReceiptTimeout, hash.Hex(), timeout))
		case <-ticker.C:
		}
	}
}

// ReceiptOf looks the receipt up once. found is false while the
// transaction is unknown to the node or still pending.
func (c *TokenClient) ReceiptOf(ctx context.Context, hash common.Hash) (Receipt, bool, error) {
	receipt, err := c.client.TransactionReceipt(ctx, hash)
	if errors.Is(err, geth.NotFound) {
		return Receipt{}, false, nil
	}
	if err != nil {
		return Receipt{}, false, fmt.Errorf("receipt of %s: %w", hash.Hex(), classify(err))
	}
	return toReceipt(hash, receipt), true, nil
}

func (c *TokenClient) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := c.erc20.Pack(method, args...)
	if err != nil {
		return nil, failure.Validation(fmt.Errorf("pack %s: %w", method, err))
	}

	raw, err := c.client.CallContract(ctx, geth.CallMsg{To: &c.token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, classify(err))
	}

	out, err := c.erc20.Unpack(method, raw)
	if err != nil {
		return nil, failure.Permanent(fmt.Errorf("unpack %s: %w", method, err))
	}
	return out, nil
}

func (c *TokenClient) estimate(ctx context.Context, from common.Address, method string, args ...any) (uint64, error) {
	data, err := c.erc20.Pack(method, args...)
	if err != nil {
		return 0, failure.Validation(fmt.Errorf("pack %s: %w", method, err))
	}

	gas, err := c.client.EstimateGas(ctx, geth.CallMsg{From: from, To: &c.token, Data: data})
	if err != nil {
		return 0, fmt.Errorf("estimate %s gas: %w", method, classify(err))
	}
	return gas, nil
}

func (c *TokenClient) send(ctx context.Context, key *ecdsa.PrivateKey, method string, args ...any) (common.Hash, error) {
	from := crypto.PubkeyToAddress(key.PublicKey)

	data, err := c.erc20.Pack(method, args...)
	if err != nil {
		return common.Hash{}, failure.Validation(fmt.Errorf("pack %s: %w", method, err))
	}

	gas, err := c.client.EstimateGas(ctx, geth.CallMsg{From: from, To: &c.token, Data: data})
	if err != nil {
		return common.Hash{}, fmt.Errorf("estimate %s gas: %w", method, classify(err))
	}

	gasPrice, err := c.GasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pending nonce: %w", classify(err))
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      bufferedGas(gas),
		To:       &c.token,
		Value:    big.NewInt(0),
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), key)
	if err != nil {
		return common.Hash{}, failure.Permanent(fmt.Errorf("sign %s: %w", method, err))
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("send %s: %w", method, classify(err))
	}

	return signed.Hash(), nil
}

func toReceipt(hash common.Hash, receipt *types.Receipt) Receipt {
	result := Receipt{
		TxHash:  hash.Hex(),
		Status:  receipt.Status,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result
}

func bufferedGas(gas uint64) uint64 {
	limit := new(big.Rat).Mul(new(big.Rat).SetInt(new(big.Int).SetUint64(gas)), gasLimitBuffer)
	return new(big.Int).Quo(limit.Num(), limit.Denom()).Uint64()
}

func firstBigInt(out []any) (*big.Int, error) {
	if len(out) == 0 {
		return nil, failure.Permanent(errors.New("empty contract response"))
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, failure.Permanent(fmt.Errorf("unexpected contract response type %T", out[0]))
	}
	return v, nil
}
