package ethereum

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const nativeDecimals = 18

// Balance is a wallet's holdings on one network.
type Balance struct {
	Network string          `json:"network"`
	Token   decimal.Decimal `json:"token"`
	Native  decimal.Decimal `json:"native"`
}

// Chains holds one token client per reachable network.
type Chains struct {
	clients map[string]*TokenClient
	closers []func()
}

// Dial connects to every network in reg. Networks without a token contract are
// skipped; a chain id mismatch between node and configuration is fatal.
func Dial(ctx context.Context, logger *zap.SugaredLogger, reg *networks.Registry) (*Chains, error) {
	chains := &Chains{clients: make(map[string]*TokenClient)}

	for _, network := range reg.All() {
		if network.TokenContract == "" {
			logger.Warnw("network has no token contract, skipping", "network", network.Key)
			continue
		}

		client, err := ethclient.DialContext(ctx, network.RPCURL)
		if err != nil {
			chains.Close()
			return nil, fmt.Errorf("dial %s: %w", network.Key, err)
		}
		chains.closers = append(chains.closers, client.Close)

		checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		chainID, err := client.ChainID(checkCtx)
		cancel()
		switch {
		case err != nil:
			logger.Warnw("could not verify chain id", "network", network.Key, "error", err)
		case chainID.Int64() != network.ChainID:
			chains.Close()
			return nil, fmt.Errorf("%s: node reports chain id %s, expected %d", network.Key, chainID, network.ChainID)
		}

		tokenClient, err := NewTokenClient(client, network)
		if err != nil {
			chains.Close()
			return nil, fmt.Errorf("token client for %s: %w", network.Key, err)
		}
		chains.clients[network.Key] = tokenClient

		logger.Infow("connected to network", "network", network.Key, "chain_id", network.ChainID, "rpc", network.RPCURL)
	}

	return chains, nil
}

// NewChains wraps already built token clients.
func NewChains(clients ...*TokenClient) *Chains {
	chains := &Chains{clients: make(map[string]*TokenClient, len(clients))}
	for _, c := range clients {
		chains.clients[c.Network().Key] = c
	}
	return chains
}

func (c *Chains) Get(network string) (*TokenClient, error) {
	client, ok := c.clients[network]
	if !ok {
		return nil, fmt.Errorf("%w: %q", networks.ErrUnsupportedNetwork, network)
	}
	return client, nil
}

// Clients returns the token clients keyed by network.
func (c *Chains) Clients() map[string]*TokenClient {
	out := make(map[string]*TokenClient, len(c.clients))
	for k, v := range c.clients {
		out[k] = v
	}
	return out
}

// Networks returns the keys of the connected networks, sorted.
func (c *Chains) Networks() []string {
	keys := make([]string, 0, len(c.clients))
	for k := range c.clients {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Receipt looks up a transaction receipt on network without waiting.
func (c *Chains) Receipt(ctx context.Context, network, hash string) (Receipt, bool, error) {
	client, err := c.Get(network)
	if err != nil {
		return Receipt{}, false, err
	}
	return client.ReceiptOf(ctx, common.HexToHash(hash))
}

func (c *Chains) Balance(ctx context.Context, network string, owner common.Address) (Balance, error) {
	client, err := c.Get(network)
	if err != nil {
		return Balance{}, err
	}

	token, err := client.TokenBalance(ctx, owner)
	if err != nil {
		return Balance{}, err
	}
	native, err := client.NativeBalance(ctx, owner)
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		Network: network,
		Token:   client.FromBaseUnits(ctx, token),
		Native:  decimal.NewFromBigInt(native, -nativeDecimals),
	}, nil
}

func (c *Chains) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
	c.closers = nil
}
