package networks

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnsupportedNetwork = errors.New("unsupported network")

const (
	Arbitrum = "USDT-ARB"
	BSC      = "USDT-BSC"
	Polygon  = "USDT-MATIC"
)

// Network describes one chain the USDT deposit can be sent from.
type Network struct {
	Key            string
	Name           string
	RPCURL         string
	ChainID        int64
	NativeToken    string
	TokenContract  string
	ExplorerTxURL  string
	ExchangeCode   string
	TokenDecimals  uint8
	BitcoinTxURL   string
	TestnetVariant bool
}

// Overrides replace per-network RPC endpoints and token contracts.
type Overrides struct {
	RPCURLs        map[string]string
	TokenContracts map[string]string
}

var mainnet = map[string]Network{
	Arbitrum: {
		Key:           Arbitrum,
		Name:          "Arbitrum One",
		RPCURL:        "https://arb1.arbitrum.io/rpc",
		ChainID:       42161,
		NativeToken:   "ETH",
		TokenContract: "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9",
		ExplorerTxURL: "https://arbiscan.io/tx/",
		ExchangeCode:  "USDTARBITRUM",
		TokenDecimals: 6,
		BitcoinTxURL:  "https://blockchair.com/bitcoin/transaction/",
	},
	BSC: {
		Key:           BSC,
		Name:          "BNB Smart Chain",
		RPCURL:        "https://bsc-dataseed.binance.org/",
		ChainID:       56,
		NativeToken:   "BNB",
		TokenContract: "0x55d398326f99059fF775485246999027B3197955",
		ExplorerTxURL: "https://bscscan.com/tx/",
		ExchangeCode:  "USDTBSC",
		TokenDecimals: 18,
		BitcoinTxURL:  "https://blockchair.com/bitcoin/transaction/",
	},
	Polygon: {
		Key:           Polygon,
		Name:          "Polygon",
		RPCURL:        "https://polygon-rpc.com/",
		ChainID:       137,
		NativeToken:   "MATIC",
		TokenContract: "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
		ExplorerTxURL: "https://polygonscan.com/tx/",
		ExchangeCode:  "USDTMATIC",
		TokenDecimals: 6,
		BitcoinTxURL:  "https://blockchair.com/bitcoin/transaction/",
	},
}

var testnet = map[string]Network{
	Arbitrum: {
		Key:            Arbitrum,
		Name:           "Arbitrum Sepolia",
		RPCURL:         "https://sepolia-rollup.arbitrum.io/rpc",
		ChainID:        421614,
		NativeToken:    "ETH",
		TokenContract:  "",
		ExplorerTxURL:  "https://sepolia.arbiscan.io/tx/",
		ExchangeCode:   "USDTARBITRUM",
		TokenDecimals:  6,
		BitcoinTxURL:   "https://blockchair.com/bitcoin/testnet/transaction/",
		TestnetVariant: true,
	},
	BSC: {
		Key:            BSC,
		Name:           "BNB Smart Chain Testnet",
		RPCURL:         "https://data-seed-prebsc-1-s1.binance.org:8545/",
		ChainID:        97,
		NativeToken:    "BNB",
		TokenContract:  "",
		ExplorerTxURL:  "https://testnet.bscscan.com/tx/",
		ExchangeCode:   "USDTBSC",
		TokenDecimals:  18,
		BitcoinTxURL:   "https://blockchair.com/bitcoin/testnet/transaction/",
		TestnetVariant: true,
	},
	Polygon: {
		Key:            Polygon,
		Name:           "Polygon Mumbai",
		RPCURL:         "https://rpc-mumbai.maticvigil.com/",
		ChainID:        80001,
		NativeToken:    "MATIC",
		TokenContract:  "",
		ExplorerTxURL:  "https://mumbai.polygonscan.com/tx/",
		ExchangeCode:   "USDTMATIC",
		TokenDecimals:  6,
		BitcoinTxURL:   "https://blockchair.com/bitcoin/testnet/transaction/",
		TestnetVariant: true,
	},
}

// Registry is the resolved set of networks the process works with.
type Registry struct {
	networks map[string]Network
}

// NewRegistry selects mainnet or testnet definitions and applies overrides.
// Testnet token contracts have no canonical deployment and must be overridden.
func NewRegistry(useTestnet bool, overrides Overrides) *Registry {
	src := mainnet
	if useTestnet {
		src = testnet
	}

	resolved := make(map[string]Network, len(src))
	for key, n := range src {
		if url, ok := overrides.RPCURLs[key]; ok && url != "" {
			n.RPCURL = url
		}
		if contract, ok := overrides.TokenContracts[key]; ok && contract != "" {
			n.TokenContract = contract
		}
		resolved[key] = n
	}

	return &Registry{networks: resolved}
}

func (r *Registry) Lookup(key string) (Network, error) {
	n, ok := r.networks[key]
	if !ok {
		return Network{}, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, key)
	}
	return n, nil
}

func (r *Registry) Supported(key string) bool {
	_, ok := r.networks[key]
	return ok
}

// Keys returns the network keys in stable order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.networks))
	for k := range r.networks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) All() []Network {
	all := make([]Network, 0, len(r.networks))
	for _, k := range r.Keys() {
		all = append(all, r.networks[k])
	}
	return all
}

// TxURL links a transaction hash to the network's block explorer.
func (n Network) TxURL(hash string) string {
	return n.ExplorerTxURL + hash
}

// PayoutURL links a bitcoin payout transaction.
func (n Network) PayoutURL(txid string) string {
	return n.BitcoinTxURL + txid
}
