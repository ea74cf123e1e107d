package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/networks"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey         = "API_PORT"
	dbDriverEnvKey        = "DB_DRIVER"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	jwtSecretEnvKey       = "JWT_SECRET"
	ffAPIURLEnvKey        = "FF_API_URL"
	ffAPIKeyEnvKey        = "FF_API_KEY"
	ffAPISecretEnvKey     = "FF_API_SECRET"
	useTestnetEnvKey      = "USE_TESTNET"
	keystoreDirEnvKey     = "KEYSTORE_DIR"
	keyringServiceEnvKey  = "KEYRING_SERVICE"
	telegramTokenEnvKey   = "TELEGRAM_BOT_TOKEN"
	tickIntervalEnvKey    = "TICK_INTERVAL"
	monitorIntervalEnvKey = "MONITOR_INTERVAL"
	receiptTimeoutEnvKey  = "RECEIPT_TIMEOUT"
	minAmountEnvKey       = "MIN_PLAN_AMOUNT"
	maxAmountEnvKey       = "MAX_PLAN_AMOUNT"
	maxPlansEnvKey        = "MAX_PLANS_PER_NETWORK"
	logLevelEnvKey        = "LOG_LEVEL"
	configFileEnvKey      = "CONFIG_FILE"

	rpcURLEnvPrefix        = "RPC_URL_"
	tokenContractEnvPrefix = "TOKEN_CONTRACT_"
)

var requiredKeys = []string{
	dbConnEnvKey,
	jwtSecretEnvKey,
	ffAPIKeyEnvKey,
	ffAPISecretEnvKey,
}

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	JWTSecret       string
	LogLevel        string

	Exchange Exchange

	UseTestnet      bool
	Networks        networks.Overrides
	KeystoreDir     string
	KeyringService  string
	TelegramToken   string
	TickInterval    time.Duration
	MonitorInterval time.Duration
	ReceiptTimeout  time.Duration

	MinPlanAmount      decimal.Decimal
	MaxPlanAmount      decimal.Decimal
	MaxPlansPerNetwork int
}

type Exchange struct {
	BaseURL   string
	APIKey    string
	APISecret string
}

// NewApp reads the application config from the environment and, when CONFIG_FILE
// is set, from that file. Environment values win over the file.
func NewApp() (App, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(apiPortEnvKey, "8080")
	v.SetDefault(dbDriverEnvKey, "sqlite")
	v.SetDefault(ffAPIURLEnvKey, "https://ff.io/api/v2")
	v.SetDefault(useTestnetEnvKey, false)
	v.SetDefault(keystoreDirEnvKey, "keystores")
	v.SetDefault(keyringServiceEnvKey, "AutoDCA")
	v.SetDefault(tickIntervalEnvKey, time.Minute)
	v.SetDefault(monitorIntervalEnvKey, 5*time.Minute)
	v.SetDefault(receiptTimeoutEnvKey, 120*time.Second)
	v.SetDefault(minAmountEnvKey, "10")
	v.SetDefault(maxAmountEnvKey, "500")
	v.SetDefault(maxPlansEnvKey, 3)
	v.SetDefault(logLevelEnvKey, "info")

	if file := v.GetString(configFileEnvKey); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("read config file %q: %w", file, err)
		}
	}

	for _, key := range requiredKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
	}

	minAmount, err := decimal.NewFromString(v.GetString(minAmountEnvKey))
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", minAmountEnvKey, err)
	}
	maxAmount, err := decimal.NewFromString(v.GetString(maxAmountEnvKey))
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", maxAmountEnvKey, err)
	}
	if minAmount.GreaterThan(maxAmount) {
		return App{}, fmt.Errorf("%s %s exceeds %s %s", minAmountEnvKey, minAmount, maxAmountEnvKey, maxAmount)
	}

	driver := strings.ToLower(v.GetString(dbDriverEnvKey))
	if driver != "sqlite" && driver != "postgres" {
		return App{}, fmt.Errorf("unsupported %s %q", dbDriverEnvKey, driver)
	}

	return App{
		Port:            v.GetString(apiPortEnvKey),
		DBDriver:        driver,
		DBConnectionURL: v.GetString(dbConnEnvKey),
		JWTSecret:       v.GetString(jwtSecretEnvKey),
		LogLevel:        v.GetString(logLevelEnvKey),
		Exchange: Exchange{
			BaseURL:   v.GetString(ffAPIURLEnvKey),
			APIKey:    v.GetString(ffAPIKeyEnvKey),
			APISecret: v.GetString(ffAPISecretEnvKey),
		},
		UseTestnet: v.GetBool(useTestnetEnvKey),
		Networks: networks.Overrides{
			RPCURLs:        perNetwork(v, rpcURLEnvPrefix),
			TokenContracts: perNetwork(v, tokenContractEnvPrefix),
		},
		KeystoreDir:        v.GetString(keystoreDirEnvKey),
		KeyringService:     v.GetString(keyringServiceEnvKey),
		TelegramToken:      v.GetString(telegramTokenEnvKey),
		TickInterval:       v.GetDuration(tickIntervalEnvKey),
		MonitorInterval:    v.GetDuration(monitorIntervalEnvKey),
		ReceiptTimeout:     v.GetDuration(receiptTimeoutEnvKey),
		MinPlanAmount:      minAmount,
		MaxPlanAmount:      maxAmount,
		MaxPlansPerNetwork: v.GetInt(maxPlansEnvKey),
	}, nil
}

// perNetwork collects <PREFIX><NETWORK> values keyed by network, e.g.
// RPC_URL_USDT_ARB=... becomes "USDT-ARB".
func perNetwork(v *viper.Viper, prefix string) map[string]string {
	values := make(map[string]string)
	for _, network := range []string{networks.Arbitrum, networks.BSC, networks.Polygon} {
		key := prefix + strings.ReplaceAll(network, "-", "_")
		if value := v.GetString(key); value != "" {
			values[network] = value
		}
	}
	return values
}
