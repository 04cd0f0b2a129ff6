package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Raffle   RaffleConfig
	VRF      VRFConfig
	Keeper   KeeperConfig
	Admin    AdminConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration. OracleSecret signs the
// coordinator's callback tokens and must differ from Secret.
type JWTConfig struct {
	Secret       string
	OracleSecret string
	ExpiresIn    int // seconds
}

// RaffleConfig holds the raffle's immutable parameters
type RaffleConfig struct {
	Network           string
	EntryFee          string // wei, or "<n> ether"
	Interval          time.Duration
	RequestTimeout    time.Duration
	DeadlockDetection bool
}

// VRFConfig holds the randomness coordinator settings
type VRFConfig struct {
	Coordinator          string
	GasLane              string
	SubscriptionID       uint64
	CallbackGasLimit     uint32
	RequestConfirmations uint16
	NumWords             uint32
	BaseURL              string
	APIKey               string
	CallbackURL          string
	Consumer             string
	MockAPI              bool
	MockFulfillDelay     time.Duration
}

// KeeperConfig controls the in-process upkeep poller
type KeeperConfig struct {
	Enabled      bool
	PollInterval time.Duration
}

// AdminConfig is the bootstrap administrator created on first start
type AdminConfig struct {
	Email    string
	Password string
}

type networkPreset struct {
	entryFee         string
	coordinator      string
	gasLane          string
	subscriptionID   uint64
	callbackGasLimit uint32
	mockAPI          bool
}

var networks = map[string]networkPreset{
	"goerli": {
		entryFee:         "0.01 ether",
		coordinator:      "0x2Ca8E0C643bDe4C2E08ab1fA0da3401AdAD7734D",
		gasLane:          "0x79d3d8832d904592c0bf9818b621522c988bb8b0c05cdc3b15aea1b6e8db0c15",
		subscriptionID:   3423,
		callbackGasLimit: 500000,
	},
	"hardhat": {
		entryFee:         "0.01 ether",
		gasLane:          "0x79d3d8832d904592c0bf9818b621522c988bb8b0c05cdc3b15aea1b6e8db0c15",
		callbackGasLimit: 200000,
		mockAPI:          true,
	},
}

// Load reads config.yaml from the given directories (default "." and
// "./config") and overlays environment variables, e.g. RAFFLE_ENTRYFEE.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if network := strings.ToLower(v.GetString("Raffle.Network")); network != "" {
		preset, ok := networks[network]
		if !ok {
			return nil, fmt.Errorf("unknown network %q", network)
		}
		applyPreset(v, preset)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "raffle")
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.OracleSecret", "")
	v.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	v.SetDefault("Raffle.Network", "")
	v.SetDefault("Raffle.EntryFee", "0.01 ether")
	v.SetDefault("Raffle.Interval", 30*time.Second)
	v.SetDefault("Raffle.RequestTimeout", 10*time.Minute)
	v.SetDefault("Raffle.DeadlockDetection", false)
	v.SetDefault("VRF.Coordinator", "")
	v.SetDefault("VRF.GasLane", "")
	v.SetDefault("VRF.SubscriptionID", 0)
	v.SetDefault("VRF.CallbackGasLimit", 500000)
	v.SetDefault("VRF.RequestConfirmations", 3)
	v.SetDefault("VRF.NumWords", 1)
	v.SetDefault("VRF.BaseURL", "")
	v.SetDefault("VRF.APIKey", "")
	v.SetDefault("VRF.CallbackURL", "")
	v.SetDefault("VRF.Consumer", "")
	v.SetDefault("VRF.MockAPI", true)
	v.SetDefault("VRF.MockFulfillDelay", 2*time.Second)
	v.SetDefault("Keeper.Enabled", true)
	v.SetDefault("Keeper.PollInterval", 10*time.Second)
	v.SetDefault("Admin.Email", "")
	v.SetDefault("Admin.Password", "")
	v.SetDefault("LogLevel", "info")
}

// applyPreset replaces the defaults of a known network; explicit values still win
func applyPreset(v *viper.Viper, p networkPreset) {
	v.SetDefault("Raffle.EntryFee", p.entryFee)
	v.SetDefault("VRF.Coordinator", p.coordinator)
	v.SetDefault("VRF.GasLane", p.gasLane)
	v.SetDefault("VRF.SubscriptionID", p.subscriptionID)
	v.SetDefault("VRF.CallbackGasLimit", p.callbackGasLimit)
	v.SetDefault("VRF.MockAPI", p.mockAPI)
}

func (c *Config) validate() error {
	if c.Raffle.Interval < 0 {
		return errors.New("Raffle.Interval must not be negative")
	}
	if c.VRF.Coordinator != "" && !common.IsHexAddress(c.VRF.Coordinator) {
		return fmt.Errorf("VRF.Coordinator %q is not an address", c.VRF.Coordinator)
	}
	if c.VRF.Consumer != "" && !common.IsHexAddress(c.VRF.Consumer) {
		return fmt.Errorf("VRF.Consumer %q is not an address", c.VRF.Consumer)
	}
	if c.VRF.GasLane != "" {
		if raw := strings.TrimPrefix(c.VRF.GasLane, "0x"); len(raw) != 64 {
			return fmt.Errorf("VRF.GasLane %q is not a 32-byte hash", c.VRF.GasLane)
		}
	}
	if !c.VRF.MockAPI && c.VRF.BaseURL == "" {
		return errors.New("VRF.BaseURL is required when VRF.MockAPI is false")
	}
	if c.JWT.Secret != "" && c.JWT.Secret == c.JWT.OracleSecret {
		return errors.New("JWT.OracleSecret must differ from JWT.Secret")
	}
	return nil
}

// OracleConfig returns the coordinator parameters passed on every request
func (c *Config) OracleConfig() models.OracleConfig {
	return models.OracleConfig{
		Coordinator:          common.HexToAddress(c.VRF.Coordinator),
		GasLane:              common.HexToHash(c.VRF.GasLane),
		SubscriptionID:       c.VRF.SubscriptionID,
		CallbackGasLimit:     c.VRF.CallbackGasLimit,
		RequestConfirmations: c.VRF.RequestConfirmations,
		NumWords:             c.VRF.NumWords,
	}
}

// TokenTTL is JWT.ExpiresIn as a duration
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpiresIn) * time.Second
}
