package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvAPIURL overrides api.base_url
const EnvAPIURL = "MOVO_API_URL"

type Config struct {
	// Backend connection
	API APIConfig `yaml:"api"`

	// Invoice form and list settings
	Invoice InvoiceConfig `yaml:"invoice"`

	// Wallet persistence
	Wallet WalletConfig `yaml:"wallet"`

	Log   LogConfig   `yaml:"log"`
	Cache CacheConfig `yaml:"cache"`
}

type APIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	RetryMax     int           `yaml:"retry_max"`
	RetryWaitMin time.Duration `yaml:"retry_wait_min"`
	RetryWaitMax time.Duration `yaml:"retry_wait_max"`
}

type InvoiceConfig struct {
	DefaultCurrency string `yaml:"default_currency"` // ISO 4217 code for new drafts
	RecentLimit     int    `yaml:"recent_limit"`     // Invoices shown on the overview tab
}

type WalletConfig struct {
	KeyringService string `yaml:"keyring_service"`
	EnvVar         string `yaml:"env_var"` // Address override for hosts without a keyring
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

type CacheConfig struct {
	ProfileTTL time.Duration `yaml:"profile_ttl"`
}

func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "movo")
}

// DefaultConfigPath returns ~/.config/movo/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:      "https://api.movo.finance",
			Timeout:      15 * time.Second,
			RetryMax:     3,
			RetryWaitMin: 500 * time.Millisecond,
			RetryWaitMax: 5 * time.Second,
		},
		Invoice: InvoiceConfig{
			DefaultCurrency: "IDR",
			RecentLimit:     5,
		},
		Wallet: WalletConfig{
			KeyringService: "movo",
			EnvVar:         "MOVO_WALLET_ADDRESS",
		},
		Log: LogConfig{
			Path:  filepath.Join(configDir(), "movo.log"),
			Level: "info",
		},
		Cache: CacheConfig{
			ProfileTTL: 5 * time.Minute,
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrapf(err, "read config %s", path)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.API.BaseURL = v
	}
	c.Invoice.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.Invoice.DefaultCurrency))
}

// Validate rejects settings the dashboard cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return errors.Newf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RetryMax < 0 {
		return errors.Newf("api.retry_max cannot be negative, got %d", c.API.RetryMax)
	}
	if len(c.Invoice.DefaultCurrency) != 3 {
		return errors.Newf("invoice.default_currency must be a 3-letter code, got %q", c.Invoice.DefaultCurrency)
	}
	if c.Invoice.RecentLimit <= 0 {
		return errors.Newf("invoice.recent_limit must be positive, got %d", c.Invoice.RecentLimit)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the log directory
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(filepath.Dir(c.Log.Path), 0755)
}
