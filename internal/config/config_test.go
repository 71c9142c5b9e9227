package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)
	assert.Equal(t, "IDR", cfg.Invoice.DefaultCurrency)
	assert.Equal(t, 5, cfg.Invoice.RecentLimit)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
api:
  base_url: http://localhost:8080
  timeout: 3s
invoice:
  default_currency: usd
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "USD", cfg.Invoice.DefaultCurrency)
	// untouched sections keep defaults
	assert.Equal(t, 3, cfg.API.RetryMax)
	assert.Equal(t, "movo", cfg.Wallet.KeyringService)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(EnvAPIURL, "https://staging.movo.test")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://staging.movo.test", cfg.API.BaseURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [oops"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = " " }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"negative retries", func(c *Config) { c.API.RetryMax = -1 }},
		{"bad currency", func(c *Config) { c.Invoice.DefaultCurrency = "RUPIAH" }},
		{"zero recent limit", func(c *Config) { c.Invoice.RecentLimit = 0 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }},
	}

	require.NoError(t, DefaultConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Invoice.RecentLimit = 8
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.Invoice.RecentLimit)
	assert.Equal(t, cfg.Cache.ProfileTTL, loaded.Cache.ProfileTTL)
}
