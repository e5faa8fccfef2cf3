// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Veraticus/spice-bridge/internal/common"
	"github.com/Veraticus/spice-bridge/internal/plaid"
)

// Config is the full service configuration, resolved once at startup.
type Config struct {
	Plaid      plaid.Config
	ListenAddr string
	WindowDays int
}

// Defaults applied when neither config file nor environment sets a value.
const (
	DefaultListenAddr = ":8000"
	DefaultWindowDays = 30
	DefaultClientName = "Spice Bridge"
)

// Load resolves configuration with this precedence:
// 1. Viper configuration (from config file or SPICE_BRIDGE_ env vars)
// 2. Direct environment variables (PLAID_*)
// 3. Default values
//
// A .env file in the working directory is honored if present. Missing
// Plaid credentials are a fatal configuration error here, never a
// per-request one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Plaid: plaid.Config{
			ClientID:    viper.GetString("plaid.client_id"),
			Secret:      viper.GetString("plaid.secret"),
			Environment: viper.GetString("plaid.environment"),
			ClientName:  viper.GetString("plaid.client_name"),
		},
		ListenAddr: viper.GetString("server.listen_addr"),
		WindowDays: viper.GetInt("server.window_days"),
	}

	// Direct environment variables as fallback
	if cfg.Plaid.ClientID == "" {
		cfg.Plaid.ClientID = os.Getenv("PLAID_CLIENT_ID")
	}
	if cfg.Plaid.Secret == "" {
		cfg.Plaid.Secret = os.Getenv("PLAID_SECRET")
	}
	if cfg.Plaid.Environment == "" {
		cfg.Plaid.Environment = os.Getenv("PLAID_ENV")
	}

	// Defaults
	if cfg.Plaid.Environment == "" {
		cfg.Plaid.Environment = plaid.EnvSandbox
	}
	if cfg.Plaid.ClientName == "" {
		cfg.Plaid.ClientName = DefaultClientName
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.WindowDays == 0 {
		cfg.WindowDays = DefaultWindowDays
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures the configuration is usable before the server starts.
func (c *Config) Validate() error {
	if c.Plaid.ClientID == "" {
		return fmt.Errorf("%w: plaid client ID (set plaid.client_id or PLAID_CLIENT_ID)", common.ErrMissingConfig)
	}
	if c.Plaid.Secret == "" {
		return fmt.Errorf("%w: plaid secret (set plaid.secret or PLAID_SECRET)", common.ErrMissingConfig)
	}
	if err := c.Plaid.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	if c.WindowDays < 0 {
		return fmt.Errorf("%w: window days must be positive", common.ErrInvalidConfig)
	}
	return nil
}
