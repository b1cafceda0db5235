// Package config ties together the configuration of every engine and store
// and handles loading and saving it as a TOML file.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/uplinehq/upline/banking"
	"github.com/uplinehq/upline/ledger"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/payout"
	"github.com/uplinehq/upline/rates"
	"github.com/uplinehq/upline/referral"
	"github.com/uplinehq/upline/sqlstore"
	"github.com/uplinehq/upline/team"
)

const configFileName = "config.toml"

// Config ties together all other application configuration types.
type Config struct {
	Logging  logging.Config  `group:"Logging" namespace:"logging"`
	Referral referral.Config `group:"Referral" namespace:"referral"`
	Rates    rates.Config    `group:"Rates" namespace:"rates"`
	Payout   payout.Config   `group:"Payout" namespace:"payout"`
	Ledger   ledger.Config   `group:"Ledger" namespace:"ledger"`
	Banking  banking.Config  `group:"Banking" namespace:"banking"`
	Team     team.Config     `group:"Team" namespace:"team"`
	SQLStore sqlstore.Config `group:"SQLStore" namespace:"sqlstore"`
}

// NewDefaultConfig returns the default configuration of every package, as
// specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Logging:  logging.NewDefaultConfig(),
		Referral: referral.NewDefaultConfig(),
		Rates:    rates.NewDefaultConfig(),
		Payout:   payout.NewDefaultConfig(),
		Ledger:   ledger.NewDefaultConfig(),
		Banking:  banking.NewDefaultConfig(),
		Team:     team.NewDefaultConfig(),
		SQLStore: sqlstore.NewDefaultConfig(),
	}
}

// Read loads the configuration from rootPath, missing fields keep their
// defaults.
func Read(rootPath string) (*Config, error) {
	path := filepath.Join(rootPath, configFileName)
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write saves the configuration under rootPath, overwriting any previous
// file.
func Write(rootPath string, cfg Config) error {
	if err := os.MkdirAll(rootPath, 0o700); err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(rootPath, configFileName), buf.Bytes(), 0o600)
}
