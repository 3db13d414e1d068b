package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	LogLevel int `envconfig:"LOG_LEVEL" default:"-4"`
	Accounts AccountDefaults
}

// AccountDefaults carries the per-account-type parameters applied when the
// demo opens accounts.
type AccountDefaults struct {
	OverdraftLimit       decimal.Decimal `envconfig:"OVERDRAFT_LIMIT" default:"5000"`
	SavingsInterestRate  decimal.Decimal `envconfig:"SAVINGS_INTEREST_RATE" default:"0.001"`
	DailyWithdrawalLimit int             `envconfig:"DAILY_WITHDRAWAL_LIMIT" default:"20"`
}

func Load() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	return config, nil
}
