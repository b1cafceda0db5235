package payout

import (
	"github.com/uplinehq/upline/config/encoding"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
)

const namedLogger = "payout"

// Config represents the configuration of the payout calculator.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// CharityRate and StartupRate are independent percentages of the deposit
	// amount allocated to the charity fund and the startup pool. They are not
	// deducted from the level payouts; whether their combined total with the
	// rate table stays under 100% is a business policy concern, not enforced
	// here.
	CharityRate string
	StartupRate string

	// PlatformAccount is the member id receiving the payouts of levels the
	// depositor's chain cannot reach. Empty means no platform account.
	PlatformAccount string
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:       encoding.LogLevel{Level: logging.InfoLevel},
		CharityRate: "0.03",
		StartupRate: "0.02",
	}
}

func (c Config) charityRate() (num.Decimal, error) {
	return num.DecimalFromString(c.CharityRate)
}

func (c Config) startupRate() (num.Decimal, error) {
	return num.DecimalFromString(c.StartupRate)
}
