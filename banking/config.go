package banking

import (
	"github.com/uplinehq/upline/config/encoding"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
)

const namedLogger = "banking"

// Config represents the configuration of the deposit pipeline.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// DepositAmount is the fixed amount every deposit must carry.
	DepositAmount string
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:         encoding.LogLevel{Level: logging.InfoLevel},
		DepositAmount: "300",
	}
}

func (c Config) depositAmount() (num.Decimal, error) {
	return num.DecimalFromString(c.DepositAmount)
}
