package ledger

import (
	"github.com/uplinehq/upline/config/encoding"
	"github.com/uplinehq/upline/logging"
)

const namedLogger = "ledger"

// Config represents the configuration of the ledger applier.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
	}
}
