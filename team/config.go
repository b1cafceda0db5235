package team

import (
	"github.com/uplinehq/upline/config/encoding"
	"github.com/uplinehq/upline/logging"
)

const namedLogger = "team"

// Config represents the configuration of the team service.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
	}
}
