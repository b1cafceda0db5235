package rates

import (
	"github.com/uplinehq/upline/config/encoding"
	"github.com/uplinehq/upline/libs/num"
	"github.com/uplinehq/upline/logging"
	"github.com/uplinehq/upline/types"
)

const namedLogger = "rates"

// Config represents the configuration of the rate table engine.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`

	// DefaultTable is the commission schedule used until an administrator
	// updates it. Entries are fractions of the deposit amount per level.
	DefaultTable []string
}

// NewDefaultConfig creates an instance of the package specific configuration.
// The default schedule pays seven levels: 20/8/8/6/5/5/5 percent.
func NewDefaultConfig() Config {
	return Config{
		Level:        encoding.LogLevel{Level: logging.InfoLevel},
		DefaultTable: []string{"0.2", "0.08", "0.08", "0.06", "0.05", "0.05", "0.05"},
	}
}

// Table parses the configured default schedule.
func (c Config) Table() (types.RateTable, error) {
	table := make(types.RateTable, 0, len(c.DefaultTable))
	for _, s := range c.DefaultTable {
		rate, err := num.DecimalFromString(s)
		if err != nil {
			return nil, err
		}
		table = append(table, rate)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
