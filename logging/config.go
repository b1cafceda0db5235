package logging

// Config contains the configurable items for this package.
type Config struct {
	Environment string
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Environment: "dev",
	}
}

// NewLogger builds the root logger for the configured environment. Anything
// other than "dev" gets the production JSON encoder.
func NewLogger(cfg Config) *Logger {
	if cfg.Environment == "dev" {
		return NewDevLogger()
	}
	return NewProdLogger()
}
