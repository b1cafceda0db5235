package sqlstore

import (
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/uplinehq/upline/config/encoding"
	"github.com/uplinehq/upline/logging"
)

const namedLogger = "sqlstore"

type ConnectionConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string

	MaxConnPoolSize int
}

func (conf ConnectionConfig) GetConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		conf.Username,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.Database)
}

func (conf ConnectionConfig) GetPoolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(conf.GetConnectionString())
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = int32(conf.MaxConnPoolSize)
	return cfg, nil
}

// Config represents the configuration of the postgres backed stores.
type Config struct {
	Level            encoding.LogLevel `long:"log-level"`
	ConnectionConfig ConnectionConfig  `group:"ConnectionConfig" namespace:"ConnectionConfig"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
		ConnectionConfig: ConnectionConfig{
			Host:            "localhost",
			Port:            5432,
			Username:        "upline",
			Password:        "upline",
			Database:        "upline",
			MaxConnPoolSize: 10,
		},
	}
}
