package config

import (
	"fmt"
	"strings"
	"time"
)

type DatabaseConfig struct {
	BaseConfig
	Postgres PostgresConfig `envconfig:"POSTGRES"`
}

// Host, Port, User and Password carry no envconfig name so lookup stays on
// POSTGRES_HOST and friends instead of falling back to a bare HOST or USER.
type PostgresConfig struct {
	Host            string        `default:"localhost" validate:"required"`
	Port            int           `default:"5432" validate:"gte=1,lte=65535"`
	User            string        `default:"postgres"`
	Password        string        `default:""`
	Database        string        `envconfig:"DB" default:"gateguard"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25" validate:"gte=0"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
	PingTimeout     time.Duration `envconfig:"PING_TIMEOUT" default:"5s"`
	ConnectAttempts int           `envconfig:"CONNECT_ATTEMPTS" default:"5" validate:"min=1"`
	ConnectBackoff  time.Duration `envconfig:"CONNECT_BACKOFF" default:"1s"`
}

// DSN renders a lib/pq keyword/value connection string. Values are quoted so
// passwords with spaces or quotes survive.
func (c *PostgresConfig) DSN() string {
	return c.dsn(c.Password)
}

// Redacted is DSN with the password masked, for logs.
func (c *PostgresConfig) Redacted() string {
	if c.Password == "" {
		return c.dsn("")
	}
	return c.dsn("xxxxx")
}

func (c *PostgresConfig) dsn(password string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSN(c.Host), c.Port, quoteDSN(c.User), quoteDSN(password), quoteDSN(c.Database), quoteDSN(c.SSLMode))
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSN(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}
	return "'" + dsnEscaper.Replace(value) + "'"
}

func (c *PostgresConfig) GetMaxOpenConns() int {
	return c.MaxOpenConns
}

func (c *PostgresConfig) GetMaxIdleConns() int {
	return c.MaxIdleConns
}

func (c *PostgresConfig) GetConnMaxLifetime() time.Duration {
	return c.ConnMaxLifetime
}

func (c *PostgresConfig) GetConnMaxIdleTime() time.Duration {
	return c.ConnMaxIdleTime
}

func (c *PostgresConfig) GetPingTimeout() time.Duration {
	return c.PingTimeout
}

func LoadDatabase() (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
