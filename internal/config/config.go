package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const Production = "production"

type DatabaseConfig struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            string        `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER" envDefault:"postgres"`
	Password        string        `env:"PASSWORD"`
	Name            string        `env:"NAME" envDefault:"success_orchestry"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	MaxRetries      int           `env:"MAX_RETRIES" envDefault:"5"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"1h"`
}

// DSN returns the keyword/value form used by the gorm postgres driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// URL returns the postgres:// form used by golang-migrate.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

type Config struct {
	Environment  string         `env:"ENV" envDefault:"local"`
	Version      string         `env:"APP_VERSION" envDefault:"0.1.0"`
	Port         string         `env:"PORT" envDefault:"3000"`
	LogLevel     string         `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret    string         `env:"JWT_SECRET"`
	RedisAddr    string         `env:"REDIS_ADDR"`
	KafkaBroker  string         `env:"KAFKA_BROKER"`
	CORSOrigins  []string       `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	OutboxPoll   time.Duration  `env:"OUTBOX_POLL_INTERVAL" envDefault:"3s"`
	ReadTimeout  time.Duration  `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration  `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration  `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	Database     DatabaseConfig `envPrefix:"DB_"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, Production)
}

// Load reads the optional env files, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("config: load env files: %w", err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return errors.New("config: PORT must be set")
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must be set in production")
	}
	if c.Database.Host == "" || c.Database.Name == "" {
		return errors.New("config: DB_HOST and DB_NAME must be set")
	}
	if c.Database.MaxRetries < 1 {
		c.Database.MaxRetries = 1
	}
	return nil
}
