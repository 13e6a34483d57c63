// Package config loads the service configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/stripe/stripe-go/v79"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	CatalogSourceStatic   = "static"
	CatalogSourceFile     = "yaml"
	CatalogSourcePostgres = "postgres"
)

var currencyPattern = regexp.MustCompile(`^[a-z]{3}$`)

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	Catalog  Catalog  `yaml:"catalog"`
	Postgres Postgres `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
	NATS     NATS     `yaml:"nats"`
	Cart     Cart     `yaml:"cart"`
	Workers  int      `yaml:"workers"`
	Log      Log      `yaml:"log"`
}

type HTTP struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Catalog struct {
	// Source is one of static, yaml or postgres.
	Source string `yaml:"source"`
	File   string `yaml:"file"`
}

type Postgres struct {
	DSN string `yaml:"dsn"`
}

// Redis is optional; an empty Addr disables caching and the processed
// command store falls back to memory.
type Redis struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// NATS is optional; an empty URL disables commands and events.
type NATS struct {
	URL            string `yaml:"url"`
	CommandSubject string `yaml:"command_subject"`
	EventSubject   string `yaml:"event_subject"`
}

type Cart struct {
	Currency string `yaml:"currency"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		HTTP: HTTP{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: Catalog{Source: CatalogSourceStatic},
		Redis:   Redis{TTL: 30 * time.Minute},
		NATS: NATS{
			CommandSubject: "cart.commands",
			EventSubject:   "cart.events",
		},
		Cart:    Cart{Currency: string(stripe.CurrencyUSD)},
		Workers: 1,
		Log:     Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourceFile:
		if c.Catalog.File == "" {
			return fmt.Errorf("%w: catalog.file is required for source %q", ErrInvalidConfig, c.Catalog.Source)
		}
	case CatalogSourcePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("%w: postgres.dsn is required for source %q", ErrInvalidConfig, c.Catalog.Source)
		}
	default:
		return fmt.Errorf("%w: unknown catalog.source %q", ErrInvalidConfig, c.Catalog.Source)
	}

	if !currencyPattern.MatchString(c.Cart.Currency) {
		return fmt.Errorf("%w: cart.currency %q must be a lower-case ISO 4217 code", ErrInvalidConfig, c.Cart.Currency)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	return nil
}

func (c Config) Currency() stripe.Currency {
	return stripe.Currency(c.Cart.Currency)
}
