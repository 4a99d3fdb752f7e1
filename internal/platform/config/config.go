package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type StoreKind string

const (
	StoreFile     StoreKind = "file"
	StoreMemory   StoreKind = "memory"
	StorePostgres StoreKind = "postgres"
)

type Config struct {
	Port     string    `env:"PORT" envDefault:"3000"`
	DataFile string    `env:"PERSONAJES_DATA_FILE" envDefault:"./data/personajes.json"`
	Store    StoreKind `env:"PERSONAJES_STORE" envDefault:"file"`
	DBDSN    string    `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"personajes-api"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

// Load lee la configuración del entorno y valida combinaciones.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StoreFile:
		if strings.TrimSpace(c.DataFile) == "" {
			return fmt.Errorf("PERSONAJES_DATA_FILE is required for store %q", c.Store)
		}
	case StoreMemory:
	case StorePostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("DB_DSN is required for store %q", c.Store)
		}
	default:
		return fmt.Errorf("unknown PERSONAJES_STORE %q", c.Store)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
