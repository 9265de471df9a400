package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store identifica el backend de persistencia del bridge clave-valor.
type Store string

const (
	StoreFile     Store = "file"
	StoreSQLite   Store = "sqlite"
	StorePostgres Store = "postgres"
	StoreMemory   Store = "memory"
)

// Config agrupa toda la configuración del binario, cargada desde env.
// main hace godotenv.Load() antes, así que un .env local también sirve.
type Config struct {
	Addr    string `env:"ADDR" envDefault:":8080"`
	AppName string `env:"APP_NAME" envDefault:"pet-care-hub"`

	// Backend de persistencia: file | sqlite | postgres | memory.
	Store   Store  `env:"STORE" envDefault:"file"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`
	DBDSN   string `env:"DB_DSN"`

	// Secreto HS256 para los tokens de sesión. En dev mode no se exige.
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// DevMode habilita el header X-Debug-User-ID en lugar de tokens.
	DevMode bool `env:"DEV_MODE" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	switch cfg.Store {
	case StoreFile, StoreSQLite, StorePostgres, StoreMemory:
	default:
		return Config{}, fmt.Errorf("config: unknown STORE %q", cfg.Store)
	}

	if cfg.Store == StorePostgres && cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("config: STORE=postgres requiere DB_DSN")
	}
	if !cfg.DevMode && cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("config: SESSION_SECRET requerido fuera de dev mode")
	}

	return cfg, nil
}
