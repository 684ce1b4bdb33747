// Package config define la configuración del binario (flags + env, vía go-flags).
package config

import (
	"fmt"
	"time"

	"pet-records/internal/platform/logger"
)

// StoreConfig elige el backend documental.
type StoreConfig struct {
	Driver  string        `long:"driver" env:"STORE_DRIVER" default:"memory" choice:"memory" choice:"postgres" choice:"sqlite" description:"Document store backend"`
	DSN     string        `long:"dsn" env:"DB_DSN" description:"Postgres DSN (driver=postgres)"`
	Path    string        `long:"path" env:"STORE_PATH" default:"pet-records.db" description:"SQLite file (driver=sqlite)"`
	Timeout time.Duration `long:"timeout" env:"STORE_TIMEOUT" default:"5s" description:"Per-operation store timeout (0 disables)"`
}

// Validate revisa combinaciones que go-flags no puede expresar.
func (c StoreConfig) Validate() error {
	if c.Driver == "postgres" && c.DSN == "" {
		return fmt.Errorf("store.dsn (DB_DSN) is required with driver postgres")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("store.timeout must not be negative")
	}
	return nil
}

// Config es la configuración de nivel superior.
type Config struct {
	Port            string        `long:"port" env:"PORT" default:"8080" description:"HTTP listen port"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"Graceful shutdown deadline"`
	SeedFile        string        `long:"seed" env:"SEED_FILE" description:"YAML file with cats/dogs to create at startup"`

	Store StoreConfig      `group:"Store" namespace:"store"`
	Log   logger.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
}

// Addr es la dirección de escucha (":" + Port).
func (c Config) Addr() string {
	return ":" + c.Port
}
