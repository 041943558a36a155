package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"president-server/internal/util"
	"president-server/pkg/playable/president"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// ErrUnknownStoreDriver is returned when store.driver is not a known driver
var ErrUnknownStoreDriver = errors.New("unknown store driver")

// ErrNegativeIdleMinutes is returned when room.idleMinutes is below zero
var ErrNegativeIdleMinutes = errors.New("room.idleMinutes cannot be negative")

// LogConfig configures logging
type LogConfig struct {
	Level             string `yaml:"level"`
	Format            string `yaml:"format"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// StoreConfig configures where finished games are recorded
type StoreConfig struct {
	Driver         string `yaml:"driver"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	SQLitePath     string `yaml:"sqlitePath" envconfig:"sqlite_path"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
}

// GameConfig holds the defaults for new games
type GameConfig struct {
	RoundLimit       int  `yaml:"roundLimit" envconfig:"round_limit"`
	DealerDelayMS    int  `yaml:"dealerDelayMs" envconfig:"dealer_delay_ms"`
	StrictInvariants bool `yaml:"strictInvariants" envconfig:"strict_invariants"`
}

// RoomConfig configures how long rooms are kept around
type RoomConfig struct {
	// IdleMinutes closes rooms without clients or actions for that long, zero keeps them open
	IdleMinutes int `yaml:"idleMinutes" envconfig:"idle_minutes"`
}

// IdleTimeout returns IdleMinutes as a duration
func (r RoomConfig) IdleTimeout() time.Duration {
	return time.Duration(r.IdleMinutes) * time.Minute
}

// Config provides configuration for the President server
type Config struct {
	loaded bool
	Addr   string      `yaml:"addr"`
	Log    LogConfig   `yaml:"log"`
	Store  StoreConfig `yaml:"store"`
	Game   GameConfig  `yaml:"game"`
	Room   RoomConfig  `yaml:"room"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Addr: ":5000",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Store: StoreConfig{
			Driver:         StoreMemory,
			PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
			SQLitePath:     "president.db",
			MigrationsPath: "./sql",
		},
		Game: GameConfig{
			RoundLimit:    5,
			DealerDelayMS: 1500,
		},
		Room: RoomConfig{
			IdleMinutes: 30,
		},
	}
}

// Options returns the game options for this configuration
func (g GameConfig) Options() president.Options {
	opts := president.DefaultOptions()
	opts.RoundLimit = g.RoundLimit
	opts.DealerDelay = time.Duration(g.DealerDelayMS) * time.Millisecond
	opts.StrictInvariants = g.StrictInvariants

	return opts
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and environment are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PRESIDENT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("president", &cfg); err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreMemory, StorePostgres, StoreSQLite:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStoreDriver, c.Store.Driver)
	}

	if c.Game.RoundLimit < 1 {
		return president.ErrInvalidRoundLimit
	}

	if c.Room.IdleMinutes < 0 {
		return ErrNegativeIdleMinutes
	}

	return nil
}
