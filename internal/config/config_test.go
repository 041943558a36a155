package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"president-server/internal/util"
	"president-server/pkg/playable/president"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("PRESIDENT_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("PRESIDENT_GAME_ROUND_LIMIT", "7")()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(StoreSQLite, cfg.Store.Driver)
	a.Equal("/tmp/president-test.db", cfg.Store.SQLitePath)
	a.Equal("./sql", cfg.Store.MigrationsPath, "defaults fill what the file leaves out")
	a.Equal(7, cfg.Game.RoundLimit, "environment wins over the file")
	a.Equal(250, cfg.Game.DealerDelayMS)
	a.Equal(5*time.Minute, cfg.Room.IdleTimeout())

	// ensure that it's only loaded once
	defer util.SetEnv("PRESIDENT_GAME_ROUND_LIMIT", "9")()
	// ensure we aren't using a pointer
	cfg.Game.RoundLimit = 100
	cfg = Instance()
	a.Equal(7, cfg.Game.RoundLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	defer util.SetEnv("PRESIDENT_CONFIG_FILE", "testdata/does-not-exist.yaml")()

	assert.NoError(t, Load())
	cfg := Instance()
	expected := DefaultConfig()
	expected.loaded = true
	assert.Equal(t, expected, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	defer util.SetEnv("PRESIDENT_CONFIG_FILE", "testdata/bad_driver.yaml")()
	err := Load()
	assert.True(t, errors.Is(err, ErrUnknownStoreDriver))

	defer util.SetEnv("PRESIDENT_CONFIG_FILE", "testdata/does-not-exist.yaml")()
	defer util.SetEnv("PRESIDENT_GAME_ROUND_LIMIT", "0")()
	assert.Equal(t, president.ErrInvalidRoundLimit, Load())

	defer util.SetEnv("PRESIDENT_GAME_ROUND_LIMIT", "3")()
	defer util.SetEnv("PRESIDENT_ROOM_IDLE_MINUTES", "-1")()
	assert.Equal(t, ErrNegativeIdleMinutes, Load())
}

func TestGameConfig_Options(t *testing.T) {
	opts := GameConfig{RoundLimit: 3, DealerDelayMS: 1500, StrictInvariants: true}.Options()
	assert.Equal(t, 3, opts.RoundLimit)
	assert.Equal(t, 1500*time.Millisecond, opts.DealerDelay)
	assert.True(t, opts.StrictInvariants)
	assert.NotNil(t, opts.Generator)
}
