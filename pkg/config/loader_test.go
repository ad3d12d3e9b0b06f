package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/travelmail/pkg/config"
)

type testConfig struct {
	FromAddress string `env:"TEST_FROM_ADDRESS,required"`
	BCCAddress  string `env:"TEST_BCC_ADDRESS"`
	MaxAttempts int    `env:"TEST_MAX_ATTEMPTS" envDefault:"3"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment into the struct", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_FROM_ADDRESS", "noreply@example.com")
		t.Setenv("TEST_BCC_ADDRESS", "audit@example.com")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "noreply@example.com", cfg.FromAddress)
		assert.Equal(t, "audit@example.com", cfg.BCCAddress)
		assert.Equal(t, 3, cfg.MaxAttempts)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_FROM_ADDRESS", "")
		os.Unsetenv("TEST_FROM_ADDRESS")

		var cfg testConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("second load served from cache", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_FROM_ADDRESS", "first@example.com")

		var first testConfig
		require.NoError(t, config.Load(&first))

		// Environment changes after the first parse are not observed.
		t.Setenv("TEST_FROM_ADDRESS", "second@example.com")

		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first@example.com", second.FromAddress)
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_FROM_ADDRESS", "")
		os.Unsetenv("TEST_FROM_ADDRESS")

		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads values from the given files", func(t *testing.T) {
		config.ResetCache()
		path := filepath.Join(t.TempDir(), ".env.test")
		require.NoError(t, os.WriteFile(path, []byte("TEST_ENVFILE_VALUE=from-file\n"), 0644))
		t.Setenv("TEST_ENVFILE_VALUE", "placeholder") // registers cleanup

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "from-file", os.Getenv("TEST_ENVFILE_VALUE"))
	})

	t.Run("missing file fails", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
