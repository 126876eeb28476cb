package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/core/config"
)

type cachedConfig struct {
	Name    string        `env:"QRSTUDIO_TEST_NAME" envDefault:"default"`
	Timeout time.Duration `env:"QRSTUDIO_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Value string `env:"QRSTUDIO_TEST_REQUIRED,required"`
}

// Not parallel: these tests mutate the process environment and the shared cache.

func TestLoadCachesPerType(t *testing.T) {
	config.Reset()
	t.Setenv("QRSTUDIO_TEST_NAME", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Name)
	assert.Equal(t, 5*time.Second, a.Timeout)

	t.Setenv("QRSTUDIO_TEST_NAME", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Name, "second load returns the cached value")

	config.Reset()
	var c cachedConfig
	require.NoError(t, config.Load(&c))
	assert.Equal(t, "second", c.Name)
}

func TestLoadRequired(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadNil(t *testing.T) {
	var cfg *cachedConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrParsingConfig)
}
