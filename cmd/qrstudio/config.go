package main

import (
	"github.com/dmitrymomot/qrstudio/core/server"
	"github.com/dmitrymomot/qrstudio/integration/database/redis"
	"github.com/dmitrymomot/qrstudio/pkg/counter"
	"github.com/dmitrymomot/qrstudio/pkg/ratelimiter"
)

// Encoder names accepted by QR_ENCODER.
const (
	encoderSkip2   = "skip2"
	encoderBarcode = "barcode"
)

type appConfig struct {
	Name     string `env:"APP_NAME" envDefault:"qrstudio"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`
	Language string `env:"APP_LANGUAGE" envDefault:"en"`

	Encoder   string `env:"QR_ENCODER" envDefault:"skip2"`
	CacheSize int    `env:"QR_CACHE_SIZE" envDefault:"128"`
	Clipboard string `env:"CLIPBOARD_BACKEND" envDefault:"auto"`

	Server    server.Config
	Counter   counter.Config
	Redis     redis.Config
	RateLimit ratelimiter.Config
}
