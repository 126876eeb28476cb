// Command qrstudio serves the QR studio: a local page for composing a QR code,
// previewing it live and saving it as PNG or SVG.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/qrstudio/core/config"
	"github.com/dmitrymomot/qrstudio/core/health"
	"github.com/dmitrymomot/qrstudio/core/logger"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/core/router"
	"github.com/dmitrymomot/qrstudio/core/server"
	"github.com/dmitrymomot/qrstudio/integration/database/redis"
	"github.com/dmitrymomot/qrstudio/internal/studio"
	"github.com/dmitrymomot/qrstudio/middleware"
	"github.com/dmitrymomot/qrstudio/pkg/clipboard"
	"github.com/dmitrymomot/qrstudio/pkg/counter"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
	"github.com/dmitrymomot/qrstudio/pkg/ratelimiter"
)

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("qrstudio stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			id, ok := middleware.GetRequestID(ctx)
			return logger.RequestID(id), ok
		}),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...)
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var (
		store  counter.Store = counter.NewMemoryStore()
		checks []health.Check
	)
	if cfg.Redis.ConnectionURL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer closeRedis(client, log)

		store = counter.NewRedisStore(client, cfg.Counter.RedisKey)
		checks = append(checks, redis.Healthcheck(client))
		log.Info("counter backed by redis", slog.String("key", cfg.Counter.RedisKey))
	}

	var source counter.Source = counter.StoreSource{Store: store, Logger: log}
	if cfg.Counter.APIURL != "" {
		source = counter.NewClient(cfg.Counter.APIURL,
			counter.WithTimeout(cfg.Counter.Timeout),
			counter.WithLogger(log),
		)
	}

	lang, err := language.Parse(cfg.Language)
	if err != nil {
		log.Warn("unknown language, using english", slog.String("language", cfg.Language))
		lang = language.English
	}

	qr := studio.New(
		studio.WithEncoder(newEncoder(cfg, log)),
		studio.WithCopier(clipboard.New(clipboard.FromBackend(cfg.Clipboard, os.Stderr))),
		studio.WithCounterSource(source),
		studio.WithLanguage(lang),
		studio.WithLogger(log),
	)

	limits := ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreLogger(log))
	limiter, err := ratelimiter.NewBucket(limits, cfg.RateLimit)
	if err != nil {
		return err
	}

	r := router.New(
		router.WithErrorHandler(response.HTMXErrorHandler[*router.Context](studio.NotifyEvent)),
		router.WithLogger[*router.Context](log),
		router.WithMiddleware(
			middleware.RequestID[*router.Context](),
			middleware.ClientIP[*router.Context](),
			middleware.LoggingWithLogger[*router.Context](log.With(logger.Component("http.request"))),
			middleware.SecurityHeaders[*router.Context](),
		),
	)
	r.Get("/health/live", health.Liveness[*router.Context])
	r.Get("/health/ready", health.Readiness[*router.Context](log, checks...))

	studio.NewHandlers(qr,
		studio.WithHitRecorder(store),
		studio.WithCounterStore(store),
		studio.WithHandlersLogger(log),
		studio.WithActionMiddleware(middleware.RateLimit[*router.Context](middleware.RateLimitConfig{
			Limiter:    limiter,
			SetHeaders: true,
		})),
	).Register(r)

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, r))
	g.Go(limits.Run(ctx))
	g.Go(func() error {
		<-qr.RefreshCounterAsync(ctx)
		return nil
	})
	return g.Wait()
}

func newEncoder(cfg appConfig, log *slog.Logger) qrcode.Encoder {
	var enc qrcode.Encoder
	switch cfg.Encoder {
	case encoderBarcode:
		enc = qrcode.NewBarcodeEncoder()
	case encoderSkip2, "":
		enc = qrcode.NewSkip2Encoder()
	default:
		log.Warn("unknown encoder, using skip2", slog.String("encoder", cfg.Encoder))
		enc = qrcode.NewSkip2Encoder()
	}
	if cfg.CacheSize > 0 {
		enc = qrcode.NewCachedEncoder(enc, cfg.CacheSize)
	}
	return enc
}

func closeRedis(client goredis.UniversalClient, log *slog.Logger) {
	if err := client.Close(); err != nil {
		log.Error("failed to close redis client", logger.Error(err))
	}
}
