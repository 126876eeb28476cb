package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/pkg/ratelimiter"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	Skip    func(ctx handler.Context) bool
	Limiter ratelimiter.RateLimiter
	// KeyExtractor defaults to the client IP.
	KeyExtractor func(ctx handler.Context) string
	// SetHeaders adds X-RateLimit-* and Retry-After headers.
	SetHeaders bool
}

// RateLimit refuses requests over the limiter's budget with 429.
// Panics if no limiter is provided.
func RateLimit[C handler.Context](cfg RateLimitConfig) handler.Middleware[C] {
	if cfg.Limiter == nil {
		panic("ratelimit middleware: limiter is required")
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = GetClientIP
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			result, err := cfg.Limiter.Allow(ctx, cfg.KeyExtractor(ctx))
			if err != nil {
				return response.Error(response.ErrInternalServerError.WithError(err))
			}

			var resp handler.Response
			if result.Allowed() {
				resp = next(ctx)
			} else {
				resp = response.Error(response.ErrTooManyRequests.
					WithMessage("Too many requests, slow down.").
					WithDetails(map[string]any{"retry_after": retryAfterSeconds(result)}))
			}
			if !cfg.SetHeaders || resp == nil {
				return resp
			}
			return withRateLimitHeaders(resp, result)
		}
	}
}

func withRateLimitHeaders(resp handler.Response, result *ratelimiter.Result) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
		if secs := retryAfterSeconds(result); secs > 0 {
			h.Set("Retry-After", strconv.Itoa(secs))
		}
		return resp(w, r)
	}
}

// retryAfterSeconds rounds the wait up to whole seconds.
func retryAfterSeconds(result *ratelimiter.Result) int {
	retry := result.RetryAfter()
	if retry <= 0 {
		return 0
	}
	return int((retry + time.Second - 1) / time.Second)
}
