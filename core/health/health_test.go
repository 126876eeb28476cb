package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrstudio/core/health"
	"github.com/dmitrymomot/qrstudio/core/logger"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/core/router"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	healthy := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("redis down") }

	r := router.New(router.WithErrorHandler(response.ErrorHandler[*router.Context]))
	r.Get("/live", health.Liveness[*router.Context])
	r.Get("/ready", health.Readiness[*router.Context](logger.Discard(), healthy))
	r.Get("/not-ready", health.Readiness[*router.Context](logger.Discard(), healthy, failing))

	for path, want := range map[string]struct {
		code int
		body string
	}{
		"/live":      {http.StatusOK, "ALIVE"},
		"/ready":     {http.StatusOK, "READY"},
		"/not-ready": {http.StatusServiceUnavailable, "Service Unavailable"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want.code, w.Code, path)
		assert.Equal(t, want.body, w.Body.String(), path)
	}
}
