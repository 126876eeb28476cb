package router_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/router"
)

func ok(body string) handler.HandlerFunc[*router.Context] {
	return func(ctx *router.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			_, err := w.Write([]byte(body))
			return err
		}
	}
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterMethods(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/item", ok("get"))
	r.Post("/item", ok("post"))
	r.Put("/item", ok("put"))
	r.Delete("/item", ok("delete"))
	r.Method("/multi", ok("multi"), http.MethodGet, http.MethodPatch)
	r.Handle("/any", ok("any"))

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/item", "get"},
		{http.MethodPost, "/item", "post"},
		{http.MethodPut, "/item", "put"},
		{http.MethodDelete, "/item", "delete"},
		{http.MethodPatch, "/multi", "multi"},
		{http.MethodOptions, "/any", "any"},
	} {
		w := serve(r, tc.method, tc.path)
		assert.Equal(t, http.StatusOK, w.Code, tc.method+" "+tc.path)
		assert.Equal(t, tc.body, w.Body.String())
	}

	assert.Len(t, r.Routes(), 7)
}

func TestRouterParams(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/users/{id}/posts/{post}", func(ctx *router.Context) handler.Response {
		return ok(ctx.Param("id") + ":" + ctx.Param("post") + ":" + ctx.Param("missing"))(ctx)
	})

	w := serve(r, http.MethodGet, "/users/42/posts/7")
	assert.Equal(t, "42:7:", w.Body.String())
}

func TestRouterNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/only-get", ok("x"))

	w := serve(r, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, http.MethodPost, "/only-get")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouterCustomErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	r := router.New(router.WithErrorHandler[*router.Context](func(ctx *router.Context, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	}))

	boom := errors.New("boom")
	r.Get("/fail", func(*router.Context) handler.Response {
		return func(http.ResponseWriter, *http.Request) error { return boom }
	})

	w := serve(r, http.MethodGet, "/fail")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.ErrorIs(t, got, boom)

	serve(r, http.MethodGet, "/nope")
	assert.ErrorIs(t, got, router.ErrNotFound)
}

func TestRouterNilResponse(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/nil", func(*router.Context) handler.Response { return nil })

	w := serve(r, http.MethodGet, "/nil")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), router.ErrNilResponse.Error())
}

func TestRouterPanicRecovery(t *testing.T) {
	t.Parallel()

	var got error
	r := router.New(router.WithErrorHandler[*router.Context](func(ctx *router.Context, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(http.StatusInternalServerError)
	}))
	r.Get("/panic", func(*router.Context) handler.Response { panic("kaboom") })

	w := serve(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var perr router.PanicError
	require.ErrorAs(t, got, &perr)
	assert.Equal(t, "kaboom", perr.Value())
	assert.NotEmpty(t, perr.Stack())
}

type ctxKey struct{}

func TestRouterMiddlewareOrderAndValues(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	r := router.New(router.WithMiddleware(mw("option")))
	r.Get("/", func(ctx *router.Context) handler.Response {
		v, _ := ctx.Value(ctxKey{}).(string)
		return ok(v)(ctx)
	})
	// Registered after the route and still applied.
	r.Use(mw("global"), func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
		return func(ctx *router.Context) handler.Response {
			ctx.SetValue(ctxKey{}, "from-middleware")
			return next(ctx)
		}
	})

	w := serve(r, http.MethodGet, "/")
	assert.Equal(t, "from-middleware", w.Body.String())
	assert.Equal(t, []string{"option", "global"}, order)
}

func TestRouterGroup(t *testing.T) {
	t.Parallel()

	header := func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
		return func(ctx *router.Context) handler.Response {
			resp := next(ctx)
			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set("X-Group", "yes")
				return resp(w, r)
			}
		}
	}

	r := router.New[*router.Context]()
	r.Get("/public", ok("public"))
	r.Group(func(g router.Router[*router.Context]) {
		g.Get("/private", ok("private"))
	}, header)

	w := serve(r, http.MethodGet, "/private")
	assert.Equal(t, "yes", w.Header().Get("X-Group"))
	assert.Equal(t, "private", w.Body.String())

	w = serve(r, http.MethodGet, "/public")
	assert.Empty(t, w.Header().Get("X-Group"))
}

type customContext struct {
	*router.Context
	tag string
}

func TestRouterContextFactory(t *testing.T) {
	t.Parallel()

	r := router.New(router.WithContextFactory(func(w http.ResponseWriter, r *http.Request, p map[string]string) *customContext {
		return &customContext{Context: router.NewContext(w, r, p), tag: "custom"}
	}))
	r.Get("/", func(ctx *customContext) handler.Response {
		return func(w http.ResponseWriter, _ *http.Request) error {
			_, err := w.Write([]byte(ctx.tag))
			return err
		}
	})

	w := serve(r, http.MethodGet, "/")
	assert.Equal(t, "custom", w.Body.String())
}

func TestRouterPanicsOnMissingContextFactory(t *testing.T) {
	t.Parallel()

	r := router.New[*customContext]()
	r.Get("/", func(*customContext) handler.Response { return nil })

	assert.Panics(t, func() { serve(r, http.MethodGet, "/") })
}

func TestRouterRawWriteAfterError(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/partial", func(*router.Context) handler.Response {
		return func(w http.ResponseWriter, _ *http.Request) error {
			_, _ = w.Write([]byte("partial"))
			return errors.New("late failure")
		}
	})

	w := serve(r, http.MethodGet, "/partial")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "partial"))
	assert.NotContains(t, w.Body.String(), "late failure")
}
