package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"sync"

	gmux "github.com/gorilla/mux"

	"github.com/dmitrymomot/qrstudio/core/handler"
)

// shared is the state common to a router and its groups.
type shared[C handler.Context] struct {
	router       *gmux.Router
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger

	mu          sync.RWMutex
	middlewares []handler.Middleware[C]
	routes      []Route
}

type mux[C handler.Context] struct {
	*shared[C]
	// scoped holds group middleware; nil on the root router.
	scoped []handler.Middleware[C]
	group  bool
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{shared: &shared[C]{
		router:       gmux.NewRouter(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.fail(w, r, ErrNotFound)
	})
	m.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.fail(w, r, ErrMethodNotAllowed)
	})

	return m
}

func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.router.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodGet)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodPost)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodPut)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h, http.MethodDelete)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle(pattern, h)
}

func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(ErrInvalidMethod)
	}
	m.handle(pattern, h, methods...)
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.group {
		m.scoped = append(m.scoped, middlewares...)
		return
	}
	m.mu.Lock()
	m.middlewares = append(m.middlewares, middlewares...)
	m.mu.Unlock()
}

func (m *mux[C]) Group(fn func(r Router[C]), middlewares ...handler.Middleware[C]) {
	g := &mux[C]{
		shared: m.shared,
		scoped: append(slices.Clone(m.scoped), middlewares...),
		group:  true,
	}
	fn(g)
}

func (m *mux[C]) Routes() []Route {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.routes)
}

func (m *mux[C]) handle(pattern string, fn handler.HandlerFunc[C], methods ...string) {
	if fn == nil {
		panic(ErrNilHandler)
	}
	scoped := slices.Clone(m.scoped)

	route := m.router.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, fn, scoped)
	})
	if len(methods) > 0 {
		route.Methods(methods...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(methods) == 0 {
		m.routes = append(m.routes, Route{Method: "*", Pattern: pattern})
		return
	}
	for _, method := range methods {
		m.routes = append(m.routes, Route{Method: method, Pattern: pattern})
	}
}

func (m *mux[C]) serve(w http.ResponseWriter, r *http.Request, fn handler.HandlerFunc[C], scoped []handler.Middleware[C]) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r, gmux.Vars(r))

	defer func() {
		if p := recover(); p != nil {
			perr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				m.logger.Error("panic after response written",
					slog.Any("value", perr.value),
					slog.String("stack", string(perr.stack)),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method),
					slog.Int("status", ww.Status()),
				)
				return
			}
			m.errorHandler(ctx, perr)
		}
	}()

	m.mu.RLock()
	mws := append(slices.Clone(m.middlewares), scoped...)
	m.mu.RUnlock()

	if len(mws) > 0 {
		fn = chain(mws, fn)
	}

	resp := fn(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}
	if err := resp(ww, ctx.Request()); err != nil {
		m.errorHandler(ctx, err)
	}
}

func (m *mux[C]) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := m.newContext(newResponseWriter(w), r, nil)
	m.errorHandler(ctx, err)
}

// chain wraps fn so the first middleware is the outermost.
func chain[C handler.Context](middlewares []handler.Middleware[C], fn handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		fn = middlewares[i](fn)
	}
	return fn
}
