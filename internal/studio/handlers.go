package studio

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrstudio/core/handler"
	"github.com/dmitrymomot/qrstudio/core/logger"
	"github.com/dmitrymomot/qrstudio/core/response"
	"github.com/dmitrymomot/qrstudio/core/router"
	"github.com/dmitrymomot/qrstudio/middleware"
	"github.com/dmitrymomot/qrstudio/pkg/counter"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

//go:embed templates/*.html
var templateFS embed.FS

// NotifyEvent is the HX-Trigger event carrying a Notice to the page.
const NotifyEvent = "notify"

// maxFormSize caps form bodies; a payload beyond this cannot fit a QR symbol anyway.
const maxFormSize = 64 * middleware.KB

// ParseTemplates parses the embedded page templates.
func ParseTemplates() (*template.Template, error) {
	return template.New("studio").ParseFS(templateFS, "templates/*.html")
}

// HitRecorder records a client IP that used the studio.
type HitRecorder interface {
	Hit(ctx context.Context, ip string) error
}

// Handlers exposes a Studio over HTTP.
type Handlers struct {
	studio *Studio
	pages  *template.Template
	hits   HitRecorder
	store  counter.Store
	guard  []handler.Middleware[*router.Context]
	logger *slog.Logger
}

// HandlersOption configures Handlers.
type HandlersOption func(*Handlers)

// WithHitRecorder records the client IP of every successful download.
func WithHitRecorder(r HitRecorder) HandlersOption {
	return func(h *Handlers) { h.hits = r }
}

// WithCounterStore serves GET /counters/total/ip from store.
func WithCounterStore(store counter.Store) HandlersOption {
	return func(h *Handlers) { h.store = store }
}

// WithActionMiddleware guards the state-changing routes and the counter
// endpoint, typically with a rate limit.
func WithActionMiddleware(mw ...handler.Middleware[*router.Context]) HandlersOption {
	return func(h *Handlers) { h.guard = append(h.guard, mw...) }
}

// WithHandlersLogger sets the logger.
func WithHandlersLogger(l *slog.Logger) HandlersOption {
	return func(h *Handlers) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandlers builds handlers for s. It panics if the embedded templates do
// not parse, which can only happen with a broken build.
func NewHandlers(s *Studio, opts ...HandlersOption) *Handlers {
	pages, err := ParseTemplates()
	if err != nil {
		panic(err)
	}
	h := &Handlers{studio: s, pages: pages, logger: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts all studio routes on r.
func (h *Handlers) Register(r router.Router[*router.Context]) {
	r.Get("/", h.Page)
	r.Get("/preview", h.PreviewFragment)
	r.Get("/download", h.Download)
	r.Get("/copy/state", h.CopyState)
	r.Get("/counter", h.Counter)

	actions := append([]handler.Middleware[*router.Context]{
		middleware.BodyLimit[*router.Context](maxFormSize),
	}, h.guard...)
	r.Group(func(r router.Router[*router.Context]) {
		r.Post("/config", h.UpdateConfig)
		r.Post("/download", h.PrepareDownload)
		r.Post("/copy", h.Copy)
		r.Post("/theme", h.SetTheme)
	}, actions...)

	if h.store != nil {
		r.Group(func(r router.Router[*router.Context]) {
			r.Get(counter.Path, h.CounterTotal)
		}, h.guard...)
	}
}

// View is the read-only data handed to templates.
type View struct {
	Config  qrcode.RenderConfig
	Format  string
	Level   string
	Blank   bool
	Preview template.URL
	Theme   Theme
	Themes  []Theme
	Palette []string
	Levels  []string
	Counter string
	Copied  bool
	MinSize int
	MaxSize int
}

func (h *Handlers) view(ctx context.Context) (View, error) {
	cfg := h.studio.Config()
	preview, err := h.studio.Preview(ctx)
	if err != nil {
		return View{}, err
	}
	return View{
		Config:  cfg,
		Format:  cfg.Format.String(),
		Level:   cfg.Level.String(),
		Blank:   cfg.Blank(),
		Preview: template.URL(preview), // produced by qrcode.DataURI, never user input
		Theme:   h.studio.Theme(),
		Themes:  Themes,
		Palette: qrcode.Palette,
		Levels:  []string{"L", "M", "Q", "H"},
		Counter: h.studio.CounterDisplay(),
		Copied:  h.studio.Copied(),
		MinSize: qrcode.MinSize,
		MaxSize: qrcode.MaxSize,
	}, nil
}

func (h *Handlers) render(ctx *router.Context, name string) handler.Response {
	v, err := h.view(ctx)
	if err != nil {
		return response.Error(err)
	}
	return response.TemplateName(h.pages, name, v)
}

func notify(resp handler.Response, n Notice) handler.Response {
	if n.IsZero() {
		return resp
	}
	return response.WithHTMX(resp, response.TriggerEvent(NotifyEvent, n))
}

// rejected answers with 422 and the notice. It is written directly rather
// than returned as an error so the error handler cannot replace the notice.
func rejected(n Notice) handler.Response {
	return notify(response.StringWithStatus(n.Title, http.StatusUnprocessableEntity), n)
}

// Page serves the full studio page.
func (h *Handlers) Page(ctx *router.Context) handler.Response {
	return h.render(ctx, "page")
}

// PreviewFragment serves the preview panel.
func (h *Handlers) PreviewFragment(ctx *router.Context) handler.Response {
	return h.render(ctx, "preview")
}

// UpdateConfig applies the submitted fields and re-renders. Absent fields
// are left unchanged; an empty or malformed size restores the default.
// Requests targeting #workspace get the controls too.
func (h *Handlers) UpdateConfig(ctx *router.Context) handler.Response {
	r := ctx.Request()
	if err := r.ParseForm(); err != nil {
		return response.Error(formError(err))
	}

	form := r.PostForm
	if form.Has("payload") {
		h.studio.SetPayload(form.Get("payload"))
	}
	if form.Has("foreground") {
		h.studio.SetForeground(form.Get("foreground"))
	}
	if form.Has("background") {
		h.studio.SetBackground(form.Get("background"))
	}
	if form.Has("format") {
		h.studio.SetFormat(qrcode.ParseFormat(form.Get("format")))
	}
	if form.Has("level") {
		h.studio.SetLevel(qrcode.ParseLevel(form.Get("level")))
	}
	if form.Has("size") {
		h.studio.SetSize(parseSize(form.Get("size")))
	}

	if r.Header.Get(response.HeaderHXTarget) == "workspace" {
		return h.render(ctx, "workspace")
	}
	return h.render(ctx, "preview")
}

// PrepareDownload validates the payload for the HTMX download button. On
// success the browser is sent to GET /download, which answers with an
// attachment and so leaves the page in place.
func (h *Handlers) PrepareDownload(ctx *router.Context) handler.Response {
	n, err := h.studio.CheckDownload()
	if err != nil {
		return rejected(n)
	}
	return response.WithHTMX(response.NoContent(),
		response.TriggerEvent(NotifyEvent, n),
		response.Redirect("/download"),
	)
}

// Download serves the artifact as an attachment.
func (h *Handlers) Download(ctx *router.Context) handler.Response {
	artifact, n, err := h.studio.Download(ctx)
	switch {
	case errors.Is(err, ErrBlankPayload):
		return rejected(n)
	case errors.Is(err, qrcode.ErrNoSurface):
		return response.NoContent()
	case err != nil:
		return response.Error(err)
	}

	if h.hits != nil {
		ip := middleware.GetClientIP(ctx)
		if err := h.hits.Hit(ctx, ip); err != nil {
			h.logger.WarnContext(ctx, "counter hit not recorded",
				logger.Component("studio"), logger.ClientIP(ip), logger.Error(err))
		}
	}

	return response.Attachment(artifact.Bytes, artifact.Filename, artifact.MIMEType)
}

// Copy copies the payload to the clipboard and returns the copy button in
// its copied state.
func (h *Handlers) Copy(ctx *router.Context) handler.Response {
	n, err := h.studio.Copy(ctx)
	if errors.Is(err, ErrBlankPayload) {
		return rejected(n)
	}
	return notify(h.render(ctx, "copy_button"), n)
}

// CopyState returns the copy button reflecting the current copied flag.
func (h *Handlers) CopyState(ctx *router.Context) handler.Response {
	return h.render(ctx, "copy_button")
}

// SetTheme stores the theme and asks the page to reload.
func (h *Handlers) SetTheme(ctx *router.Context) handler.Response {
	r := ctx.Request()
	if err := r.ParseForm(); err != nil {
		return response.Error(formError(err))
	}
	h.studio.SetTheme(ParseTheme(r.PostForm.Get("theme")))
	return response.WithHTMX(response.NoContent(), response.Refresh())
}

// Counter serves the counter badge. ?refresh=1 re-reads the source first.
func (h *Handlers) Counter(ctx *router.Context) handler.Response {
	if ctx.Request().URL.Query().Get("refresh") == "1" {
		h.studio.RefreshCounter(ctx)
	}
	return h.render(ctx, "counter")
}

// CounterTotal serves the self-hosted counter: {"counter": <unique ips>}.
func (h *Handlers) CounterTotal(ctx *router.Context) handler.Response {
	n, err := h.store.Total(ctx)
	if err != nil {
		return response.Error(response.ErrServiceUnavailable.WithError(err))
	}
	return response.JSON(counter.Response{Counter: float64(n)})
}

// parseSize reads the size field. An empty or malformed value yields 0,
// which SetSize turns into the default size.
func parseSize(v string) int {
	size, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return size
}

func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return response.ErrRequestEntityTooLarge.WithError(err)
	}
	return response.ErrBadRequest.WithError(err)
}
