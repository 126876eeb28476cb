package studio

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/qrstudio/core/logger"
	"github.com/dmitrymomot/qrstudio/pkg/clipboard"
	"github.com/dmitrymomot/qrstudio/pkg/counter"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

// Studio holds the session state of the single local user.
// Safe for concurrent use.
type Studio struct {
	encoder  qrcode.Encoder
	renderer *qrcode.Renderer
	exporter *qrcode.Exporter
	previews *qrcode.Exporter
	copier   *clipboard.Copier
	source   counter.Source
	logger   *slog.Logger
	printer  *message.Printer

	mu      sync.RWMutex
	cfg     qrcode.RenderConfig
	theme   Theme
	counter int64
}

// Option configures a Studio.
type Option func(*Studio)

// WithEncoder sets the QR encoder. Default: skip2 encoder.
func WithEncoder(enc qrcode.Encoder) Option {
	return func(s *Studio) {
		if enc != nil {
			s.encoder = enc
		}
	}
}

// WithExporter sets the artifact exporter.
func WithExporter(e *qrcode.Exporter) Option {
	return func(s *Studio) {
		if e != nil {
			s.exporter = e
		}
	}
}

// WithPreviewExporter sets the exporter used for live previews.
// Default: fastest PNG compression.
func WithPreviewExporter(e *qrcode.Exporter) Option {
	return func(s *Studio) {
		if e != nil {
			s.previews = e
		}
	}
}

// WithCopier sets the clipboard copier. Default: in-memory clipboard.
func WithCopier(c *clipboard.Copier) Option {
	return func(s *Studio) {
		if c != nil {
			s.copier = c
		}
	}
}

// WithCounterSource sets where the usage counter is read from.
func WithCounterSource(src counter.Source) Option {
	return func(s *Studio) {
		if src != nil {
			s.source = src
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Studio) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLanguage sets the locale used for number formatting.
func WithLanguage(tag language.Tag) Option {
	return func(s *Studio) {
		s.printer = message.NewPrinter(tag)
	}
}

// WithConfig sets the initial render configuration.
func WithConfig(cfg qrcode.RenderConfig) Option {
	return func(s *Studio) {
		s.cfg = cfg
	}
}

// New creates a Studio with the default render configuration, the system
// theme and a zero counter.
func New(opts ...Option) *Studio {
	s := &Studio{
		encoder:  qrcode.NewSkip2Encoder(),
		renderer: qrcode.NewRenderer(),
		exporter: qrcode.NewExporter(),
		previews: qrcode.NewExporter(qrcode.WithPNGCompression(png.BestSpeed)),
		copier:   clipboard.New(clipboard.NewMemory()),
		source:   counter.StoreSource{},
		logger:   logger.Discard(),
		printer:  message.NewPrinter(language.English),
		cfg:      qrcode.DefaultConfig(),
		theme:    ThemeSystem,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns a copy of the current render configuration.
func (s *Studio) Config() qrcode.RenderConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Studio) update(fn func(cfg *qrcode.RenderConfig)) {
	s.mu.Lock()
	fn(&s.cfg)
	s.mu.Unlock()
}

func (s *Studio) SetPayload(payload string) {
	s.update(func(cfg *qrcode.RenderConfig) { cfg.SetPayload(payload) })
}

// SetForeground stores the color normalized to #RRGGBB, or verbatim when it
// does not parse; the renderer falls back to the default for such values.
func (s *Studio) SetForeground(color string) {
	s.update(func(cfg *qrcode.RenderConfig) { cfg.SetForeground(qrcode.NormalizeColor(color, color)) })
}

func (s *Studio) SetBackground(color string) {
	s.update(func(cfg *qrcode.RenderConfig) { cfg.SetBackground(qrcode.NormalizeColor(color, color)) })
}

// SetColors sets both colors at once.
func (s *Studio) SetColors(foreground, background string) {
	s.update(func(cfg *qrcode.RenderConfig) {
		cfg.SetForeground(qrcode.NormalizeColor(foreground, foreground))
		cfg.SetBackground(qrcode.NormalizeColor(background, background))
	})
}

func (s *Studio) SetFormat(format qrcode.Format) {
	s.update(func(cfg *qrcode.RenderConfig) { cfg.SetFormat(format) })
}

func (s *Studio) SetLevel(level qrcode.Level) {
	s.update(func(cfg *qrcode.RenderConfig) { cfg.SetLevel(level) })
}

func (s *Studio) SetSize(size int) {
	s.update(func(cfg *qrcode.RenderConfig) { cfg.SetSize(size) })
}

// Theme returns the current theme.
func (s *Studio) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Studio) SetTheme(theme Theme) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
}

// render encodes and renders cfg. An empty payload renders the placeholder symbol.
func (s *Studio) render(cfg qrcode.RenderConfig) (qrcode.Surface, error) {
	grid, err := qrcode.EncodeConfig(s.encoder, cfg)
	if err != nil {
		return nil, err
	}
	return s.renderer.Render(grid, cfg), nil
}

// Preview renders the current configuration and returns it as a data URI
// suitable for an <img> element. It works for blank payloads too.
func (s *Studio) Preview(ctx context.Context) (string, error) {
	cfg := s.Config()
	surface, err := s.render(cfg)
	if err != nil {
		s.logger.ErrorContext(ctx, "preview render failed",
			logger.Component("studio"), logger.PayloadLen(cfg.Payload), logger.Error(err))
		return "", err
	}
	artifact, err := s.previews.Export(surface, cfg.Format)
	if err != nil {
		return "", err
	}
	return qrcode.DataURI(artifact), nil
}

// Download exports the current configuration.
// A blank payload yields ErrBlankPayload with a warning notice and no artifact.
// qrcode.ErrNoSurface is passed through for the caller to ignore.
func (s *Studio) Download(ctx context.Context) (*qrcode.Artifact, Notice, error) {
	cfg := s.Config()
	if cfg.Blank() {
		return nil, noticeEmptyDownload, ErrBlankPayload
	}

	surface, err := s.render(cfg)
	if err != nil {
		return nil, Notice{}, err
	}
	artifact, err := s.exporter.Export(surface, cfg.Format)
	if err != nil {
		return nil, Notice{}, err
	}

	s.logger.InfoContext(ctx, "qr code exported",
		logger.Component("studio"),
		logger.Action("download"),
		logger.Format(cfg.Format.String()),
		logger.Filename(artifact.Filename),
	)
	return artifact, downloadedNotice(cfg.Format.String()), nil
}

// CheckDownload reports whether Download would produce an artifact, without
// rendering. It returns the notice Download would show for a blank payload.
func (s *Studio) CheckDownload() (Notice, error) {
	if s.Config().Blank() {
		return noticeEmptyDownload, ErrBlankPayload
	}
	return downloadedNotice(s.Config().Format.String()), nil
}

// Copy puts the payload on the clipboard verbatim.
func (s *Studio) Copy(ctx context.Context) (Notice, error) {
	text := s.Config().Payload

	err := s.copier.Copy(ctx, text)
	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "payload copied", logger.Component("studio"), logger.Action("copy"))
		return noticeCopied, nil
	case errors.Is(err, clipboard.ErrBlankText):
		return noticeEmptyCopy, ErrBlankPayload
	default:
		s.logger.WarnContext(ctx, "clipboard write failed",
			logger.Component("studio"), logger.Action("copy"), logger.Error(err))
		return noticeCopyFailed, fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
}

// Copied reports whether a copy succeeded within the copied window.
func (s *Studio) Copied() bool {
	return s.copier.Copied()
}

// Counter returns the last fetched counter value.
func (s *Studio) Counter() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counter
}

// CounterDisplay returns the counter in compact notation.
func (s *Studio) CounterDisplay() string {
	return formatCompact(s.printer, s.Counter())
}

// RefreshCounter reads the counter source and stores the result.
// Failures surface as 0.
func (s *Studio) RefreshCounter(ctx context.Context) int64 {
	n := s.source.Total(ctx)
	s.mu.Lock()
	s.counter = n
	s.mu.Unlock()
	s.logger.DebugContext(ctx, "counter refreshed", logger.Component("studio"), logger.Count("counter", n))
	return n
}

// RefreshCounterAsync refreshes the counter in the background. The returned
// channel is closed when the refresh completes.
func (s *Studio) RefreshCounterAsync(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.RefreshCounter(ctx)
	}()
	return done
}
