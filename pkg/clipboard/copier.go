package clipboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultCopiedWindow is how long Copied reports true after a successful copy.
const DefaultCopiedWindow = 2 * time.Second

// Copier writes text to a clipboard and remembers the last successful copy.
// Safe for concurrent use.
type Copier struct {
	writer Writer
	window time.Duration
	now    func() time.Time

	mu          sync.RWMutex
	copiedUntil time.Time
}

// Option configures a Copier.
type Option func(*Copier)

// WithWindow sets how long the copied flag stays raised.
func WithWindow(d time.Duration) Option {
	return func(c *Copier) {
		if d > 0 {
			c.window = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Copier) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Copier writing through w.
func New(w Writer, opts ...Option) *Copier {
	c := &Copier{
		writer: w,
		window: DefaultCopiedWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy writes text verbatim. Blank (empty or whitespace-only) text is refused
// with ErrBlankText without touching the clipboard. On success the copied
// flag is raised for the configured window; failures leave it unchanged.
func (c *Copier) Copy(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankText
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.writer == nil {
		return ErrNoWriters
	}
	if err := c.writer.Write(ctx, text); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	c.mu.Lock()
	c.copiedUntil = c.now().Add(c.window)
	c.mu.Unlock()
	return nil
}

// Copied reports whether a copy succeeded within the last window.
func (c *Copier) Copied() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now().Before(c.copiedUntil)
}

// Window returns the configured copied window.
func (c *Copier) Window() time.Duration {
	return c.window
}
