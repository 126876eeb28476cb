package clipboard

import (
	"context"
	"errors"
	"io"
	"sync"

	sysclip "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Writer puts text on a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) Write(ctx context.Context, text string) error { return f(ctx, text) }

// System returns a Writer for the operating system clipboard.
// On systems without a clipboard utility every write fails with ErrUnsupported.
func System() Writer {
	return WriterFunc(func(_ context.Context, text string) error {
		if sysclip.Unsupported {
			return ErrUnsupported
		}
		return sysclip.WriteAll(text)
	})
}

// OSC52 returns a Writer that emits an OSC 52 escape sequence to out,
// asking the attached terminal to set its clipboard.
func OSC52(out io.Writer) Writer {
	return WriterFunc(func(_ context.Context, text string) error {
		if out == nil {
			return ErrUnsupported
		}
		_, err := osc52.New(text).WriteTo(out)
		return err
	})
}

// Chain returns a Writer that tries each writer in order and stops at the
// first success. All errors are joined when every writer fails.
func Chain(writers ...Writer) Writer {
	return WriterFunc(func(ctx context.Context, text string) error {
		if len(writers) == 0 {
			return ErrNoWriters
		}
		var errs []error
		for _, w := range writers {
			err := w.Write(ctx, text)
			if err == nil {
				return nil
			}
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.RWMutex
	text string
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Write(_ context.Context, text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

// Backend names accepted by FromBackend.
const (
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendMemory = "memory"
	BackendAuto   = "auto"
)

// FromBackend builds a Writer by name. "auto" (and unknown names) use the
// system clipboard with an OSC 52 fallback written to out.
func FromBackend(name string, out io.Writer) Writer {
	switch name {
	case BackendSystem:
		return System()
	case BackendOSC52:
		return OSC52(out)
	case BackendMemory:
		return NewMemory()
	default:
		return Chain(System(), OSC52(out))
	}
}
