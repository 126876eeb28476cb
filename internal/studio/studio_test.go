package studio_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/qrstudio/internal/studio"
	"github.com/dmitrymomot/qrstudio/pkg/clipboard"
	"github.com/dmitrymomot/qrstudio/pkg/counter"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock { return &clock{now: time.UnixMilli(1700000000000)} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// recordingEncoder remembers the last text it was asked to encode.
type recordingEncoder struct {
	mu   sync.Mutex
	last string
}

func (e *recordingEncoder) Encode(text string, level qrcode.Level) (*qrcode.Grid, error) {
	e.mu.Lock()
	e.last = text
	e.mu.Unlock()
	return qrcode.NewGrid([][]bool{
		{true, false, true},
		{false, true, false},
		{true, false, true},
	}), nil
}

func (e *recordingEncoder) Last() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

type staticSource int64

func (s staticSource) Total(context.Context) int64 { return int64(s) }

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := studio.New()
	cfg := s.Config()

	assert.Equal(t, qrcode.DefaultConfig(), cfg)
	assert.Empty(t, cfg.Payload)
	assert.Equal(t, studio.ThemeSystem, s.Theme())
	assert.Equal(t, int64(0), s.Counter())
	assert.Equal(t, "0", s.CounterDisplay())
	assert.False(t, s.Copied())
}

func TestSetters(t *testing.T) {
	t.Parallel()

	s := studio.New()
	s.SetPayload("hello")
	s.SetForeground("ff5733")
	s.SetBackground("not-a-color")
	s.SetFormat(qrcode.FormatVector)
	s.SetLevel(qrcode.LevelL)
	s.SetSize(10_000)

	cfg := s.Config()
	assert.Equal(t, "hello", cfg.Payload)
	assert.Equal(t, "#FF5733", cfg.Foreground)
	assert.Equal(t, "not-a-color", cfg.Background, "invalid colors are stored as entered")
	assert.Equal(t, qrcode.FormatVector, cfg.Format)
	assert.Equal(t, qrcode.LevelL, cfg.Level)
	assert.Equal(t, qrcode.MaxSize, cfg.Size)

	s.SetColors("#333", "#eeeeee")
	cfg = s.Config()
	assert.Equal(t, "#333333", cfg.Foreground)
	assert.Equal(t, "#EEEEEE", cfg.Background)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	t.Run("blank payload still renders", func(t *testing.T) {
		t.Parallel()

		enc := &recordingEncoder{}
		s := studio.New(studio.WithEncoder(enc))

		uri, err := s.Preview(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, `^data:image/png;base64,`, uri)
		assert.Equal(t, " ", enc.Last())
	})

	t.Run("vector", func(t *testing.T) {
		t.Parallel()

		s := studio.New(studio.WithEncoder(&recordingEncoder{}))
		s.SetPayload("x")
		s.SetFormat(qrcode.FormatVector)

		uri, err := s.Preview(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, `^data:image/svg\+xml;charset=utf-8;base64,`, uri)
	})

	t.Run("encoder failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		s := studio.New(studio.WithEncoder(qrcode.EncoderFunc(func(string, qrcode.Level) (*qrcode.Grid, error) {
			return nil, boom
		})))

		_, err := s.Preview(context.Background())
		require.ErrorIs(t, err, boom)
	})
}

func TestDownload(t *testing.T) {
	t.Parallel()

	t.Run("raster", func(t *testing.T) {
		t.Parallel()

		s := studio.New()
		s.SetPayload("https://example.com")

		artifact, notice, err := s.Download(context.Background())
		require.NoError(t, err)
		require.NotNil(t, artifact)
		assert.Equal(t, "image/png", artifact.MIMEType)
		assert.Regexp(t, regexp.MustCompile(`^qrcode-\d+\.png$`), artifact.Filename)
		assert.NotEmpty(t, artifact.Bytes)
		assert.Equal(t, "QR Code downloaded", notice.Title)
		assert.Equal(t, "Your QR code has been saved as a PNG file.", notice.Description)
		assert.Equal(t, studio.VariantSuccess, notice.Variant)
	})

	t.Run("switching format keeps the symbol", func(t *testing.T) {
		t.Parallel()

		enc := &recordingEncoder{}
		s := studio.New(studio.WithEncoder(enc))
		s.SetPayload("https://example.com")

		raster, _, err := s.Download(context.Background())
		require.NoError(t, err)
		textBefore := enc.Last()

		s.SetFormat(qrcode.FormatVector)
		vector, notice, err := s.Download(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "image/png", raster.MIMEType)
		assert.Equal(t, "image/svg+xml;charset=utf-8", vector.MIMEType)
		assert.Regexp(t, `^qrcode-\d+\.svg$`, vector.Filename)
		assert.Equal(t, textBefore, enc.Last())
		assert.Contains(t, notice.Description, "SVG")

		doc, err := qrcode.ParseSVG(vector.Bytes)
		require.NoError(t, err)
		// background plus one rect per dark module of the 3x3 stub grid
		assert.Len(t, doc.Rects, 1+5)
	})

	for _, payload := range []string{"", "   ", "\n\t"} {
		t.Run("blank payload "+label(payload), func(t *testing.T) {
			t.Parallel()

			enc := &recordingEncoder{}
			s := studio.New(studio.WithEncoder(enc))
			s.SetPayload(payload)

			artifact, notice, err := s.Download(context.Background())
			require.ErrorIs(t, err, studio.ErrBlankPayload)
			assert.Nil(t, artifact)
			assert.Equal(t, "Cannot download empty QR code", notice.Title)
			assert.Equal(t, studio.VariantWarning, notice.Variant)
			assert.Empty(t, enc.Last(), "blank payloads are never encoded for export")

			checkNotice, err := s.CheckDownload()
			require.ErrorIs(t, err, studio.ErrBlankPayload)
			assert.Equal(t, notice, checkNotice)
		})
	}
}

func label(s string) string {
	return regexp.MustCompile(`\s`).ReplaceAllString("["+s+"]", "_")
}

func TestCopy(t *testing.T) {
	t.Parallel()

	t.Run("copied flag lasts two seconds", func(t *testing.T) {
		t.Parallel()

		clk := newClock()
		mem := clipboard.NewMemory()
		s := studio.New(studio.WithCopier(clipboard.New(mem, clipboard.WithClock(clk.Now))))
		s.SetPayload("hello")

		notice, err := s.Copy(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "hello", mem.Text())
		assert.Equal(t, "Copied to clipboard", notice.Title)
		assert.True(t, s.Copied())

		clk.Advance(1999 * time.Millisecond)
		assert.True(t, s.Copied())

		clk.Advance(time.Millisecond)
		assert.False(t, s.Copied())
	})

	t.Run("payload is copied verbatim", func(t *testing.T) {
		t.Parallel()

		mem := clipboard.NewMemory()
		s := studio.New(studio.WithCopier(clipboard.New(mem)))
		s.SetPayload("  padded text \n")

		_, err := s.Copy(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "  padded text \n", mem.Text())
	})

	t.Run("blank payload", func(t *testing.T) {
		t.Parallel()

		mem := clipboard.NewMemory()
		s := studio.New(studio.WithCopier(clipboard.New(mem)))
		s.SetPayload(" ")

		notice, err := s.Copy(context.Background())
		require.ErrorIs(t, err, studio.ErrBlankPayload)
		assert.Equal(t, "Cannot copy empty text", notice.Title)
		assert.Empty(t, mem.Text())
		assert.False(t, s.Copied())
	})

	t.Run("writer failure", func(t *testing.T) {
		t.Parallel()

		failing := clipboard.WriterFunc(func(context.Context, string) error {
			return clipboard.ErrUnsupported
		})
		s := studio.New(studio.WithCopier(clipboard.New(failing)))
		s.SetPayload("hello")

		notice, err := s.Copy(context.Background())
		require.ErrorIs(t, err, studio.ErrCopyFailed)
		require.ErrorIs(t, err, clipboard.ErrUnsupported)
		assert.Equal(t, "Failed to copy", notice.Title)
		assert.False(t, s.Copied())
	})
}

func TestCounter(t *testing.T) {
	t.Parallel()

	t.Run("server error shows zero", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		s := studio.New(studio.WithCounterSource(counter.NewClient(srv.URL)))
		assert.Equal(t, int64(0), s.RefreshCounter(context.Background()))
		assert.Equal(t, "0", s.CounterDisplay())
	})

	t.Run("remote value", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, counter.Path, r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"counter": 1234}`))
		}))
		t.Cleanup(srv.Close)

		s := studio.New(studio.WithCounterSource(counter.NewClient(srv.URL)))
		<-s.RefreshCounterAsync(context.Background())
		assert.Equal(t, int64(1234), s.Counter())
		assert.Equal(t, "1.2K", s.CounterDisplay())
	})

	t.Run("store source", func(t *testing.T) {
		t.Parallel()

		store := counter.NewMemoryStore()
		require.NoError(t, store.Hit(context.Background(), "10.0.0.1"))
		require.NoError(t, store.Hit(context.Background(), "10.0.0.2"))

		s := studio.New(studio.WithCounterSource(counter.StoreSource{Store: store}))
		assert.Equal(t, int64(2), s.RefreshCounter(context.Background()))
	})
}

func TestCounterDisplay(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1200, "1.2K"},
		{12_000, "12K"},
		{345_000, "345K"},
		{3_400_000, "3.4M"},
		{999_950, "1M"},
		{2_000_000_000, "2B"},
	} {
		s := studio.New(studio.WithCounterSource(staticSource(tc.n)), studio.WithLanguage(language.English))
		s.RefreshCounter(context.Background())
		assert.Equal(t, tc.want, s.CounterDisplay(), "n=%d", tc.n)
	}
}

func TestTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, studio.ThemeDark, studio.ParseTheme(" Dark "))
	assert.Equal(t, studio.ThemeLight, studio.ParseTheme("light"))
	assert.Equal(t, studio.ThemeSystem, studio.ParseTheme("sepia"))

	s := studio.New()
	s.SetTheme(studio.ThemeDark)
	assert.Equal(t, studio.ThemeDark, s.Theme())
}
