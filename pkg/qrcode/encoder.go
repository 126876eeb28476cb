package qrcode

import (
	"fmt"
	"image/color"

	"github.com/boombuler/barcode"
	bqr "github.com/boombuler/barcode/qr"
	lru "github.com/hashicorp/golang-lru/v2"
	skip2 "github.com/skip2/go-qrcode"
)

// Encoder turns text into a module grid.
// Implementations must be deterministic and free of side effects.
type Encoder interface {
	Encode(text string, level Level) (*Grid, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(text string, level Level) (*Grid, error)

// Encode calls f(text, level).
func (f EncoderFunc) Encode(text string, level Level) (*Grid, error) {
	return f(text, level)
}

// EncodeConfig encodes the configuration's payload at its level.
// Empty payloads are encoded as a single space.
func EncodeConfig(enc Encoder, cfg RenderConfig) (*Grid, error) {
	if enc == nil {
		return nil, ErrNilEncoder
	}
	return enc.Encode(cfg.EncodableText(), cfg.Level)
}

// Skip2Encoder encodes with github.com/skip2/go-qrcode.
type Skip2Encoder struct{}

// NewSkip2Encoder returns the default encoder.
func NewSkip2Encoder() Skip2Encoder { return Skip2Encoder{} }

func (Skip2Encoder) Encode(text string, level Level) (*Grid, error) {
	q, err := skip2.New(text, skip2Level(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	q.DisableBorder = true
	return NewGrid(q.Bitmap()), nil
}

func skip2Level(l Level) skip2.RecoveryLevel {
	switch l {
	case LevelL:
		return skip2.Low
	case LevelM:
		return skip2.Medium
	case LevelQ:
		return skip2.High
	default:
		return skip2.Highest
	}
}

// BarcodeEncoder encodes with github.com/boombuler/barcode.
type BarcodeEncoder struct{}

// NewBarcodeEncoder returns the alternate encoder.
func NewBarcodeEncoder() BarcodeEncoder { return BarcodeEncoder{} }

func (BarcodeEncoder) Encode(text string, level Level) (*Grid, error) {
	code, err := bqr.Encode(text, barcodeLevel(level), bqr.Auto)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return gridFromBarcode(code), nil
}

func barcodeLevel(l Level) bqr.ErrorCorrectionLevel {
	switch l {
	case LevelL:
		return bqr.L
	case LevelM:
		return bqr.M
	case LevelQ:
		return bqr.Q
	default:
		return bqr.H
	}
}

func gridFromBarcode(code barcode.Barcode) *Grid {
	b := code.Bounds()
	n := b.Dx()
	bitmap := make([][]bool, n)
	for y := range n {
		row := make([]bool, n)
		for x := range n {
			row[x] = isDark(code.At(b.Min.X+x, b.Min.Y+y))
		}
		bitmap[y] = row
	}
	return NewGrid(bitmap)
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r+g+b < 3*0x8000
}

type cacheKey struct {
	text  string
	level Level
}

// CachedEncoder memoizes grids of another encoder in an LRU cache.
// Grids are immutable so cached values are shared between callers.
// Safe for concurrent use.
type CachedEncoder struct {
	next  Encoder
	cache *lru.Cache[cacheKey, *Grid]
}

// NewCachedEncoder wraps next with an LRU cache of the given size.
// Non-positive sizes disable caching and return next unchanged.
func NewCachedEncoder(next Encoder, size int) Encoder {
	if size <= 0 {
		return next
	}
	cache, err := lru.New[cacheKey, *Grid](size)
	if err != nil {
		return next
	}
	return &CachedEncoder{next: next, cache: cache}
}

func (c *CachedEncoder) Encode(text string, level Level) (*Grid, error) {
	key := cacheKey{text: text, level: level}
	if g, ok := c.cache.Get(key); ok {
		return g, nil
	}
	g, err := c.next.Encode(text, level)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, g)
	return g, nil
}

// Len returns the number of cached grids.
func (c *CachedEncoder) Len() int {
	return c.cache.Len()
}
