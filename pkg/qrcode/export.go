package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"
)

const (
	MIMETypePNG = "image/png"
	MIMETypeSVG = "image/svg+xml;charset=utf-8"

	filenamePrefix = "qrcode-"
)

// Artifact is a serialized surface ready to be handed to a file-save mechanism.
type Artifact struct {
	Bytes    []byte
	Filename string
	MIMEType string
}

// Exporter serializes surfaces into artifacts.
type Exporter struct {
	now     func() time.Time
	encoder *png.Encoder
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithClock overrides the time source used for file names.
func WithClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithPNGCompression sets the PNG compression level.
func WithPNGCompression(level png.CompressionLevel) ExporterOption {
	return func(e *Exporter) {
		e.encoder = &png.Encoder{CompressionLevel: level}
	}
}

// NewExporter returns an Exporter using the wall clock and best PNG compression.
func NewExporter(opts ...ExporterOption) *Exporter {
	e := &Exporter{
		now:     time.Now,
		encoder: &png.Encoder{CompressionLevel: png.BestCompression},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export serializes surface in the requested format.
// A nil surface yields ErrNoSurface and no artifact; callers treat it as a no-op.
// The caller is responsible for refusing blank payloads beforehand.
func (e *Exporter) Export(surface Surface, format Format) (*Artifact, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}

	switch format {
	case FormatRaster:
		raster, ok := surface.(*RasterSurface)
		if !ok {
			return nil, fmt.Errorf("%w: want %s, got %s", ErrFormatMismatch, format, surface.Format())
		}
		if raster == nil || raster.Image == nil {
			return nil, ErrNoSurface
		}
		var buf bytes.Buffer
		if err := e.encoder.Encode(&buf, raster.Image); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSerializeFailed, err)
		}
		return &Artifact{
			Bytes:    buf.Bytes(),
			Filename: e.filename(format),
			MIMEType: MIMETypePNG,
		}, nil

	case FormatVector:
		vector, ok := surface.(*VectorSurface)
		if !ok {
			return nil, fmt.Errorf("%w: want %s, got %s", ErrFormatMismatch, format, surface.Format())
		}
		if vector == nil {
			return nil, ErrNoSurface
		}
		data, err := vector.Document.XML()
		if err != nil {
			return nil, err
		}
		return &Artifact{
			Bytes:    data,
			Filename: e.filename(format),
			MIMEType: MIMETypeSVG,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}

func (e *Exporter) filename(format Format) string {
	return fmt.Sprintf("%s%d.%s", filenamePrefix, e.now().UnixMilli(), format)
}

// DataURI encodes the artifact as a base64 data URI for inline embedding.
// Returns an empty string for a nil artifact.
func DataURI(a *Artifact) string {
	if a == nil {
		return ""
	}
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Bytes)
}
