// Package qrcode turns text into downloadable QR code images.
//
// The package is split into four small pieces that form a pipeline:
//
//   - Encoder: an injected capability that turns text and an error correction
//     level into an immutable module Grid. The symbol math is delegated to
//     third-party encoders (skip2/go-qrcode by default, boombuler/barcode as an
//     alternative); CachedEncoder memoizes grids in an LRU cache.
//   - RenderConfig: the value object holding the payload, colors, error
//     correction level, output format and pixel size.
//   - Renderer: paints a Grid with a RenderConfig into a Surface, either a
//     RasterSurface (fixed resolution RGBA image) or a VectorSurface (SVG
//     document with one rect per dark module).
//   - Exporter: serializes a Surface into an Artifact ready for download,
//     named qrcode-<epoch-millis>.png or .svg.
//
// # Usage
//
//	enc := qrcode.NewCachedEncoder(qrcode.NewSkip2Encoder(), 128)
//
//	cfg := qrcode.DefaultConfig()
//	cfg.SetPayload("https://example.com")
//	cfg.SetFormat(qrcode.FormatVector)
//
//	grid, err := qrcode.EncodeConfig(enc, cfg)
//	if err != nil {
//		return err
//	}
//
//	surface := qrcode.NewRenderer().Render(grid, cfg)
//	artifact, err := qrcode.NewExporter().Export(surface, cfg.Format)
//	if err != nil {
//		return err
//	}
//
//	// artifact.Filename == "qrcode-1700000000000.svg"
//	// artifact.MIMEType == "image/svg+xml;charset=utf-8"
//
// The export precondition (non-blank payload) is owned by the caller:
// check RenderConfig.Blank before calling Export.
//
// An empty payload is encoded as a single space by EncodeConfig so that a
// live preview can always be drawn.
//
// Inline previews can be embedded into HTML with DataURI:
//
//	src := qrcode.DataURI(artifact)
//	fmt.Printf(`<img src="%s" alt="QR Code">`, src)
//
// # Error Correction Level
//
// Four levels are supported, trading capacity for damage tolerance:
//   - L: ~7% recovery
//   - M: ~15% recovery
//   - Q: ~25% recovery
//   - H: ~30% recovery (default)
package qrcode
