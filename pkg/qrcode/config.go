package qrcode

import "strings"

// Format selects the output surface produced by the Renderer.
type Format int

const (
	FormatRaster Format = iota
	FormatVector
)

// String returns the lowercase file-oriented name of the format.
func (f Format) String() string {
	switch f {
	case FormatRaster:
		return "png"
	case FormatVector:
		return "svg"
	default:
		return "unknown"
	}
}

// ParseFormat maps user input to a Format.
// Accepts "png", "raster" and "canvas" for raster output, "svg" and "vector"
// for vector output. Anything else yields FormatRaster.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg", "vector":
		return FormatVector
	default:
		return FormatRaster
	}
}

// Level is the QR error correction level.
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

// String returns the single letter name of the level.
func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "?"
	}
}

// ParseLevel maps "L", "M", "Q" or "H" (case-insensitive) to a Level.
// Unknown values yield DefaultLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL
	case "M":
		return LevelM
	case "Q":
		return LevelQ
	case "H":
		return LevelH
	default:
		return DefaultLevel
	}
}

const (
	DefaultForeground = "#000000"
	DefaultBackground = "#FFFFFF"
	DefaultLevel      = LevelH
	DefaultFormat     = FormatRaster
	DefaultSize       = 200

	MinSize = 64
	MaxSize = 2048

	// QuietZone is the blank border, in modules, drawn around every symbol.
	QuietZone = 4
)

// Palette is the set of preset colors offered for both foreground and background.
var Palette = []string{
	"#000000", "#FFFFFF", "#FF5733", "#33FF57", "#3357FF",
	"#FF33A8", "#33FFF5", "#F5FF33", "#9D33FF", "#FF8333",
}

// RenderConfig holds the parameters driving the next render.
// The zero value is not useful; start from DefaultConfig.
// Setters never fail: color strings are validated at render time.
type RenderConfig struct {
	Payload    string
	Foreground string
	Background string
	Level      Level
	Format     Format
	Size       int
}

// DefaultConfig returns a configuration with an empty payload, black on white,
// raster output, level H and a 200px edge.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		Foreground: DefaultForeground,
		Background: DefaultBackground,
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Size:       DefaultSize,
	}
}

func (c *RenderConfig) SetPayload(payload string) { c.Payload = payload }
func (c *RenderConfig) SetForeground(color string) { c.Foreground = color }
func (c *RenderConfig) SetBackground(color string) { c.Background = color }
func (c *RenderConfig) SetFormat(format Format)    { c.Format = format }
func (c *RenderConfig) SetLevel(level Level)       { c.Level = level }

// SetSize sets the raster edge length in pixels, clamped to [MinSize, MaxSize].
// Zero or negative values restore DefaultSize.
func (c *RenderConfig) SetSize(size int) {
	switch {
	case size <= 0:
		size = DefaultSize
	case size < MinSize:
		size = MinSize
	case size > MaxSize:
		size = MaxSize
	}
	c.Size = size
}

// Blank reports whether the payload is empty or whitespace-only.
// Export and clipboard operations must be refused for blank payloads.
func (c RenderConfig) Blank() bool {
	return strings.TrimSpace(c.Payload) == ""
}

// EncodableText returns the text handed to the encoder.
// An empty payload is replaced by a single space so a preview can always be drawn.
func (c RenderConfig) EncodableText() string {
	if c.Payload == "" {
		return " "
	}
	return c.Payload
}
