package qrcode

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses "#RRGGBB" or "#RGB" (the leading '#' is optional,
// surrounding whitespace is ignored) into an opaque RGBA color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// NormalizeColor returns the canonical uppercase "#RRGGBB" form of s,
// or fallback when s is not a valid color.
func NormalizeColor(s, fallback string) string {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return hexString(c)
}

func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// resolveColors returns the configured colors, falling back to the defaults
// for values that do not parse.
func resolveColors(cfg RenderConfig) (fg, bg color.RGBA) {
	fg, err := ParseColor(cfg.Foreground)
	if err != nil {
		fg = color.RGBA{A: 0xff}
	}
	bg, err = ParseColor(cfg.Background)
	if err != nil {
		bg = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return fg, bg
}
