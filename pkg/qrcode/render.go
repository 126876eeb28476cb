package qrcode

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Surface is the displayable result of a render.
type Surface interface {
	Format() Format
}

// RasterSurface is a fixed-resolution bitmap.
type RasterSurface struct {
	Image *image.RGBA
}

func (*RasterSurface) Format() Format { return FormatRaster }

// VectorSurface is a scale-independent SVG document.
type VectorSurface struct {
	Document SVG
}

func (*VectorSurface) Format() Format { return FormatVector }

// Renderer paints grids into surfaces. It holds no state: rendering the same
// grid with the same configuration always yields an identical surface.
type Renderer struct{}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render paints grid according to cfg: dark modules in the foreground color,
// light modules and the quiet zone in the background color.
// A nil grid renders an empty symbol made of the quiet zone only.
func (r *Renderer) Render(grid *Grid, cfg RenderConfig) Surface {
	fg, bg := resolveColors(cfg)
	if cfg.Format == FormatVector {
		return &VectorSurface{Document: buildSVG(grid, cfg.Size, fg, bg)}
	}
	return &RasterSurface{Image: rasterize(grid, cfg.Size, fg, bg)}
}

// rasterize draws the symbol one pixel per module, then scales it by the
// largest integer factor that fits into size and centers it.
// When size is smaller than the symbol the symbol is drawn at one pixel per module.
func rasterize(grid *Grid, size int, fg, bg color.RGBA) *image.RGBA {
	total := grid.Size() + 2*QuietZone
	if size <= 0 {
		size = DefaultSize
	}
	if size < total {
		size = total
	}

	src := image.NewRGBA(image.Rect(0, 0, total, total))
	draw.Draw(src, src.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	for y := range grid.Size() {
		for x := range grid.Size() {
			if grid.Dark(x, y) {
				src.SetRGBA(x+QuietZone, y+QuietZone, fg)
			}
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	scale := size / total
	offset := (size - total*scale) / 2
	dr := image.Rect(offset, offset, offset+total*scale, offset+total*scale)
	draw.NearestNeighbor.Scale(dst, dr, src, src.Bounds(), draw.Src, nil)

	return dst
}
