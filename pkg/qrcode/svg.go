package qrcode

import (
	"encoding/xml"
	"fmt"
	"image/color"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVG is the structural form of a vector surface.
// The viewBox is expressed in modules, quiet zone included, so the document
// scales to any display size. Rects[0] is the background covering the whole
// symbol; every following rect is exactly one dark module.
type SVG struct {
	XMLName        xml.Name  `xml:"svg"`
	Namespace      string    `xml:"xmlns,attr"`
	Width          int       `xml:"width,attr"`
	Height         int       `xml:"height,attr"`
	ViewBox        string    `xml:"viewBox,attr"`
	ShapeRendering string    `xml:"shape-rendering,attr"`
	Rects          []SVGRect `xml:"rect"`
}

// SVGRect is a filled rectangle in module units.
type SVGRect struct {
	X      int    `xml:"x,attr"`
	Y      int    `xml:"y,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

func buildSVG(grid *Grid, size int, fg, bg color.RGBA) SVG {
	n := grid.Size()
	total := n + 2*QuietZone
	if size <= 0 {
		size = DefaultSize
	}
	fgHex, bgHex := hexString(fg), hexString(bg)

	rects := make([]SVGRect, 0, grid.DarkCount()+1)
	rects = append(rects, SVGRect{Width: total, Height: total, Fill: bgHex})
	for y := range n {
		for x := range n {
			if grid.Dark(x, y) {
				rects = append(rects, SVGRect{
					X:      x + QuietZone,
					Y:      y + QuietZone,
					Width:  1,
					Height: 1,
					Fill:   fgHex,
				})
			}
		}
	}

	return SVG{
		Namespace:      svgNamespace,
		Width:          size,
		Height:         size,
		ViewBox:        fmt.Sprintf("0 0 %d %d", total, total),
		ShapeRendering: "crispEdges",
		Rects:          rects,
	}
}

// Markup serializes the document as an SVG element without the XML prolog,
// suitable for inlining into HTML.
func (s SVG) Markup() ([]byte, error) {
	out, err := xml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializeFailed, err)
	}
	return out, nil
}

// XML serializes the SVG as a standalone UTF-8 XML document.
func (s SVG) XML() ([]byte, error) {
	body, err := s.Markup()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	return append(out, body...), nil
}

// ParseSVG decodes markup produced by Markup or XML.
func ParseSVG(data []byte) (SVG, error) {
	var s SVG
	if err := xml.Unmarshal(data, &s); err != nil {
		return SVG{}, fmt.Errorf("parse svg: %w", err)
	}
	return s, nil
}
