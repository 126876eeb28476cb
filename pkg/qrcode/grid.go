package qrcode

// Grid is an immutable square matrix of QR modules. True cells are dark.
// Grids carry no quiet zone; renderers add it.
type Grid struct {
	size    int
	modules []bool
}

// NewGrid copies a square bitmap into a Grid.
// Rows shorter than the bitmap height are padded with light modules.
func NewGrid(bitmap [][]bool) *Grid {
	n := len(bitmap)
	g := &Grid{size: n, modules: make([]bool, n*n)}
	for y, row := range bitmap {
		for x := 0; x < n && x < len(row); x++ {
			g.modules[y*n+x] = row[x]
		}
	}
	return g
}

// Size returns the edge length in modules.
func (g *Grid) Size() int {
	if g == nil {
		return 0
	}
	return g.size
}

// Dark reports whether the module at (x, y) is dark.
// Coordinates outside the grid are light.
func (g *Grid) Dark(x, y int) bool {
	if g == nil || x < 0 || y < 0 || x >= g.size || y >= g.size {
		return false
	}
	return g.modules[y*g.size+x]
}

// DarkCount returns the number of dark modules.
func (g *Grid) DarkCount() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, m := range g.modules {
		if m {
			n++
		}
	}
	return n
}

// Equal reports whether both grids hold the same module pattern.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g.Size() == other.Size()
	}
	if g.size != other.size {
		return false
	}
	for i := range g.modules {
		if g.modules[i] != other.modules[i] {
			return false
		}
	}
	return true
}
