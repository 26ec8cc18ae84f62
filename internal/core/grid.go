package core

import "fmt"

// ByteGrid stores a 2D grid of intensity values in row-major order.
// Dimensions are fixed once allocated.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice for read-only consumers such as renderers.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the intensity stored at (x, y). It panics when the coordinates
// fall outside the grid.
func (g *ByteGrid) Get(x, y int) uint8 {
	g.mustContain(x, y)
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). It panics when the coordinates fall outside the
// grid.
func (g *ByteGrid) Set(x, y int, v uint8) {
	g.mustContain(x, y)
	g.data[y*g.W+x] = v
}

// Center returns the coordinates of the middle cell.
func (g *ByteGrid) Center() (int, int) { return g.W / 2, g.H / 2 }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

func (g *ByteGrid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}
