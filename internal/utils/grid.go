// internal/utils/grid.go
package utils

import "math"

// GridGeometry describes where a square grid of cells sits on screen.
type GridGeometry struct {
	OriginX, OriginY int
	CellSize         int
	Gap              int
	Size             int // cells per side
}

// Pitch is the distance between the top-left corners of adjacent cells.
func (g GridGeometry) Pitch() int {
	return g.CellSize + g.Gap
}

// Width is the on-screen side length of the whole grid.
func (g GridGeometry) Width() int {
	return g.Size*g.CellSize + (g.Size-1)*g.Gap
}

// CellOrigin returns the top-left pixel of (row, col).
func (g GridGeometry) CellOrigin(row, col int) (x, y int) {
	return g.OriginX + col*g.Pitch(), g.OriginY + row*g.Pitch()
}

// ScreenToCell maps a cursor position to a cell. Positions in the gaps
// between cells, or off the grid, return ok == false.
func (g GridGeometry) ScreenToCell(x, y int) (row, col int, ok bool) {
	dx, dy := x-g.OriginX, y-g.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	p := g.Pitch()
	col, row = dx/p, dy/p
	if row >= g.Size || col >= g.Size {
		return 0, 0, false
	}
	if dx%p >= g.CellSize || dy%p >= g.CellSize {
		return 0, 0, false
	}
	return row, col, true
}

// ValueAtPosition maps x on a horizontal track [trackX, trackX+trackWidth]
// to the nearest integer in [min, max].
func ValueAtPosition(x, trackX, trackWidth float32, min, max int) int {
	t := InverseLerp(trackX, trackX+trackWidth, x)
	return int(math.Round(float64(Lerp(float32(min), float32(max), t))))
}

// PositionOfValue is the inverse of ValueAtPosition.
func PositionOfValue(v int, trackX, trackWidth float32, min, max int) float32 {
	if max == min {
		return trackX
	}
	t := ClampF(float32(v-min)/float32(max-min), 0, 1)
	return Lerp(trackX, trackX+trackWidth, t)
}
