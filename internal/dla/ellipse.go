package dla

import (
	"errors"
	"math"
)

// ErrNoMargin reports an ellipse that reaches the outermost ring of cells,
// where neighbour lookups would leave the grid.
var ErrNoMargin = errors.New("dla: ellipse leaves no border margin")

// insideTolerance admits a thin ring just beyond the ellipse so perimeter
// samples are not rejected by rounding.
const insideTolerance = 1.01

// Ellipse is the confinement region centered on the grid. It is immutable
// once built.
type Ellipse struct {
	cols, rows int
	fraction   float64
	a2i, b2i   float64
}

// NewEllipse derives the confinement ellipse for a cols x rows grid. The
// semi-axes are cols*fraction and rows*fraction.
func NewEllipse(cols, rows int, fraction float64) Ellipse {
	a := float64(cols) * fraction
	b := float64(rows) * fraction
	return Ellipse{
		cols:     cols,
		rows:     rows,
		fraction: fraction,
		a2i:      1 / (a * a),
		b2i:      1 / (b * b),
	}
}

// Inside reports whether the center of cell (x, y) lies within the ellipse.
func (e Ellipse) Inside(x, y int) bool {
	return e.Norm(x, y) <= insideTolerance
}

// Norm evaluates the normalized ellipse equation at the center of cell
// (x, y): 1 on the boundary, below 1 inside.
func (e Ellipse) Norm(x, y int) float64 {
	dx := float64(x) + 0.5 - float64(e.cols)/2
	dy := float64(y) + 0.5 - float64(e.rows)/2
	return dx*dx*e.a2i + dy*dy*e.b2i
}

// SemiAxes returns the horizontal and vertical semi-axis lengths in cells.
func (e Ellipse) SemiAxes() (float64, float64) {
	return float64(e.cols) * e.fraction, float64(e.rows) * e.fraction
}

// Fraction returns the semi-axis fraction the ellipse was built with.
func (e Ellipse) Fraction() float64 { return e.fraction }

// HasMargin reports whether every cell accepted by Inside keeps all eight
// neighbours on the grid, and every perimeter sample lands on the grid.
func (e Ellipse) HasMargin() bool {
	a, b := e.SemiAxes()
	reach := math.Sqrt(insideTolerance)
	// Inside admits centers within reach*a of the middle; the farthest such
	// cell needs one more column/row beyond it.
	return a*reach <= float64(e.cols)/2-1.5 && b*reach <= float64(e.rows)/2-1.5
}
