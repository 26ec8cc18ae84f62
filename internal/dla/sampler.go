package dla

import (
	"math"

	"ellipse-dla/internal/core"
)

// maxRejections bounds the unit-disk rejection loop. Each draw is accepted
// with probability pi/4, so the cap is never reached in practice.
const maxRejections = 64

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Sampler yields starting points for branches.
type Sampler interface {
	Sample() Point
}

// PerimeterSampler draws points uniformly in angle on the ellipse perimeter
// and marks each sampled cell with the trace value.
type PerimeterSampler struct {
	grid    *core.ByteGrid
	rng     core.Source
	ellipse Ellipse
	trace   uint8

	rejections int
}

// NewPerimeterSampler builds a sampler writing trace marks into grid.
func NewPerimeterSampler(grid *core.ByteGrid, ellipse Ellipse, rng core.Source, trace uint8) *PerimeterSampler {
	return &PerimeterSampler{grid: grid, rng: rng, ellipse: ellipse, trace: trace}
}

// SampleUnit returns a point on the unit circle, uniform in angle.
//
// A point (u, v) is drawn uniformly from the unit disk by rejection and then
// mapped onto the circle as ((u²-v²)/r, 2uv/r) with r = u²+v², which doubles
// its angle.
func (s *PerimeterSampler) SampleUnit() (float64, float64) {
	s.rejections = 0
	for i := 0; i < maxRejections; i++ {
		u := 2*s.rng.Float64() - 1
		v := 2*s.rng.Float64() - 1
		r := u*u + v*v
		if r >= 1 || r == 0 {
			s.rejections++
			continue
		}
		return (u*u - v*v) / r, 2 * u * v / r
	}
	return 1, 0
}

// Rejections reports how many draws the last SampleUnit call discarded.
func (s *PerimeterSampler) Rejections() int { return s.rejections }

// Sample maps a unit circle point onto the ellipse perimeter in grid
// coordinates and leaves a trace mark on that cell.
func (s *PerimeterSampler) Sample() Point {
	x, y := s.SampleUnit()
	p := s.ToGrid(x, y)
	s.grid.Set(p.X, p.Y, s.trace)
	return p
}

// ToGrid maps a point of [-1,1]² into the grid cell it falls on.
func (s *PerimeterSampler) ToGrid(x, y float64) Point {
	a, b := s.ellipse.SemiAxes()
	col := int(math.Floor(x*a + float64(s.grid.W)/2))
	row := int(math.Floor(y*b + float64(s.grid.H)/2))
	return Point{X: col, Y: row}
}
