package dla

import "ellipse-dla/internal/core"

// scriptedSource replays fixed values, cycling when exhausted.
type scriptedSource struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.i%len(s.ints)]
	s.i++
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

type fixedSampler struct {
	p     Point
	calls int
}

func (s *fixedSampler) Sample() Point {
	s.calls++
	return s.p
}

// Direction indices into moore.
const (
	dirN = iota
	dirNE
	dirE
	dirSE
	dirS
	dirSW
	dirW
	dirNW
)

func seededGrid(w, h int, nucleus uint8) *core.ByteGrid {
	g := core.NewByteGrid(w, h)
	cx, cy := g.Center()
	g.Set(cx, cy, nucleus)
	return g
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.CanvasWidth = 180
	cfg.CanvasHeight = 180
	cfg.MaxAttempts = 200000
	return cfg
}
