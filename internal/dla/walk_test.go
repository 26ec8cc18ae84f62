package dla

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ellipse-dla/internal/core"
)

func TestAttemptCommitsStraightWalkIntoNucleus(t *testing.T) {
	grid := seededGrid(10, 10, 255)
	before := slices.Clone(grid.Cells())
	sampler := &fixedSampler{p: Point{X: 2, Y: 5}}
	w := NewWalker(grid, NewEllipse(10, 10, 0.5), sampler, &scriptedSource{ints: []int{dirE}}, 20, 2)

	b := w.Attempt(200)

	require.Equal(t, Committed, b.State)
	assert.Equal(t, OutcomeCommitted, b.Outcome)
	want := []Point{{2, 5}, {3, 5}, {4, 5}}
	assert.Equal(t, want, b.Path)
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			got := grid.Get(x, y)
			if slices.Contains(want, Point{x, y}) {
				assert.Equal(t, uint8(200), got, "path cell (%d,%d)", x, y)
				continue
			}
			assert.Equal(t, before[grid.Index(x, y)], got, "cell (%d,%d) changed", x, y)
		}
	}
	assert.Equal(t, uint8(255), grid.Get(5, 5))
}

func TestAttemptDiscardsShortBranch(t *testing.T) {
	grid := seededGrid(10, 10, 255)
	before := slices.Clone(grid.Cells())
	sampler := &fixedSampler{p: Point{X: 2, Y: 5}}
	w := NewWalker(grid, NewEllipse(10, 10, 0.5), sampler, &scriptedSource{ints: []int{dirE}}, 20, 10)

	b := w.Attempt(200)

	assert.Equal(t, Discarded, b.State)
	assert.Equal(t, OutcomeTooShort, b.Outcome)
	assert.Len(t, b.Path, 3)
	assert.Equal(t, before, grid.Cells())
}

func TestAttemptDiscardsEscapingWalk(t *testing.T) {
	grid := seededGrid(20, 20, 255)
	before := slices.Clone(grid.Cells())
	sampler := &fixedSampler{p: Point{X: 3, Y: 10}}
	w := NewWalker(grid, NewEllipse(20, 20, 0.4), sampler, &scriptedSource{ints: []int{dirW}}, 20, 10)

	b := w.Attempt(200)

	assert.Equal(t, Discarded, b.State)
	assert.Equal(t, OutcomeEscaped, b.Outcome)
	assert.Equal(t, []Point{{3, 10}, {2, 10}, {1, 10}}, b.Path)
	assert.Equal(t, before, grid.Cells())
	assert.Equal(t, 1, sampler.calls)
}

func TestAttemptDiscardsSelfIntersection(t *testing.T) {
	grid := seededGrid(20, 20, 255)
	before := slices.Clone(grid.Cells())
	sampler := &fixedSampler{p: Point{X: 3, Y: 10}}
	src := &scriptedSource{ints: []int{dirE, dirS, dirW, dirN}}
	w := NewWalker(grid, NewEllipse(20, 20, 0.4), sampler, src, 20, 10)

	b := w.Attempt(200)

	require.Equal(t, OutcomeSelfIntersection, b.Outcome)
	assert.Equal(t, Discarded, b.State)
	assert.Equal(t, []Point{{3, 10}, {4, 10}, {4, 11}, {3, 11}}, b.Path)
	assert.Equal(t, Point{3, 10}, b.Collision)
	assert.Contains(t, b.Path, b.Collision)
	assert.Equal(t, before, grid.Cells())
}

func TestStepReflectsReversals(t *testing.T) {
	tests := []struct {
		name string
		path []Point
		dir  int
		want Point
	}{
		{"straight back", []Point{{4, 5}, {5, 5}}, dirW, Point{6, 5}},
		{"diagonal beside predecessor above", []Point{{4, 5}, {5, 5}}, dirNW, Point{6, 6}},
		{"diagonal beside predecessor below", []Point{{4, 5}, {5, 5}}, dirSW, Point{6, 4}},
		{"sideways is kept", []Point{{4, 5}, {5, 5}}, dirN, Point{5, 4}},
		{"forward is kept", []Point{{4, 5}, {5, 5}}, dirE, Point{6, 5}},
		{"vertical back", []Point{{5, 4}, {5, 5}}, dirN, Point{5, 6}},
		{"diagonal beside vertical predecessor", []Point{{5, 4}, {5, 5}}, dirNE, Point{4, 6}},
		{"diagonal predecessor", []Point{{4, 4}, {5, 5}}, dirNW, Point{6, 6}},
		{"single point never reflects", []Point{{5, 5}}, dirW, Point{4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWalker(core.NewByteGrid(10, 10), NewEllipse(10, 10, 0.3), nil, &scriptedSource{ints: []int{tt.dir}}, 20, 10)
			cur := tt.path[len(tt.path)-1]
			assert.Equal(t, tt.want, w.step(cur, tt.path))
		})
	}
}

func TestTraceMarksAreNotStructure(t *testing.T) {
	grid := seededGrid(20, 20, 255)
	grid.Set(5, 9, 20)
	sampler := &fixedSampler{p: Point{X: 3, Y: 10}}
	w := NewWalker(grid, NewEllipse(20, 20, 0.4), sampler, &scriptedSource{ints: []int{dirE}}, 20, 2)

	b := w.Attempt(150)

	require.Equal(t, Committed, b.State)
	// Passing (4,10) beside the trace at (5,9) must not end the walk; only
	// the nucleus at (10,10) does.
	assert.Equal(t, Point{9, 10}, b.Path[len(b.Path)-1])
	assert.Equal(t, uint8(20), grid.Get(5, 9))
}
