package dla

import (
	"slices"

	"ellipse-dla/internal/core"
)

// BranchState is the lifecycle state of a growth attempt.
type BranchState uint8

const (
	Walking BranchState = iota
	Committed
	Discarded
)

func (s BranchState) String() string {
	switch s {
	case Walking:
		return "walking"
	case Committed:
		return "committed"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Outcome explains how an attempt ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeCommitted
	OutcomeEscaped
	OutcomeSelfIntersection
	OutcomeTooShort
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeEscaped:
		return "escaped"
	case OutcomeSelfIntersection:
		return "self-intersection"
	case OutcomeTooShort:
		return "too-short"
	default:
		return "none"
	}
}

// Branch is one walk from a perimeter point inward.
type Branch struct {
	Level   uint8
	Path    []Point
	State   BranchState
	Outcome Outcome
	// Collision is the proposed cell that ended a self-intersecting walk.
	Collision Point
}

// Len returns the number of cells on the path.
func (b Branch) Len() int { return len(b.Path) }

// moore lists the eight neighbour offsets, clockwise from north.
var moore = [8]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Walker grows single branches against the structure held in the grid.
type Walker struct {
	grid      *core.ByteGrid
	ellipse   Ellipse
	sampler   Sampler
	rng       core.Source
	trace     uint8
	minLength int
}

// NewWalker wires a walker. Values above trace count as structure; a branch
// commits only when its path is longer than minLength.
func NewWalker(grid *core.ByteGrid, ellipse Ellipse, sampler Sampler, rng core.Source, trace uint8, minLength int) *Walker {
	return &Walker{
		grid:      grid,
		ellipse:   ellipse,
		sampler:   sampler,
		rng:       rng,
		trace:     trace,
		minLength: minLength,
	}
}

// Attempt runs one branch to completion. On commit every path cell is written
// with level; otherwise the grid is left as the sampler left it.
func (w *Walker) Attempt(level uint8) Branch {
	start := w.sampler.Sample()
	b := Branch{Level: level, Path: []Point{start}, State: Walking}
	cur := start

	for b.State == Walking {
		next := w.step(cur, b.Path)
		if slices.Contains(b.Path, next) {
			b.State, b.Outcome = Discarded, OutcomeSelfIntersection
			b.Collision = next
			break
		}
		b.Path = append(b.Path, next)
		cur = next
		if !w.ellipse.Inside(cur.X, cur.Y) {
			b.State, b.Outcome = Discarded, OutcomeEscaped
			break
		}
		if !w.touchesStructure(cur) {
			continue
		}
		if len(b.Path) <= w.minLength {
			b.State, b.Outcome = Discarded, OutcomeTooShort
			break
		}
		for _, p := range b.Path {
			w.grid.Set(p.X, p.Y, level)
		}
		b.State, b.Outcome = Committed, OutcomeCommitted
	}
	return b
}

// step proposes the next cell from cur, reflecting moves that would fold the
// walk back onto the cell before cur.
func (w *Walker) step(cur Point, path []Point) Point {
	d := moore[w.rng.IntN(len(moore))]
	next := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
	if len(path) < 2 {
		return next
	}
	prev := path[len(path)-2]
	if next == prev {
		next = reflect(cur, next)
	}
	if next.X == prev.X && abs(next.Y-prev.Y) == 1 {
		next = reflect(cur, next)
	}
	if next.Y == prev.Y && abs(next.X-prev.X) == 1 {
		next = reflect(cur, next)
	}
	return next
}

func (w *Walker) touchesStructure(p Point) bool {
	for _, d := range moore {
		if w.grid.Get(p.X+d.X, p.Y+d.Y) > w.trace {
			return true
		}
	}
	return false
}

// reflect mirrors next through cur.
func reflect(cur, next Point) Point {
	return Point{X: next.X + 2*(cur.X-next.X), Y: next.Y + 2*(cur.Y-next.Y)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
