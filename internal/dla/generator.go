package dla

import (
	"errors"
	"fmt"
	"slices"

	"ellipse-dla/internal/core"
)

// ErrLevelExhausted is returned when a level exceeds Config.MaxAttempts
// without a committed branch.
var ErrLevelExhausted = errors.New("dla: growth level exhausted its attempts")

// LevelStats counts attempt outcomes for one growth level.
type LevelStats struct {
	Level            uint8
	Attempts         int
	Commits          int
	Escaped          int
	SelfIntersection int
	TooShort         int
}

func (s *LevelStats) record(o Outcome) {
	s.Attempts++
	switch o {
	case OutcomeCommitted:
		s.Commits++
	case OutcomeEscaped:
		s.Escaped++
	case OutcomeSelfIntersection:
		s.SelfIntersection++
	case OutcomeTooShort:
		s.TooShort++
	}
}

func (s *LevelStats) add(o LevelStats) {
	s.Attempts += o.Attempts
	s.Commits += o.Commits
	s.Escaped += o.Escaped
	s.SelfIntersection += o.SelfIntersection
	s.TooShort += o.TooShort
}

// Stats aggregates outcomes since the last reset.
type Stats struct {
	Triggers int
	Total    LevelStats
	Levels   []LevelStats
	// BranchLengths holds the path length of every committed branch in
	// commit order.
	BranchLengths []int
}

// Generator drives the aggregation: for each configured level it retries
// branch attempts until one commits.
type Generator struct {
	cfg     Config
	grid    *core.ByteGrid
	ellipse Ellipse
	rng     *core.RNG
	sampler *PerimeterSampler
	walker  *Walker

	stats    Stats
	onCommit []func(Branch)
}

// New returns a generator using the default configuration.
func New() *Generator {
	g, err := NewWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return g
}

// NewWithConfig validates cfg and returns a generator reset to cfg.Seed.
func NewWithConfig(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Levels = slices.Clone(cfg.Levels)
	grid := core.NewByteGrid(cfg.Columns(), cfg.Rows())
	ellipse := NewEllipse(grid.W, grid.H, cfg.SemiAxisFraction)
	rng := core.NewRNG(cfg.Seed)
	sampler := NewPerimeterSampler(grid, ellipse, rng, cfg.TraceValue)
	g := &Generator{
		cfg:     cfg,
		grid:    grid,
		ellipse: ellipse,
		rng:     rng,
		sampler: sampler,
		walker:  NewWalker(grid, ellipse, sampler, rng, cfg.TraceValue, cfg.MinBranchLength),
	}
	g.Reset(cfg.Seed)
	return g, nil
}

// Name returns the simulation identifier.
func (g *Generator) Name() string { return "dla" }

// Size reports the grid dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.grid.W, H: g.grid.H} }

// Cells exposes the grid in row-major order.
func (g *Generator) Cells() []uint8 { return g.grid.Cells() }

// Grid exposes the underlying grid.
func (g *Generator) Grid() *core.ByteGrid { return g.grid }

// Ellipse returns the confinement region.
func (g *Generator) Ellipse() Ellipse { return g.ellipse }

// Sampler returns the perimeter sampler feeding the walker.
func (g *Generator) Sampler() *PerimeterSampler { return g.sampler }

// Config returns a copy of the active configuration.
func (g *Generator) Config() Config {
	c := g.cfg
	c.Levels = slices.Clone(c.Levels)
	return c
}

// Stats returns a copy of the outcome counters.
func (g *Generator) Stats() Stats {
	s := g.stats
	s.Levels = slices.Clone(s.Levels)
	s.BranchLengths = slices.Clone(s.BranchLengths)
	return s
}

// OnCommit registers fn to run after every committed branch.
func (g *Generator) OnCommit(fn func(Branch)) {
	if fn != nil {
		g.onCommit = append(g.onCommit, fn)
	}
}

// Reset clears the grid, plants the nucleus in the center cell and reseeds
// the random source. A zero seed reuses the configured one.
func (g *Generator) Reset(seed int64) {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.rng.Seed(seed)
	g.grid.Clear()
	cx, cy := g.grid.Center()
	g.grid.Set(cx, cy, g.cfg.NucleusValue)
	g.stats = Stats{Levels: make([]LevelStats, len(g.cfg.Levels))}
	for i, lvl := range g.cfg.Levels {
		g.stats.Levels[i].Level = lvl
	}
}

// Grow responds to one growth trigger: every configured level is grown in
// order until it commits a branch.
func (g *Generator) Grow() error {
	g.stats.Triggers++
	for i, lvl := range g.cfg.Levels {
		if _, err := g.growLevel(i, lvl); err != nil {
			return err
		}
	}
	return nil
}

// GrowLevel retries attempts at level until one commits and returns the
// number of attempts it took.
func (g *Generator) GrowLevel(level uint8) (int, error) {
	idx := slices.Index(g.cfg.Levels, level)
	return g.growLevel(idx, level)
}

// Attempt runs a single branch attempt at level and records its outcome.
func (g *Generator) Attempt(level uint8) Branch {
	return g.attempt(slices.Index(g.cfg.Levels, level), level)
}

func (g *Generator) growLevel(idx int, level uint8) (int, error) {
	for attempts := 1; ; attempts++ {
		b := g.attempt(idx, level)
		if b.State == Committed {
			return attempts, nil
		}
		if g.cfg.MaxAttempts > 0 && attempts >= g.cfg.MaxAttempts {
			return attempts, fmt.Errorf("%w: level %d after %d attempts", ErrLevelExhausted, level, attempts)
		}
	}
}

func (g *Generator) attempt(idx int, level uint8) Branch {
	b := g.walker.Attempt(level)
	var ls LevelStats
	ls.record(b.Outcome)
	g.stats.Total.add(ls)
	if idx >= 0 && idx < len(g.stats.Levels) {
		g.stats.Levels[idx].add(ls)
	}
	if b.State == Committed {
		g.stats.BranchLengths = append(g.stats.BranchLengths, b.Len())
		for _, fn := range g.onCommit {
			fn(b)
		}
	}
	return b
}

func init() {
	core.Register("dla", func(cfg map[string]string) (core.Sim, error) {
		g, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// Status summarises the run so far, one line per level after a totals line.
func (g *Generator) Status() []string {
	s := g.stats
	lines := []string{
		fmt.Sprintf("triggers %d  attempts %d  commits %d", s.Triggers, s.Total.Attempts, s.Total.Commits),
	}
	for _, ls := range s.Levels {
		lines = append(lines, fmt.Sprintf("level %3d  commits %d  escaped %d  self %d  short %d",
			ls.Level, ls.Commits, ls.Escaped, ls.SelfIntersection, ls.TooShort))
	}
	return lines
}
