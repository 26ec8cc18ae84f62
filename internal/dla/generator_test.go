package dla

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ellipse-dla/internal/core"
)

func TestNewWithConfigPlantsNucleus(t *testing.T) {
	g, err := NewWithConfig(DefaultConfig())
	require.NoError(t, err)

	size := g.Size()
	assert.Equal(t, core.Size{W: 116, H: 83}, size)
	assert.Equal(t, uint8(255), g.Grid().Get(58, 41))
	nonZero := 0
	for _, v := range g.Cells() {
		if v != 0 {
			nonZero++
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestGrowCommitsEveryLevel(t *testing.T) {
	cfg := smallConfig()
	cfg.Levels = []uint8{200, 150}
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)

	require.NoError(t, g.Grow())

	seen := map[uint8]int{}
	for _, v := range g.Cells() {
		seen[v]++
	}
	assert.Positive(t, seen[200])
	assert.Positive(t, seen[150])
	for v := range seen {
		switch v {
		case 0, cfg.TraceValue, cfg.NucleusValue, 200, 150:
		default:
			t.Fatalf("unexpected intensity %d in grid", v)
		}
	}

	st := g.Stats()
	assert.Equal(t, 1, st.Triggers)
	assert.Equal(t, 2, st.Total.Commits)
	assert.Len(t, st.BranchLengths, 2)
	for _, l := range st.BranchLengths {
		assert.Greater(t, l, cfg.MinBranchLength)
	}
	sum := 0
	for _, ls := range st.Levels {
		assert.Equal(t, 1, ls.Commits, "level %d", ls.Level)
		sum += ls.Attempts
	}
	assert.Equal(t, st.Total.Attempts, sum)
	assert.Equal(t, st.Total.Attempts, st.Total.Commits+st.Total.Escaped+st.Total.SelfIntersection+st.Total.TooShort)
}

func TestGrowIsDeterministicPerSeed(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = 4242
	a, err := NewWithConfig(cfg)
	require.NoError(t, err)
	b, err := NewWithConfig(cfg)
	require.NoError(t, err)

	require.NoError(t, a.Grow())
	require.NoError(t, b.Grow())
	assert.Equal(t, a.Cells(), b.Cells())

	first := slices.Clone(a.Cells())
	a.Reset(0)
	require.NoError(t, a.Grow())
	assert.Equal(t, first, a.Cells(), "reset with config seed should replay the run")
}

func TestResetClearsStructure(t *testing.T) {
	g, err := NewWithConfig(smallConfig())
	require.NoError(t, err)
	require.NoError(t, g.Grow())

	g.Reset(77)

	cx, cy := g.Grid().Center()
	for y := 0; y < g.Grid().H; y++ {
		for x := 0; x < g.Grid().W; x++ {
			want := uint8(0)
			if x == cx && y == cy {
				want = 255
			}
			require.Equal(t, want, g.Grid().Get(x, y), "cell (%d,%d)", x, y)
		}
	}
	st := g.Stats()
	assert.Zero(t, st.Total.Attempts)
	assert.Zero(t, st.Triggers)
}

func TestAttemptOnlyLeavesTraceWhenDiscarded(t *testing.T) {
	cfg := smallConfig()
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)

	commits := 0
	for i := 0; i < 3000; i++ {
		before := slices.Clone(g.Cells())
		b := g.Attempt(cfg.Levels[0])
		if b.State == Committed {
			commits++
			assert.Greater(t, b.Len(), cfg.MinBranchLength)
			for _, p := range b.Path {
				assert.Equal(t, cfg.Levels[0], g.Grid().Get(p.X, p.Y))
			}
			continue
		}
		start := b.Path[0]
		for idx, v := range g.Cells() {
			if v == before[idx] {
				continue
			}
			x, y := idx%g.Grid().W, idx/g.Grid().W
			require.Equal(t, start, Point{x, y}, "discarded %s attempt changed (%d,%d)", b.Outcome, x, y)
			require.Equal(t, cfg.TraceValue, v)
		}
		if b.Outcome == OutcomeSelfIntersection {
			require.Contains(t, b.Path, b.Collision)
			seen := map[Point]bool{}
			for _, p := range b.Path {
				require.False(t, seen[p], "duplicate %v in path", p)
				seen[p] = true
			}
		}
	}
	assert.Equal(t, commits, g.Stats().Total.Commits)
}

func TestGrowLevelStopsAtMaxAttempts(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxAttempts = 3
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)
	before := slices.Clone(g.Cells())
	g.walker = NewWalker(g.grid, g.ellipse, &fixedSampler{p: Point{X: 4, Y: 15}}, &scriptedSource{ints: []int{dirW}}, cfg.TraceValue, cfg.MinBranchLength)

	attempts, err := g.GrowLevel(220)

	require.ErrorIs(t, err, ErrLevelExhausted)
	assert.Equal(t, 3, attempts)
	st := g.Stats()
	assert.Equal(t, 3, st.Total.Attempts)
	assert.Equal(t, 3, st.Total.Escaped)
	assert.Equal(t, 3, st.Levels[0].Escaped)
	assert.Zero(t, st.Total.Commits)
	assert.Equal(t, before, g.Cells())

	err = g.Grow()
	assert.True(t, errors.Is(err, ErrLevelExhausted))
}

func TestOnCommitSeesEveryBranch(t *testing.T) {
	cfg := smallConfig()
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)

	var levels []uint8
	g.OnCommit(func(b Branch) {
		assert.Equal(t, Committed, b.State)
		levels = append(levels, b.Level)
	})
	require.NoError(t, g.Grow())
	assert.Equal(t, cfg.Levels, levels)
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["dla"]
	require.True(t, ok)

	sim, err := factory(map[string]string{"canvas_w": "180", "canvas_h": "120"})
	require.NoError(t, err)
	assert.Equal(t, "dla", sim.Name())
	assert.Equal(t, core.Size{W: 30, H: 20}, sim.Size())

	_, err = factory(map[string]string{"fraction": "0.5"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParametersSnapshot(t *testing.T) {
	g, err := NewWithConfig(DefaultConfig())
	require.NoError(t, err)

	snap := g.Parameters()
	p, ok := snap.Lookup("levels")
	require.True(t, ok)
	assert.Equal(t, "220,170,120,70", p.Value)
	p, ok = snap.Lookup("cols")
	require.True(t, ok)
	assert.Equal(t, "116", p.Value)
	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestStatusLines(t *testing.T) {
	cfg := smallConfig()
	cfg.Levels = []uint8{200, 150}
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, g.Grow())

	lines := g.Status()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "triggers 1")
	assert.Contains(t, lines[0], "commits 2")
	assert.Contains(t, lines[1], "level 200  commits 1")
	assert.Contains(t, lines[2], "level 150  commits 1")
}
