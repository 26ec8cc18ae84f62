//go:build ebiten

package app

import (
	"image/color"
	"log"
	"strconv"
	"time"

	"ellipse-dla/internal/core"
	"ellipse-dla/internal/render"
	"ellipse-dla/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a growth simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	auto     bool
	autoStep *core.FixedStep
	seed     int64
	halted   bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	opts := render.DefaultOptions()
	opts.PixelSize = PixelSize(sim)
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H, opts),
		hud:      ui.NewHUD(sim),
		auto:     cfg.Auto,
		autoStep: core.NewFixedStep(cfg.AutoRate),
		seed:     cfg.Seed,
	}
}

// PixelSize reads the canvas pitch a sim advertises, defaulting to the
// standard 6 pixels.
func PixelSize(sim core.Sim) int {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return render.DefaultOptions().PixelSize
	}
	p, ok := provider.Parameters().Lookup("pixel")
	if !ok {
		return render.DefaultOptions().PixelSize
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil || v <= 0 {
		return render.DefaultOptions().PixelSize
	}
	return v
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.halted = false
	g.autoStep.Reset()
}

// Update handles input and fires growth triggers.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.auto = !g.auto
		g.autoStep.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if g.hud != nil {
		g.hud.Update()
	}

	trigger := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyG)
	if g.auto && g.autoStep.ShouldStep() {
		trigger = true
	}
	if trigger && !g.halted {
		g.grow()
	}
	return nil
}

func (g *Game) grow() {
	if err := g.sim.Grow(); err != nil {
		// A capped level stays stuck until reset; stop retrying every frame.
		g.halted = true
		g.auto = false
		log.Printf("growth halted: %v", err)
	}
}

// Draw renders the grid and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim.Cells())
	if g.hud != nil {
		g.hud.Draw(screen, g.auto, g.halted)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
