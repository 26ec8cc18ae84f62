//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"ellipse-dla/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	sim     core.Sim
	visible bool
	title   string
	params  []string

	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.params = parameterLines(provider.Parameters())
	}
	return h
}

// Update toggles visibility on H.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel over the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, auto, halted bool) {
	if h == nil || !h.visible {
		return
	}
	lines := []string{h.title, "click/G grow  A auto  R reset  S reseed  H hide"}
	mode := "manual"
	if auto {
		mode = "auto"
	}
	if halted {
		mode = "halted (reset to continue)"
	}
	lines = append(lines, "mode: "+mode)
	if provider, ok := h.sim.(core.StatusProvider); ok {
		lines = append(lines, provider.Status()...)
	}
	lines = append(lines, h.params...)

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := len(lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, l := range lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			clr = color.RGBA{R: 255, G: 210, B: 120, A: 255}
		}
		text.Draw(h.panel, l, face, panelPadding, panelPadding+(i+1)*lineHeight-4, clr)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Growth"
	}
	size := sim.Size()
	return fmt.Sprintf("%s %dx%d", strings.ToUpper(sim.Name()), size.W, size.H)
}

func parameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snap.Groups {
		parts := make([]string, 0, len(group.Params))
		for _, p := range group.Params {
			parts = append(parts, p.Key+"="+p.Value)
		}
		lines = append(lines, group.Name+": "+strings.Join(parts, " "))
	}
	return lines
}

const (
	panelPadding = 8
	lineHeight   = 15
)
