package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the stats HUD.
type HUDData struct {
	FPS         int32
	Tick        int32
	Stars       int
	Particles   int
	ParticleCap int
	Speed       float64
	ScreenWidth int32
}

// HUD renders live engine stats in the top-right corner.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    240,
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	padding := r.Theme.Padding
	x := data.ScreenWidth - h.width - padding
	y := padding

	r.DrawPanel(x, y, h.width, r.Theme.LineHeight*6+padding*2)
	y += padding
	inner := h.width - padding*2

	y = r.DrawSectionHeader(x+padding, y, "Stats")
	y = r.DrawLabelValue(x+padding, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y = r.DrawLabelValue(x+padding, y, "Tick", fmt.Sprintf("%d", data.Tick))
	y = r.DrawLabelValue(x+padding, y, "Stars", fmt.Sprintf("%d @ %.1f", data.Stars, data.Speed))
	r.DrawBar(x+padding, y, "Particles", data.Particles, data.ParticleCap, inner)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
