package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsChange reports what the user changed in the controls panel this frame.
type ControlsChange struct {
	Toggled      []LayerID
	Speed        float64
	SpeedChanged bool
}

// ControlsPanel renders the debug controls panel with layer toggles and a
// starfield speed slider.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	minSpeed, maxSpeed float32
}

// NewControlsPanel creates a hidden controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		minSpeed: 0.5,
		maxSpeed: 20,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and returns any changes the user made.
func (c *ControlsPanel) Draw(layers *LayerRegistry, speed float64) ControlsChange {
	change := ControlsChange{Speed: speed}
	if !c.visible {
		return change
	}

	r := c.renderer
	padding := r.Theme.Padding
	rowHeight := int32(28)
	all := layers.All()

	panelHeight := padding*3 + r.Theme.LineHeight + int32(len(all))*rowHeight + r.Theme.LineHeight + rowHeight
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := r.DrawSectionHeader(c.x+padding, c.y+padding, "Layers")
	y += 4

	bw := float32(c.width - padding*2)
	for _, desc := range all {
		label := fmt.Sprintf("%s: %s  [%s]", desc.Name, toggleText(layers.IsEnabled(desc.ID), "on", "off"), desc.KeyLabel)
		if gui.Button(rl.Rectangle{X: float32(c.x + padding), Y: float32(y), Width: bw, Height: 22}, label) {
			layers.Toggle(desc.ID)
			change.Toggled = append(change.Toggled, desc.ID)
		}
		y += rowHeight
	}

	y += padding
	y = r.DrawLabelValue(c.x+padding, y, "Star speed", fmt.Sprintf("%.1f", speed))
	newSpeed := gui.SliderBar(
		rl.Rectangle{X: float32(c.x + padding + 30), Y: float32(y), Width: bw - 60, Height: 18},
		fmt.Sprintf("%.1f", c.minSpeed), fmt.Sprintf("%.0f", c.maxSpeed),
		float32(speed), c.minSpeed, c.maxSpeed,
	)
	if float64(newSpeed) != speed {
		change.Speed = float64(newSpeed)
		change.SpeedChanged = true
	}

	return change
}

func toggleText(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}
