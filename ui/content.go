package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/stardrift/config"
)

// ContentLayer stands in for the page content between the starfield and the
// trail overlay.
type ContentLayer struct {
	title    string
	subtitle string
	accent   rl.Color
}

// NewContentLayer creates the content layer from config.
func NewContentLayer(cfg config.ContentConfig) *ContentLayer {
	return &ContentLayer{
		title:    cfg.Title,
		subtitle: cfg.Subtitle,
		accent:   DefaultTheme().Accent,
	}
}

// Draw centres the title and subtitle in a w x h viewport.
func (c *ContentLayer) Draw(w, h int32) {
	titleSize := int32(48)
	subSize := int32(20)
	gap := int32(16)

	y := h/2 - (titleSize+gap+subSize)/2
	if c.title != "" {
		tw := rl.MeasureText(c.title, titleSize)
		rl.DrawText(c.title, (w-tw)/2, y, titleSize, rl.White)
	}
	y += titleSize + gap
	if c.subtitle != "" {
		sw := rl.MeasureText(c.subtitle, subSize)
		rl.DrawText(c.subtitle, (w-sw)/2, y, subSize, c.accent)
	}
}
