// Package renderer draws simulation state onto canvas surfaces.
package renderer

import (
	"github.com/pthm-cable/stardrift/camera"
	"github.com/pthm-cable/stardrift/canvas"
	"github.com/pthm-cable/stardrift/config"
	"github.com/pthm-cable/stardrift/systems"
)

// StarfieldRenderer paints the starfield as an opaque background layer.
type StarfieldRenderer struct {
	cfg config.StarfieldConfig
}

// NewStarfieldRenderer creates a starfield renderer.
func NewStarfieldRenderer(cfg config.StarfieldConfig) *StarfieldRenderer {
	return &StarfieldRenderer{cfg: cfg}
}

// Draw repaints the whole surface, then strokes each star's motion segment
// and fills its disc. Nearer stars are brighter and thicker.
func (r *StarfieldRenderer) Draw(s canvas.Surface, stars []systems.Star, cam *camera.Camera) {
	s.Fill(r.cfg.Background.NRGBA())

	glow := canvas.Glow{Color: r.cfg.GlowColor.NRGBA()}
	for i := range stars {
		st := &stars[i]
		near := cam.Nearness(st.Z)
		size := float32(near * r.cfg.SizeScale)

		s.Line(float32(st.PrevX), float32(st.PrevY), float32(st.X), float32(st.Y),
			size, r.cfg.TrailColor.WithAlpha(near*r.cfg.TrailAlpha))

		glow.Blur = size * float32(r.cfg.BlurScale)
		s.Circle(float32(st.X), float32(st.Y), size, r.cfg.StarColor.WithAlpha(near), glow)
	}
}
