package renderer

import (
	"github.com/pthm-cable/stardrift/canvas"
	"github.com/pthm-cable/stardrift/config"
	"github.com/pthm-cable/stardrift/systems"
)

// ParticleRenderer renders the cursor trail on a transparent overlay.
type ParticleRenderer struct {
	cfg config.TrailConfig
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer(cfg config.TrailConfig) *ParticleRenderer {
	return &ParticleRenderer{cfg: cfg}
}

// Draw clears the overlay and renders every particle as a blurred outer
// disc with a bright core, both faded by remaining life.
func (r *ParticleRenderer) Draw(s canvas.Surface, particles []systems.TrailParticle) {
	s.Clear()

	glow := canvas.Glow{Color: r.cfg.GlowColor.NRGBA()}
	for i := range particles {
		p := &particles[i]
		x, y := float32(p.X), float32(p.Y)
		size := float32(p.Size)

		glow.Blur = size * float32(r.cfg.GlowBlur)
		s.Circle(x, y, size, r.cfg.GlowColor.WithAlpha(p.Life), glow)

		s.Circle(x, y, size*float32(r.cfg.CoreScale), r.cfg.CoreColor.WithAlpha(p.Life), canvas.NoGlow)
	}
}
