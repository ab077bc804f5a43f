package systems

import (
	"math/rand"
)

// TrailParticle is one glowing point of the cursor trail.
type TrailParticle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // Remaining lifetime in [0, 1]
	Decay  float64 // Life removed per tick
	Size   float64 // Render radius
	Seq    uint64  // Creation order, increasing
}

// TrailParams holds the emission and ageing constants.
type TrailParams struct {
	Burst       int     // Particles per emit
	Jitter      float64 // Max spawn offset per axis
	MaxVelocity float64 // Max initial speed per axis
	Decay       float64
	MinSize     float64
	MaxSize     float64
	Shrink      float64 // Size multiplier per tick
	Cap         int     // Live particle limit
}

// DefaultTrailParams returns the stock trail constants.
func DefaultTrailParams() TrailParams {
	return TrailParams{
		Burst:       3,
		Jitter:      5,
		MaxVelocity: 1,
		Decay:       0.02,
		MinSize:     1,
		MaxSize:     4,
		Shrink:      0.98,
		Cap:         100,
	}
}

// ParticleSystem manages the cursor trail particles, oldest first.
type ParticleSystem struct {
	Particles []TrailParticle
	Params    TrailParams

	rng     *rand.Rand
	nextSeq uint64
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(params TrailParams, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles: make([]TrailParticle, 0, params.Cap+params.Burst),
		Params:    params,
		rng:       rng,
	}
}

// Emit spawns one burst at (x, y) and then enforces the cap, keeping the
// most recently created particles. Returns how many old particles the cap evicted.
func (s *ParticleSystem) Emit(x, y float64) int {
	p := &s.Params
	for i := 0; i < p.Burst; i++ {
		s.Particles = append(s.Particles, TrailParticle{
			X:     x + s.symmetric(p.Jitter),
			Y:     y + s.symmetric(p.Jitter),
			VX:    s.symmetric(p.MaxVelocity),
			VY:    s.symmetric(p.MaxVelocity),
			Life:  1,
			Decay: p.Decay,
			Size:  p.MinSize + s.rng.Float64()*(p.MaxSize-p.MinSize),
			Seq:   s.nextSeq,
		})
		s.nextSeq++
	}

	if excess := len(s.Particles) - p.Cap; excess > 0 {
		n := copy(s.Particles, s.Particles[excess:])
		s.Particles = s.Particles[:n]
		return excess
	}
	return 0
}

// Update ages all particles and drops the ones whose life ran out.
// Returns the number dropped.
func (s *ParticleSystem) Update() int {
	shrink := s.Params.Shrink
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.X += p.VX
		p.Y += p.VY
		p.Life -= p.Decay
		p.Size *= shrink

		if p.Life <= 0 {
			continue
		}

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	expired := len(s.Particles) - alive
	s.Particles = s.Particles[:alive]
	return expired
}

// Count returns the current number of live particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}

// symmetric returns a uniform value in [-limit, limit).
func (s *ParticleSystem) symmetric(limit float64) float64 {
	return (s.rng.Float64()*2 - 1) * limit
}
