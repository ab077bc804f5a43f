package game

import (
	"github.com/pthm-cable/stardrift/config"
	"github.com/pthm-cable/stardrift/renderer"
	"github.com/pthm-cable/stardrift/systems"
	"github.com/pthm-cable/stardrift/telemetry"
)

// TrailEngine renders glowing particles that follow the pointer on a
// transparent overlay. The overlay only listens; it never consumes pointer
// events.
type TrailEngine struct {
	cfg  config.TrailConfig
	deps Deps

	particles *systems.ParticleSystem
	renderer  *renderer.ParticleRenderer

	lifecycle
}

// NewTrailEngine creates an unmounted trail engine.
func NewTrailEngine(cfg config.TrailConfig, deps Deps) *TrailEngine {
	return &TrailEngine{
		cfg:      cfg,
		deps:     deps,
		renderer: renderer.NewParticleRenderer(cfg),
	}
}

func (e *TrailEngine) Name() string { return "trail" }

func (e *TrailEngine) Mounted() bool { return e.mounted }

// Mount sizes the overlay, starts with no particles, subscribes to pointer
// and resize events and schedules the first frame.
func (e *TrailEngine) Mount() error {
	if e.mounted {
		return ErrAlreadyMounted
	}
	log := e.deps.logger()
	if e.deps.Surface == nil {
		log.Debug("no drawing surface, trail disabled")
		return nil
	}

	w, h := e.deps.Viewport.Size()
	sizeSurface(e.deps.Surface, w, h)

	e.particles = systems.NewParticleSystem(TrailParams(e.cfg), e.deps.Rng)

	e.track(e.deps.Viewport.OnResize(e.resize))
	if e.deps.Pointer != nil {
		e.track(e.deps.Pointer.OnPointerMove(e.pointerMove))
	}
	e.mounted = true
	e.frame = e.deps.Scheduler.Request(e.animate)

	log.Info("trail mounted", "cap", e.cfg.Cap, "width", w, "height", h)
	return nil
}

// Unmount cancels the pending frame and detaches pointer and resize listeners.
func (e *TrailEngine) Unmount() {
	if !e.mounted {
		return
	}
	e.release(e.deps.Scheduler)
	e.deps.logger().Info("trail unmounted")
}

// Particles exposes the simulation state. Nil before the first mount.
func (e *TrailEngine) Particles() *systems.ParticleSystem {
	return e.particles
}

func (e *TrailEngine) resize(w, h int) {
	sizeSurface(e.deps.Surface, w, h)
}

func (e *TrailEngine) pointerMove(x, y float64) {
	dropped := e.particles.Emit(x, y)
	e.deps.Collector.RecordPointerMove(e.cfg.Burst, dropped)
}

func (e *TrailEngine) animate() {
	perf := e.deps.Perf

	perf.StartPhase(telemetry.PhaseTrailUpdate)
	expired := e.particles.Update()
	e.deps.Collector.RecordTrailTick(expired, e.particles.Count())

	perf.StartPhase(telemetry.PhaseTrailDraw)
	s := e.deps.Surface
	s.Begin()
	e.renderer.Draw(s, e.particles.Particles)
	s.End()
	perf.EndPhase()

	e.frame = e.deps.Scheduler.Request(e.animate)
}

// TrailParams maps trail configuration onto particle system parameters.
func TrailParams(cfg config.TrailConfig) systems.TrailParams {
	return systems.TrailParams{
		Burst:       cfg.Burst,
		Jitter:      cfg.Jitter,
		MaxVelocity: cfg.MaxVelocity,
		Decay:       cfg.Decay,
		MinSize:     cfg.MinSize,
		MaxSize:     cfg.MaxSize,
		Shrink:      cfg.Shrink,
		Cap:         cfg.Cap,
	}
}
