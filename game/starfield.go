package game

import (
	"github.com/pthm-cable/stardrift/camera"
	"github.com/pthm-cable/stardrift/config"
	"github.com/pthm-cable/stardrift/renderer"
	"github.com/pthm-cable/stardrift/systems"
	"github.com/pthm-cable/stardrift/telemetry"
)

// StarfieldEngine renders a perspective starfield behind the page.
// It has no inputs besides viewport resize.
type StarfieldEngine struct {
	cfg  config.StarfieldConfig
	deps Deps

	field    *systems.Starfield
	renderer *renderer.StarfieldRenderer

	lifecycle
}

// NewStarfieldEngine creates an unmounted starfield engine.
func NewStarfieldEngine(cfg config.StarfieldConfig, deps Deps) *StarfieldEngine {
	return &StarfieldEngine{
		cfg:      cfg,
		deps:     deps,
		renderer: renderer.NewStarfieldRenderer(cfg),
	}
}

func (e *StarfieldEngine) Name() string { return "starfield" }

func (e *StarfieldEngine) Mounted() bool { return e.mounted }

// Mount sizes the surface to the viewport, scatters a fresh set of stars
// and schedules the first frame.
func (e *StarfieldEngine) Mount() error {
	if e.mounted {
		return ErrAlreadyMounted
	}
	log := e.deps.logger()
	if e.deps.Surface == nil {
		log.Debug("no drawing surface, starfield disabled")
		return nil
	}

	w, h := e.deps.Viewport.Size()
	sizeSurface(e.deps.Surface, w, h)

	cam := camera.New(float64(w), float64(h), e.cfg.Depth)
	e.field = systems.NewStarfield(e.cfg.Count, e.cfg.Speed, cam, e.deps.Rng)

	e.track(e.deps.Viewport.OnResize(e.resize))
	e.mounted = true
	e.frame = e.deps.Scheduler.Request(e.animate)

	log.Info("starfield mounted", "stars", e.field.Count(), "width", w, "height", h)
	return nil
}

// Unmount cancels the pending frame and detaches the resize listener.
func (e *StarfieldEngine) Unmount() {
	if !e.mounted {
		return
	}
	e.release(e.deps.Scheduler)
	e.deps.logger().Info("starfield unmounted")
}

// SetSpeed changes the depth units travelled per tick.
func (e *StarfieldEngine) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	e.cfg.Speed = speed
	if e.field != nil {
		e.field.Speed = speed
	}
}

// Speed returns the current depth units per tick.
func (e *StarfieldEngine) Speed() float64 {
	return e.cfg.Speed
}

// Field exposes the simulation state. Nil before the first mount.
func (e *StarfieldEngine) Field() *systems.Starfield {
	return e.field
}

func (e *StarfieldEngine) resize(w, h int) {
	sizeSurface(e.deps.Surface, w, h)
	e.field.Camera().Resize(float64(w), float64(h))
}

func (e *StarfieldEngine) animate() {
	perf := e.deps.Perf

	perf.StartPhase(telemetry.PhaseStarfieldUpdate)
	respawned := e.field.Update()
	e.deps.Collector.RecordStarRespawns(respawned)

	perf.StartPhase(telemetry.PhaseStarfieldDraw)
	s := e.deps.Surface
	s.Begin()
	e.renderer.Draw(s, e.field.Stars, e.field.Camera())
	s.End()
	perf.EndPhase()

	e.frame = e.deps.Scheduler.Request(e.animate)
}
