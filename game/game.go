package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/stardrift/canvas"
	"github.com/pthm-cable/stardrift/config"
	"github.com/pthm-cable/stardrift/telemetry"
)

// Surface is the drawing target type engines are mounted with.
type Surface = canvas.Surface

// Game owns the host event hub, the frame loop and both engines.
type Game struct {
	cfg *config.Config

	host *Host
	loop *FrameLoop

	starfield *StarfieldEngine
	trail     *TrailEngine

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	logStats bool
	tick     int32
}

// NewGame wires both engines to a fresh host and frame loop. Engines are
// not mounted until Mount.
func NewGame(cfg *config.Config, opts Options, surfaces Surfaces) (*Game, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	if output != nil {
		slog.Info("writing run output", "dir", output.Dir())
	}

	g := &Game{
		cfg:       cfg,
		host:      NewHost(cfg.Screen.Width, cfg.Screen.Height),
		loop:      NewFrameLoop(),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector: telemetry.NewCollector(cfg.Telemetry.LogInterval, cfg.Derived.FrameTime),
		output:    output,
		logStats:  opts.LogStats,
	}

	base := Deps{
		Scheduler: g.loop,
		Viewport:  g.host,
		Perf:      g.perf,
		Collector: g.collector,
	}

	// Separate streams so toggling one engine never perturbs the other
	sd := base
	sd.Surface = surfaces.Background
	sd.Rng = rand.New(rand.NewSource(opts.Seed))
	sd.Logger = slog.Default().With("engine", "starfield")
	g.starfield = NewStarfieldEngine(cfg.Starfield, sd)

	td := base
	td.Surface = surfaces.Overlay
	td.Pointer = g.host
	td.Rng = rand.New(rand.NewSource(opts.Seed + 1))
	td.Logger = slog.Default().With("engine", "trail")
	g.trail = NewTrailEngine(cfg.Trail, td)

	return g, nil
}

// Mount mounts every engine enabled in the config.
func (g *Game) Mount() error {
	if g.cfg.Starfield.Enabled {
		if err := g.starfield.Mount(); err != nil {
			return fmt.Errorf("mounting starfield: %w", err)
		}
	}
	if g.cfg.Trail.Enabled {
		if err := g.trail.Mount(); err != nil {
			return fmt.Errorf("mounting trail: %w", err)
		}
	}
	return nil
}

// Step pumps one display frame: every engine ticks once.
func (g *Game) Step() {
	g.perf.StartTick()
	g.loop.Frame()
	g.tick++

	if g.collector.ShouldFlush(g.tick) {
		g.perf.StartPhase(telemetry.PhaseTelemetry)
		g.flushTelemetry()
	}
	g.perf.EndTick()
}

// RecordFrame records display frame timing for FPS reporting.
func (g *Game) RecordFrame() {
	g.perf.RecordFrame()
}

// SetStarfieldEnabled mounts or unmounts the starfield.
func (g *Game) SetStarfieldEnabled(on bool) error {
	return setEnabled(g.starfield, on)
}

// SetTrailEnabled mounts or unmounts the cursor trail.
func (g *Game) SetTrailEnabled(on bool) error {
	return setEnabled(g.trail, on)
}

func setEnabled(e Engine, on bool) error {
	switch {
	case on && !e.Mounted():
		return e.Mount()
	case !on && e.Mounted():
		e.Unmount()
	}
	return nil
}

// SetStarSpeed changes starfield speed live.
func (g *Game) SetStarSpeed(speed float64) {
	g.starfield.SetSpeed(speed)
}

// Host returns the event hub the window loop feeds.
func (g *Game) Host() *Host { return g.host }

// Loop returns the frame scheduler.
func (g *Game) Loop() *FrameLoop { return g.loop }

// Starfield returns the starfield engine.
func (g *Game) Starfield() *StarfieldEngine { return g.starfield }

// Trail returns the trail engine.
func (g *Game) Trail() *TrailEngine { return g.trail }

// Tick returns the number of frames stepped.
func (g *Game) Tick() int32 { return g.tick }

// Unload unmounts both engines and closes output files.
func (g *Game) Unload() {
	g.starfield.Unmount()
	g.trail.Unmount()
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
