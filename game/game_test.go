package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/stardrift/canvas"
	"github.com/pthm-cable/stardrift/config"
)

func newTestGame(t *testing.T, cfg *config.Config, opts Options) (*Game, *canvas.Recorder, *canvas.Recorder) {
	t.Helper()
	bg := canvas.NewRecorder(300, 150)
	overlay := canvas.NewRecorder(300, 150)
	g, err := NewGame(cfg, opts, Surfaces{Background: bg, Overlay: overlay})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	t.Cleanup(g.Unload)
	if err := g.Mount(); err != nil {
		t.Fatalf("mount: %v", err)
	}
	return g, bg, overlay
}

func TestGameStepsBothEngines(t *testing.T) {
	g, bg, overlay := newTestGame(t, config.Default(), Options{Seed: 1})

	for i := 0; i < 10; i++ {
		g.Step()
	}

	if g.Tick() != 10 {
		t.Errorf("expected tick 10, got %d", g.Tick())
	}
	if bg.Frames != 10 || overlay.Frames != 10 {
		t.Errorf("expected 10 frames per layer, got background=%d overlay=%d", bg.Frames, overlay.Frames)
	}
	if w, h := bg.Size(); w != 1280 || h != 720 {
		t.Errorf("expected background sized to viewport, got %dx%d", w, h)
	}
}

// TestGameRasterFrameTime runs both engines on full-size rasters with a moving
// pointer. Each shape rasterises only its own bounds, so a frame stays far
// below the bound even with every star and particle drawn.
func TestGameRasterFrameTime(t *testing.T) {
	const (
		frames   = 30
		maxFrame = 500 * time.Millisecond
	)

	cfg := config.Default()
	bg := canvas.NewRaster(cfg.Screen.Width, cfg.Screen.Height)
	overlay := canvas.NewRaster(cfg.Screen.Width, cfg.Screen.Height)
	g, err := NewGame(cfg, Options{Seed: 7}, Surfaces{Background: bg, Overlay: overlay})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	t.Cleanup(g.Unload)
	if err := g.Mount(); err != nil {
		t.Fatalf("mount: %v", err)
	}

	path := CirclePath(cfg.Screen.Width, cfg.Screen.Height, 60)
	var slowest time.Duration
	for i := 0; i < frames; i++ {
		path.Drive(g.Host(), g.Tick())
		start := time.Now()
		g.Step()
		slowest = max(slowest, time.Since(start))
	}

	if w, h := bg.Size(); w != 1280 || h != 720 {
		t.Fatalf("expected 1280x720 background, got %dx%d", w, h)
	}
	if g.Trail().Particles().Count() == 0 {
		t.Fatal("expected live trail particles")
	}
	if slowest > maxFrame {
		t.Errorf("slowest frame took %v, want under %v", slowest, maxFrame)
	}
}

func TestGameToggleEngines(t *testing.T) {
	g, bg, overlay := newTestGame(t, config.Default(), Options{Seed: 1})
	g.Step()

	if err := g.SetTrailEnabled(false); err != nil {
		t.Fatalf("disable trail: %v", err)
	}
	if g.Trail().Mounted() {
		t.Fatal("expected trail unmounted")
	}
	if g.Loop().Pending() != 1 {
		t.Errorf("expected only the starfield frame pending, got %d", g.Loop().Pending())
	}

	g.Host().PointerMove(50, 50)
	g.Step()
	if overlay.Frames != 1 {
		t.Errorf("expected overlay frozen at 1 frame, got %d", overlay.Frames)
	}
	if bg.Frames != 2 {
		t.Errorf("expected starfield still running, got %d frames", bg.Frames)
	}

	// Enabling a running engine is a no-op
	if err := g.SetStarfieldEnabled(true); err != nil {
		t.Errorf("enable running starfield: %v", err)
	}
	if err := g.SetTrailEnabled(true); err != nil {
		t.Fatalf("enable trail: %v", err)
	}
	if g.Loop().Pending() != 2 {
		t.Errorf("expected both frames pending, got %d", g.Loop().Pending())
	}
}

func TestGameSeedDeterministic(t *testing.T) {
	a, _, _ := newTestGame(t, config.Default(), Options{Seed: 42})
	b, _, _ := newTestGame(t, config.Default(), Options{Seed: 42})

	for i := 0; i < 20; i++ {
		a.Host().PointerMove(float64(i), float64(i))
		b.Host().PointerMove(float64(i), float64(i))
		a.Step()
		b.Step()
	}

	sa, sb := a.Starfield().Field().Stars, b.Starfield().Field().Stars
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("star %d differs between runs with the same seed", i)
		}
	}
	pa, pb := a.Trail().Particles().Particles, b.Trail().Particles().Particles
	if len(pa) != len(pb) {
		t.Fatalf("particle counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs between runs with the same seed", i)
		}
	}
}

func TestGameDisabledInConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Trail.Enabled = false

	g, _, overlay := newTestGame(t, cfg, Options{Seed: 1})
	g.Step()

	if g.Trail().Mounted() {
		t.Error("expected trail not mounted when disabled in config")
	}
	if overlay.Frames != 0 {
		t.Errorf("expected no overlay frames, got %d", overlay.Frames)
	}
}

func TestGameWritesOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Telemetry.LogInterval = 5

	g, _, _ := newTestGame(t, cfg, Options{Seed: 1, OutputDir: dir})
	for i := 0; i < 12; i++ {
		g.Host().PointerMove(float64(i*3), 10)
		g.Step()
	}
	g.Unload()

	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("read telemetry: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus windows ending at ticks 5 and 10
	if len(lines) != 3 {
		t.Errorf("expected 3 lines, got %d:\n%s", len(lines), data)
	}
}
