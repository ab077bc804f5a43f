package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/stardrift/canvas"
	"github.com/pthm-cable/stardrift/config"
	"github.com/pthm-cable/stardrift/display"
	"github.com/pthm-cable/stardrift/game"
	"github.com/pthm-cable/stardrift/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Render into an in-memory raster without a window")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N frames (0 = unlimited)")
	snapshot := flag.String("snapshot", "", "Write the final headless frame to this PNG path")
	pointerPath := flag.String("pointer-path", "circle", "Synthetic pointer in headless mode: circle or none")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	var err error
	if *headless {
		err = runHeadless(cfg, opts, *maxTicks, *pointerPath, *snapshot)
	} else {
		err = runWindow(cfg, opts, *maxTicks)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func runHeadless(cfg *config.Config, opts game.Options, maxTicks int, pathName, snapshot string) error {
	path, ok := game.ParsePointerPath(pathName, cfg.Screen.Width, cfg.Screen.Height)
	if !ok {
		slog.Warn("unknown pointer path, using none", "path", pathName)
		path = game.NoPath
	}
	if maxTicks <= 0 {
		// Unbounded headless runs are only useful with output
		if opts.OutputDir == "" && snapshot == "" {
			maxTicks = cfg.Screen.TargetFPS * 10
		}
	}

	background := canvas.NewRaster(cfg.Screen.Width, cfg.Screen.Height)
	overlay := canvas.NewRaster(cfg.Screen.Width, cfg.Screen.Height)

	g, err := game.NewGame(cfg, opts, game.Surfaces{Background: background, Overlay: overlay})
	if err != nil {
		return err
	}
	defer g.Unload()

	if err := g.Mount(); err != nil {
		return err
	}

	slog.Info("starting headless run",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"pointer_path", pathName,
	)

	for maxTicks <= 0 || int(g.Tick()) < maxTicks {
		path.Drive(g.Host(), g.Tick())
		g.Step()
	}
	slog.Info("max ticks reached", "tick", g.Tick())

	if snapshot != "" {
		if err := canvas.SavePNG(snapshot, background, overlay); err != nil {
			return err
		}
		slog.Info("snapshot written", "path", snapshot)
	}
	return nil
}

func runWindow(cfg *config.Config, opts game.Options, maxTicks int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	// Sized by the engines on mount
	background := display.NewSurface(0, 0)
	defer background.Unload()
	overlay := display.NewSurface(0, 0)
	defer overlay.Unload()

	g, err := game.NewGame(cfg, opts, game.Surfaces{Background: background, Overlay: overlay})
	if err != nil {
		return err
	}
	defer g.Unload()

	if err := g.Mount(); err != nil {
		return err
	}

	layers := ui.NewLayerRegistry(cfg.Starfield.Enabled, cfg.Trail.Enabled)
	content := ui.NewContentLayer(cfg.Content)
	panel := ui.NewControlsPanel(10, 10, 240)
	hud := ui.NewHUD()

	for !rl.WindowShouldClose() {
		display.PollInput(g.Host())
		handleKeys(g, layers, panel)

		g.Step()
		g.RecordFrame()

		w, h := g.Host().Size()
		sw, sh := int32(w), int32(h)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Blank)

		if layers.IsEnabled(ui.LayerStarfield) {
			background.Present(0, 0)
		}
		if layers.IsEnabled(ui.LayerContent) {
			content.Draw(sw, sh)
		}
		if layers.IsEnabled(ui.LayerTrail) {
			overlay.Present(0, 0)
		}
		if layers.IsEnabled(ui.LayerHUD) {
			hud.Draw(hudData(g, sw))
		}

		change := panel.Draw(layers, g.Starfield().Speed())
		for _, id := range change.Toggled {
			applyLayer(g, layers, id, layers.IsEnabled(id))
		}
		if change.SpeedChanged {
			g.SetStarSpeed(change.Speed)
		}
		if !panel.IsVisible() {
			hud.DrawControls(sh, "[F1] Controls  [S] Starfield  [T] Trail  [C] Content  [H] Stats")
		}

		rl.EndDrawing()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return nil
}

func handleKeys(g *game.Game, layers *ui.LayerRegistry, panel *ui.ControlsPanel) {
	if rl.IsKeyPressed(rl.KeyF1) {
		panel.Toggle()
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := layers.HandleKeyPress(key); ok {
			applyLayer(g, layers, id, on)
		}
	}
}

// applyLayer mounts or unmounts the engine behind a layer toggle. On failure
// the layer reverts to its previous state.
func applyLayer(g *game.Game, layers *ui.LayerRegistry, id ui.LayerID, on bool) {
	var err error
	switch id {
	case ui.LayerStarfield:
		err = g.SetStarfieldEnabled(on)
	case ui.LayerTrail:
		err = g.SetTrailEnabled(on)
	}
	if err != nil {
		slog.Error("toggling layer", "layer", id, "error", err)
		layers.SetEnabled(id, !on)
	}
}

func hudData(g *game.Game, screenWidth int32) ui.HUDData {
	data := ui.HUDData{
		FPS:         rl.GetFPS(),
		Tick:        g.Tick(),
		Speed:       g.Starfield().Speed(),
		ParticleCap: config.Cfg().Trail.Cap,
		ScreenWidth: screenWidth,
	}
	if f := g.Starfield().Field(); f != nil && g.Starfield().Mounted() {
		data.Stars = f.Count()
	}
	if p := g.Trail().Particles(); p != nil && g.Trail().Mounted() {
		data.Particles = p.Count()
	}
	return data
}
