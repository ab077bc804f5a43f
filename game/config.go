package game

// Options holds run-level settings that are not part of the YAML config.
type Options struct {
	Seed      int64  // RNG seed for both engines
	LogStats  bool   // Emit perf and window stats via slog
	OutputDir string // CSV and config snapshot directory (empty = disabled)
}

// Surfaces are the two layers the engines paint into: the starfield behind
// page content and the trail overlay above it. Either may be nil.
type Surfaces struct {
	Background Surface
	Overlay    Surface
}
