package game

import "log/slog"

// flushTelemetry closes the current stats window, logs it when enabled and
// appends it to the CSV output.
func (g *Game) flushTelemetry() {
	stars := 0
	if f := g.starfield.Field(); f != nil && g.starfield.Mounted() {
		stars = f.Count()
	}
	window := g.collector.Flush(g.tick, stars)
	perf := g.perf.Stats()

	if g.logStats {
		window.LogStats()
		perf.LogStats()
	}

	if err := g.output.WriteTelemetry(window); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perf, g.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
