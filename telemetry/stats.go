package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated engine activity for a window of frames.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	WallTimeSec     float64 `csv:"wall_time"`

	// Starfield
	Stars        int `csv:"stars"`
	StarRespawns int `csv:"star_respawns"`

	// Cursor trail events during window
	PointerMoves     int `csv:"pointer_moves"`
	ParticlesSpawned int `csv:"particles_spawned"`
	ParticlesExpired int `csv:"particles_expired"`
	ParticlesDropped int `csv:"particles_dropped"` // Evicted by the cap

	// Live particle distribution (sampled once per frame)
	LiveMean float64 `csv:"live_mean"`
	LiveStd  float64 `csv:"live_std"`
	LiveP50  float64 `csv:"live_p50"`
	LiveP90  float64 `csv:"live_p90"`
	LiveMax  int     `csv:"live_max"`
}

// ComputeLiveStats calculates mean, std, and percentiles from per-frame
// counts. Percentiles interpolate linearly between order statistics.
func ComputeLiveStats(values []float64) (mean, std, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)

	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("wall_time", s.WallTimeSec),
		slog.Int("stars", s.Stars),
		slog.Int("star_respawns", s.StarRespawns),
		slog.Int("pointer_moves", s.PointerMoves),
		slog.Int("particles_spawned", s.ParticlesSpawned),
		slog.Int("particles_expired", s.ParticlesExpired),
		slog.Int("particles_dropped", s.ParticlesDropped),
		slog.Float64("live_mean", s.LiveMean),
		slog.Float64("live_std", s.LiveStd),
		slog.Float64("live_p50", s.LiveP50),
		slog.Float64("live_p90", s.LiveP90),
		slog.Int("live_max", s.LiveMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
