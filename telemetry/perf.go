package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame.
const (
	PhaseStarfieldUpdate = "starfield_update"
	PhaseStarfieldDraw   = "starfield_draw"
	PhaseTrailUpdate     = "trail_update"
	PhaseTrailDraw       = "trail_draw"
	PhaseTelemetry       = "telemetry"
)

// phaseOrder fixes log output order.
var phaseOrder = []string{
	PhaseStarfieldUpdate, PhaseStarfieldDraw,
	PhaseTrailUpdate, PhaseTrailDraw,
	PhaseTelemetry,
}

type frameSample struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector times frames and their phases over a ring of the most
// recent frames. Every recording method is a no-op on a nil collector, so
// engines can run without one.
type PerfCollector struct {
	ring  []frameSample
	next  int
	count int

	frameStart time.Time
	phases     map[string]time.Duration
	phase      string
	phaseStart time.Time

	lastPresent time.Time
	presentGap  time.Duration

	now func() time.Time
}

// NewPerfCollector creates a collector averaging over window frames.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		ring:   make([]frameSample, window),
		phases: make(map[string]time.Duration),
		now:    time.Now,
	}
}

// StartTick begins timing a frame.
func (p *PerfCollector) StartTick() {
	if p == nil {
		return
	}
	p.frameStart = p.now()
	p.phases = make(map[string]time.Duration, len(phaseOrder))
	p.phase = ""
}

// StartPhase closes the running phase, if any, and opens the named one.
func (p *PerfCollector) StartPhase(name string) {
	if p == nil {
		return
	}
	now := p.now()
	p.closePhase(now)
	p.phase = name
	p.phaseStart = now
}

// EndPhase closes the running phase without opening another.
func (p *PerfCollector) EndPhase() {
	if p == nil {
		return
	}
	p.closePhase(p.now())
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase == "" {
		return
	}
	p.phases[p.phase] += now.Sub(p.phaseStart)
	p.phase = ""
}

// EndTick closes the frame and stores it in the ring.
func (p *PerfCollector) EndTick() {
	if p == nil {
		return
	}
	now := p.now()
	p.closePhase(now)

	p.ring[p.next] = frameSample{total: now.Sub(p.frameStart), phases: p.phases}
	p.next = (p.next + 1) % len(p.ring)
	p.count = min(p.count+1, len(p.ring))
}

// RecordFrame marks a presented display frame, for FPS.
func (p *PerfCollector) RecordFrame() {
	if p == nil {
		return
	}
	now := p.now()
	if !p.lastPresent.IsZero() {
		p.presentGap = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats summarises the frames currently in the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration
	TickJitter      time.Duration // Population standard deviation

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // Share of the average frame

	TicksPerSecond float64

	FrameDuration time.Duration // Gap between the last two presented frames
	FPS           float64
}

// Stats computes the window summary.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.presentGap,
	}
	if p.presentGap > 0 {
		s.FPS = float64(time.Second) / float64(p.presentGap)
	}
	if p.count == 0 {
		return s
	}

	totals := make([]float64, p.count)
	phaseSum := make(map[string]time.Duration)
	for i, f := range p.ring[:p.count] {
		totals[i] = float64(f.total)
		for name, d := range f.phases {
			phaseSum[name] += d
		}
	}

	mean, std := stat.PopMeanStdDev(totals, nil)
	s.AvgTickDuration = time.Duration(mean)
	s.TickJitter = time.Duration(std)
	s.MinTickDuration = time.Duration(floats.Min(totals))
	s.MaxTickDuration = time.Duration(floats.Max(totals))

	sort.Float64s(totals)
	s.P95TickDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, totals, nil))

	for name, sum := range phaseSum {
		avg := sum / time.Duration(p.count)
		s.PhaseAvg[name] = avg
		if mean > 0 {
			s.PhasePct[name] = float64(avg) / mean * 100
		}
	}
	if mean > 0 {
		s.TicksPerSecond = float64(time.Second) / mean
	}
	return s
}

// LogStats logs a compact perf line.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"p95_tick_us", s.P95TickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"jitter_us", s.TickJitter.Microseconds(),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range phaseOrder {
		if pct := s.PhasePct[phase]; pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Int64("jitter_us", s.TickJitter.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd          int32   `csv:"window_end"`
	AvgTickUS          int64   `csv:"avg_tick_us"`
	MinTickUS          int64   `csv:"min_tick_us"`
	MaxTickUS          int64   `csv:"max_tick_us"`
	P95TickUS          int64   `csv:"p95_tick_us"`
	JitterUS           int64   `csv:"jitter_us"`
	TicksPerSec        float64 `csv:"ticks_per_sec"`
	FPS                float64 `csv:"fps"`
	StarfieldUpdatePct float64 `csv:"starfield_update_pct"`
	StarfieldDrawPct   float64 `csv:"starfield_draw_pct"`
	TrailUpdatePct     float64 `csv:"trail_update_pct"`
	TrailDrawPct       float64 `csv:"trail_draw_pct"`
	TelemetryPct       float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats into a CSV row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:          windowEnd,
		AvgTickUS:          s.AvgTickDuration.Microseconds(),
		MinTickUS:          s.MinTickDuration.Microseconds(),
		MaxTickUS:          s.MaxTickDuration.Microseconds(),
		P95TickUS:          s.P95TickDuration.Microseconds(),
		JitterUS:           s.TickJitter.Microseconds(),
		TicksPerSec:        s.TicksPerSecond,
		FPS:                s.FPS,
		StarfieldUpdatePct: s.PhasePct[PhaseStarfieldUpdate],
		StarfieldDrawPct:   s.PhasePct[PhaseStarfieldDraw],
		TrailUpdatePct:     s.PhasePct[PhaseTrailUpdate],
		TrailDrawPct:       s.PhasePct[PhaseTrailDraw],
		TelemetryPct:       s.PhasePct[PhaseTelemetry],
	}
}
