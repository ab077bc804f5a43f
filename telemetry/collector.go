package telemetry

// Collector accumulates engine events within frame windows and produces
// WindowStats. A nil Collector ignores every record call.
type Collector struct {
	windowDurationTicks int32
	frameTime           float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	starRespawns     int
	pointerMoves     int
	particlesSpawned int
	particlesExpired int
	particlesDropped int

	liveSamples []float64
	liveMax     int
}

// NewCollector creates a new stats collector.
// windowTicks: frames per window
// frameTime: seconds per frame (used for tick-to-time conversion)
func NewCollector(windowTicks int, frameTime float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: int32(windowTicks),
		frameTime:           frameTime,
		liveSamples:         make([]float64, 0, windowTicks),
	}
}

// RecordStarRespawns records stars that crossed the near plane.
func (c *Collector) RecordStarRespawns(n int) {
	if c == nil {
		return
	}
	c.starRespawns += n
}

// RecordPointerMove records one pointer event and the particles it produced.
func (c *Collector) RecordPointerMove(spawned, dropped int) {
	if c == nil {
		return
	}
	c.pointerMoves++
	c.particlesSpawned += spawned
	c.particlesDropped += dropped
}

// RecordTrailTick records particles expired this frame and the live count after.
func (c *Collector) RecordTrailTick(expired, live int) {
	if c == nil {
		return
	}
	c.particlesExpired += expired
	c.liveSamples = append(c.liveSamples, float64(live))
	if live > c.liveMax {
		c.liveMax = live
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	if c == nil {
		return false
	}
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, stars int) WindowStats {
	mean, std, p50, p90 := ComputeLiveStats(c.liveSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		WallTimeSec:     float64(currentTick) * c.frameTime,

		Stars:        stars,
		StarRespawns: c.starRespawns,

		PointerMoves:     c.pointerMoves,
		ParticlesSpawned: c.particlesSpawned,
		ParticlesExpired: c.particlesExpired,
		ParticlesDropped: c.particlesDropped,

		LiveMean: mean,
		LiveStd:  std,
		LiveP50:  p50,
		LiveP90:  p90,
		LiveMax:  c.liveMax,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.starRespawns = 0
	c.pointerMoves = 0
	c.particlesSpawned = 0
	c.particlesExpired = 0
	c.particlesDropped = 0
	c.liveSamples = c.liveSamples[:0]
	c.liveMax = 0

	return stats
}
