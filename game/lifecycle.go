package game

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/stardrift/canvas"
	"github.com/pthm-cable/stardrift/telemetry"
)

// ErrAlreadyMounted is returned when Mount is called on a running engine.
var ErrAlreadyMounted = errors.New("engine already mounted")

// Engine is a self-contained animation with a mount/unmount lifecycle.
type Engine interface {
	Name() string
	Mount() error
	Unmount()
	Mounted() bool
}

// Deps are the capabilities an engine is mounted against.
type Deps struct {
	Scheduler Scheduler
	Viewport  Viewport
	Pointer   Pointer        // Trail only; nil disables spawning
	Surface   canvas.Surface // nil means unavailable and Mount does nothing
	Rng       *rand.Rand

	Perf      *telemetry.PerfCollector // optional
	Collector *telemetry.Collector     // optional
	Logger    *slog.Logger             // defaults to slog.Default()
}

func (d *Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// lifecycle holds the frame handle and listener registrations shared by
// both engines. Everything registered here is released by release.
type lifecycle struct {
	mounted     bool
	frame       Handle
	unsubscribe []func()
}

func (l *lifecycle) track(unsub func()) {
	l.unsubscribe = append(l.unsubscribe, unsub)
}

func (l *lifecycle) release(s Scheduler) {
	s.Cancel(l.frame)
	l.frame = 0
	for _, u := range l.unsubscribe {
		u()
	}
	l.unsubscribe = nil
	l.mounted = false
}

// sizeSurface matches the surface to the viewport. Repeated calls with the
// same size do nothing.
func sizeSurface(s canvas.Surface, w, h int) bool {
	if cw, ch := s.Size(); cw == w && ch == h {
		return false
	}
	s.SetSize(w, h)
	return true
}
