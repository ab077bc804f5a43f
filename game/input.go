package game

import "math"

// PointerPath yields a synthetic pointer position per frame, for headless runs.
type PointerPath func(tick int32) (x, y float64, ok bool)

// CirclePath sweeps the pointer around the viewport centre once every
// period frames.
func CirclePath(w, h int, period int32) PointerPath {
	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Min(cx, cy) * 0.6
	if period < 1 {
		period = 1
	}
	return func(tick int32) (float64, float64, bool) {
		a := 2 * math.Pi * float64(tick%period) / float64(period)
		return cx + radius*math.Cos(a), cy + radius*math.Sin(a), true
	}
}

// NoPath never moves the pointer.
func NoPath(int32) (float64, float64, bool) {
	return 0, 0, false
}

// ParsePointerPath maps a flag value to a path.
func ParsePointerPath(name string, w, h int) (PointerPath, bool) {
	switch name {
	case "circle":
		return CirclePath(w, h, 240), true
	case "none", "":
		return NoPath, true
	}
	return nil, false
}

// Drive feeds the host one synthetic pointer event for this tick.
func (p PointerPath) Drive(h *Host, tick int32) {
	if x, y, ok := p(tick); ok {
		h.PointerMove(x, y)
	}
}
