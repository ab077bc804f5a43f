package game

// Viewport reports the host window size and notifies on resize.
type Viewport interface {
	Size() (w, h int)
	OnResize(fn func(w, h int)) (unsubscribe func())
}

// Pointer delivers viewport-relative pointer movement.
type Pointer interface {
	OnPointerMove(fn func(x, y float64)) (unsubscribe func())
}

type listener[F any] struct {
	id int
	fn F
}

type listenerSet[F any] struct {
	next    int
	entries []listener[F]
}

func (s *listenerSet[F]) add(fn F) func() {
	s.next++
	id := s.next
	s.entries = append(s.entries, listener[F]{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *listenerSet[F]) remove(id int) {
	for i := range s.entries {
		if s.entries[i].id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// snapshot lets listeners unsubscribe while being notified.
func (s *listenerSet[F]) snapshot() []listener[F] {
	return append([]listener[F](nil), s.entries...)
}

// Host is the event hub engines subscribe to. The window loop, or a test,
// feeds it resize and pointer events.
type Host struct {
	w, h int

	resize listenerSet[func(w, h int)]
	move   listenerSet[func(x, y float64)]

	pointerX, pointerY float64
}

// NewHost creates a host with the given viewport size.
func NewHost(w, h int) *Host {
	return &Host{w: w, h: h}
}

func (h *Host) Size() (int, int) { return h.w, h.h }

func (h *Host) OnResize(fn func(w, h int)) func() { return h.resize.add(fn) }

func (h *Host) OnPointerMove(fn func(x, y float64)) func() { return h.move.add(fn) }

// Resize records a new viewport size and notifies listeners when it changed.
func (h *Host) Resize(w, hh int) {
	if w == h.w && hh == h.h {
		return
	}
	h.w, h.h = w, hh
	for _, l := range h.resize.snapshot() {
		l.fn(w, hh)
	}
}

// PointerMove notifies listeners of a pointer position.
func (h *Host) PointerMove(x, y float64) {
	h.pointerX, h.pointerY = x, y
	for _, l := range h.move.snapshot() {
		l.fn(x, y)
	}
}

// PointerPosition returns the last reported pointer position.
func (h *Host) PointerPosition() (x, y float64) {
	return h.pointerX, h.pointerY
}

// ResizeListeners returns the number of resize subscribers.
func (h *Host) ResizeListeners() int { return len(h.resize.entries) }

// PointerListeners returns the number of pointer subscribers.
func (h *Host) PointerListeners() int { return len(h.move.entries) }
