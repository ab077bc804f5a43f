package game

// Handle identifies a pending frame request. The zero Handle is never issued.
type Handle uint64

// Scheduler delivers one-shot "next frame" callbacks. An animation keeps
// running by requesting the following frame from inside its callback.
type Scheduler interface {
	Request(cb func()) Handle
	Cancel(h Handle)
}

type frameRequest struct {
	handle Handle
	cb     func()
}

// FrameLoop is a Scheduler pumped by its owner once per display refresh.
// Callbacks requested while a frame is running wait for the next Frame.
type FrameLoop struct {
	pending []*frameRequest
	running []*frameRequest
	next    Handle
	frames  uint64
}

// NewFrameLoop creates an idle frame loop.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// Request queues cb for the next frame.
func (l *FrameLoop) Request(cb func()) Handle {
	l.next++
	l.pending = append(l.pending, &frameRequest{handle: l.next, cb: cb})
	return l.next
}

// Cancel drops a queued callback. Cancelling an unknown or already fired
// handle is a no-op.
func (l *FrameLoop) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for _, r := range l.running {
		if r.handle == h {
			r.cb = nil
		}
	}
	for i, r := range l.pending {
		if r.handle == h {
			r.cb = nil
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
}

// Frame runs every callback queued before this call and returns how many ran.
func (l *FrameLoop) Frame() int {
	batch := l.pending
	l.pending = nil
	l.running = batch

	ran := 0
	for _, r := range batch {
		cb := r.cb
		if cb == nil {
			continue
		}
		r.cb = nil
		cb()
		ran++
	}

	l.running = nil
	l.frames++
	return ran
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Frames returns how many frames have been pumped.
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}
