package canvas

import "image/color"

// OpKind identifies a recorded draw call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFill
	OpLine
	OpCircle
)

// Op is one recorded draw call.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float32 // Line endpoints, or circle centre in X0/Y0
	Width          float32 // Line width or circle radius
	Color          color.NRGBA
	Glow           Glow
}

// Recorder is a Surface that keeps the draw calls of the most recent frame.
// Useful in tests and as a null surface.
type Recorder struct {
	w, h int

	Ops     []Op // Calls since the last Begin
	Frames  int  // Completed Begin/End pairs
	Resizes int  // SetSize calls
	Total   int  // Draw calls across all frames

	open bool
}

// NewRecorder creates a recorder surface of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{w: w, h: h}
}

func (r *Recorder) Size() (int, int) { return r.w, r.h }

func (r *Recorder) SetSize(w, h int) {
	r.w, r.h = w, h
	r.Resizes++
}

func (r *Recorder) Begin() {
	r.Ops = r.Ops[:0]
	r.open = true
}

func (r *Recorder) End() {
	if r.open {
		r.Frames++
	}
	r.open = false
}

func (r *Recorder) Clear() { r.record(Op{Kind: OpClear}) }

func (r *Recorder) Fill(c color.NRGBA) { r.record(Op{Kind: OpFill, Color: c}) }

func (r *Recorder) Line(x0, y0, x1, y1, width float32, c color.NRGBA) {
	r.record(Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

func (r *Recorder) Circle(x, y, rad float32, c color.NRGBA, glow Glow) {
	r.record(Op{Kind: OpCircle, X0: x, Y0: y, Width: rad, Color: c, Glow: glow})
}

// Count returns the number of recorded ops of the given kind in the last frame.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for i := range r.Ops {
		if r.Ops[i].Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) record(op Op) {
	r.Ops = append(r.Ops, op)
	r.Total++
}
