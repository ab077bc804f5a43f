package canvas

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"
)

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float32
		wantOK         bool
		want           [4]float32
	}{
		{
			name:   "inside untouched",
			x0: 10, y0: 10, x1: 20, y1: 30,
			wantOK: true,
			want:   [4]float32{10, 10, 20, 30},
		},
		{
			name:   "crosses right edge",
			x0: 50, y0: 50, x1: 150, y1: 50,
			wantOK: true,
			want:   [4]float32{50, 50, 100, 50},
		},
		{
			name:   "fully outside",
			x0: 150, y0: 10, x1: 200, y1: 20,
			wantOK: false,
		},
		{
			name:   "infinite endpoint",
			x0: 50, y0: 50, x1: float32(math.Inf(1)), y1: 50,
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := ClipSegment(tc.x0, tc.y0, tc.x1, tc.y1, 0, 0, 100, 100)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			got := [4]float32{x0, y0, x1, y1}
			for i := range got {
				if math.Abs(float64(got[i]-tc.want[i])) > 1e-4 {
					t.Errorf("got %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func TestCircleVisible(t *testing.T) {
	if !CircleVisible(-1, 50, 2, 100, 100) {
		t.Error("circle overlapping left edge should be visible")
	}
	if CircleVisible(-10, 50, 2, 100, 100) {
		t.Error("circle left of surface should not be visible")
	}
	if CircleVisible(50, 50, 0, 100, 100) {
		t.Error("zero radius circle should not be visible")
	}
	if CircleVisible(float32(math.NaN()), 50, 2, 100, 100) {
		t.Error("NaN centre should not be visible")
	}
}

func TestRecorderFrames(t *testing.T) {
	r := NewRecorder(800, 600)

	r.Begin()
	r.Fill(color.NRGBA{A: 255})
	r.Line(0, 0, 10, 10, 1, color.NRGBA{R: 255, A: 255})
	r.Circle(5, 5, 2, color.NRGBA{G: 255, A: 255}, NoGlow)
	r.End()

	if r.Frames != 1 {
		t.Errorf("expected 1 frame, got %d", r.Frames)
	}
	if len(r.Ops) != 3 || r.Count(OpCircle) != 1 {
		t.Errorf("unexpected ops %+v", r.Ops)
	}

	r.Begin()
	r.Clear()
	r.End()

	if len(r.Ops) != 1 || r.Ops[0].Kind != OpClear {
		t.Errorf("expected ops reset per frame, got %+v", r.Ops)
	}
	if r.Total != 4 {
		t.Errorf("expected 4 total ops, got %d", r.Total)
	}

	r.SetSize(1200, 800)
	if w, h := r.Size(); w != 1200 || h != 800 || r.Resizes != 1 {
		t.Errorf("unexpected size %dx%d after %d resizes", w, h, r.Resizes)
	}
}

func TestRasterFillAndClear(t *testing.T) {
	r := NewRaster(4, 4)

	r.Fill(color.NRGBA{R: 10, G: 10, B: 15, A: 255})
	if got := r.Image().RGBAAt(2, 2); got != (color.RGBA{R: 10, G: 10, B: 15, A: 255}) {
		t.Errorf("unexpected fill pixel %v", got)
	}

	r.Clear()
	if got := r.Image().RGBAAt(2, 2); got.A != 0 {
		t.Errorf("expected transparent after clear, got %v", got)
	}
}

func TestRasterCircle(t *testing.T) {
	r := NewRaster(20, 20)
	r.Circle(10, 10, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, NoGlow)

	if got := r.Image().RGBAAt(10, 10); got.A < 250 {
		t.Errorf("expected opaque centre, got %v", got)
	}
	if got := r.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("expected untouched corner, got %v", got)
	}
}

func TestRasterGlowExtendsCircle(t *testing.T) {
	r := NewRaster(40, 40)
	glow := Glow{Color: color.NRGBA{R: 0, G: 212, B: 255, A: 255}, Blur: 8}
	r.Circle(20, 20, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, glow)

	// Outside the core but within the halo
	if got := r.Image().RGBAAt(26, 20); got.A == 0 {
		t.Error("expected glow beyond the disc radius")
	}
}

func TestRasterLineOffscreenIgnored(t *testing.T) {
	r := NewRaster(10, 10)
	r.Line(100, 100, 200, 200, 2, color.NRGBA{R: 255, A: 255})
	r.Line(5, 5, float32(math.Inf(1)), 5, 2, color.NRGBA{R: 255, A: 255})

	for _, v := range r.Image().Pix {
		if v != 0 {
			t.Fatal("expected no pixels drawn")
		}
	}
}

// TestRasterShapesClippedAtEdges covers shapes whose bounds extend past the
// raster: the visible part is painted and nothing outside the shape is.
func TestRasterShapesClippedAtEdges(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	tests := []struct {
		name    string
		draw    func(r *Raster)
		painted []image.Point
		clear   []image.Point
	}{
		{
			name:    "circle over top-left corner",
			draw:    func(r *Raster) { r.Circle(0, 0, 5, white, NoGlow) },
			painted: []image.Point{{0, 0}, {2, 1}},
			clear:   []image.Point{{10, 10}, {19, 0}},
		},
		{
			name:    "circle over bottom-right corner",
			draw:    func(r *Raster) { r.Circle(20, 20, 5, white, NoGlow) },
			painted: []image.Point{{19, 19}, {17, 18}},
			clear:   []image.Point{{0, 0}, {10, 10}},
		},
		{
			name:    "line crossing the raster",
			draw:    func(r *Raster) { r.Line(-10, 10, 30, 10, 2, white) },
			painted: []image.Point{{0, 9}, {10, 10}, {19, 10}},
			clear:   []image.Point{{10, 2}, {10, 17}},
		},
		{
			name:    "diagonal line",
			draw:    func(r *Raster) { r.Line(2, 2, 17, 17, 2, white) },
			painted: []image.Point{{3, 3}, {10, 10}, {16, 16}},
			clear:   []image.Point{{17, 2}, {2, 17}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRaster(20, 20)
			tt.draw(r)
			for _, p := range tt.painted {
				if got := r.Image().RGBAAt(p.X, p.Y); got.A < 128 {
					t.Errorf("expected pixel %v painted, got %v", p, got)
				}
			}
			for _, p := range tt.clear {
				if got := r.Image().RGBAAt(p.X, p.Y); got.A != 0 {
					t.Errorf("expected pixel %v untouched, got %v", p, got)
				}
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	bottom := NewRaster(8, 8)
	bottom.Fill(color.NRGBA{B: 255, A: 255})
	top := NewRaster(8, 8)
	top.Circle(4, 4, 2, color.NRGBA{R: 255, A: 255}, NoGlow)

	out := Composite(bottom, top)
	if got := out.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("expected bottom layer at corner, got %v", got)
	}
	if got := out.RGBAAt(4, 4); got.R < 200 {
		t.Errorf("expected top layer at centre, got %v", got)
	}

	if err := SavePNG(filepath.Join(t.TempDir(), "snap.png"), bottom, top); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}

func TestPremultiply(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.RGBA
	}{
		{"opaque unchanged", color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0f, A: 0xff}, color.RGBA{R: 0x0a, G: 0x0a, B: 0x0f, A: 0xff}},
		{"transparent is zero", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0}, color.RGBA{}},
		{"half white", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}},
		{"faded glow", color.NRGBA{R: 0x00, G: 0xd4, B: 0xff, A: 51}, color.RGBA{R: 0, G: 42, B: 51, A: 51}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Premultiply(tt.in); got != tt.want {
				t.Errorf("Premultiply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestPremultiplyCompositesOnce checks that a translucent colour drawn into
// a cleared layer and then presented over a background matches drawing it
// straight onto that background.
func TestPremultiplyCompositesOnce(t *testing.T) {
	c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
	const bg = 0x40

	// One premultiplied draw into a transparent layer: src + 0*(1-a)
	layer := Premultiply(c)

	// Present: src + dst*(1-a)
	got := int(layer.R) + bg*(0xff-int(layer.A))/0xff

	// Straight alpha onto the background: c*a + dst*(1-a)
	want := int(c.R)*int(c.A)/0xff + bg*(0xff-int(c.A))/0xff

	if diff := got - want; diff < -1 || diff > 1 {
		t.Errorf("composited channel = %d, want %d", got, want)
	}
	for _, ch := range []uint8{layer.R, layer.G, layer.B} {
		if ch > layer.A {
			t.Errorf("premultiplied channel %d exceeds alpha %d", ch, layer.A)
		}
	}
}
