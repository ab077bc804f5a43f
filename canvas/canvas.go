// Package canvas defines the 2D drawing surface the animation engines paint into.
package canvas

import (
	"image/color"
	"math"
)

// Glow describes a soft halo drawn behind a filled shape.
type Glow struct {
	Color color.NRGBA
	Blur  float32
}

// NoGlow disables the halo.
var NoGlow = Glow{}

// Surface is a raster target with a minimal set of draw primitives.
// Draw calls are only valid between Begin and End.
type Surface interface {
	// Size returns the current pixel dimensions.
	Size() (w, h int)
	// SetSize resizes the backing store. Contents are undefined afterwards.
	SetSize(w, h int)

	Begin()
	End()

	// Clear resets every pixel to transparent.
	Clear()
	// Fill paints every pixel with an opaque colour.
	Fill(c color.NRGBA)
	// Line strokes a segment of the given width.
	Line(x0, y0, x1, y1, width float32, c color.NRGBA)
	// Circle fills a disc, optionally with a glow behind it.
	Circle(x, y, r float32, c color.NRGBA, glow Glow)
}

// Finite reports whether every coordinate is a usable number.
func Finite(vals ...float32) bool {
	for _, v := range vals {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// ClipSegment clips a segment to the rectangle [minX,maxX]x[minY,maxY]
// (Liang-Barsky). ok is false when the segment lies fully outside.
func ClipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float32) (cx0, cy0, cx1, cy1 float32, ok bool) {
	if !Finite(x0, y0, x1, y1) {
		return 0, 0, 0, 0, false
	}
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		float64(x0 - minX),
		float64(maxX - x0),
		float64(y0 - minY),
		float64(maxY - y0),
	}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	cx0 = float32(float64(x0) + t0*dx)
	cy0 = float32(float64(y0) + t0*dy)
	cx1 = float32(float64(x0) + t1*dx)
	cy1 = float32(float64(y0) + t1*dy)
	return cx0, cy0, cx1, cy1, true
}

// CircleVisible reports whether a disc of radius r at (x, y) can touch a w x h surface.
func CircleVisible(x, y, r float32, w, h int) bool {
	if !Finite(x, y, r) || r <= 0 {
		return false
	}
	return x+r >= 0 && y+r >= 0 && x-r <= float32(w) && y-r <= float32(h)
}

// Premultiply scales c's colour channels by its alpha. GPU surfaces that
// blend with BlendAlphaPremultiply take vertex colours in this form.
func Premultiply(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
