package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
)

const (
	circleSegments = 24
	glowRings      = 3
)

// Raster is an in-memory Surface backed by an RGBA image. Used for headless
// runs and snapshots.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
	pts []point
}

type point struct{ x, y float32 }

// NewRaster creates a transparent raster of the given size.
func NewRaster(w, h int) *Raster {
	r := &Raster{}
	r.SetSize(w, h)
	return r
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.z = vector.NewRasterizer(w, h)
}

func (r *Raster) Begin() {}
func (r *Raster) End()   {}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear() {
	clear(r.img.Pix)
}

func (r *Raster) Fill(c color.NRGBA) {
	c.A = 0xff
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) Line(x0, y0, x1, y1, width float32, c color.NRGBA) {
	if width <= 0 || c.A == 0 {
		return
	}
	w, h := r.Size()
	pad := width
	x0, y0, x1, y1, ok := ClipSegment(x0, y0, x1, y1, -pad, -pad, float32(w)+pad, float32(h)+pad)
	if !ok {
		return
	}

	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	length := math.Hypot(dx, dy)
	if length == 0 {
		r.disc(x0, y0, width/2, c)
		return
	}
	// Perpendicular half-width offset
	nx := float32(-dy / length * float64(width) / 2)
	ny := float32(dx / length * float64(width) / 2)

	r.pts = append(r.pts[:0],
		point{x0 + nx, y0 + ny},
		point{x1 + nx, y1 + ny},
		point{x1 - nx, y1 - ny},
		point{x0 - nx, y0 - ny},
	)
	r.fill(c)
}

func (r *Raster) Circle(x, y, rad float32, c color.NRGBA, glow Glow) {
	w, h := r.Size()
	if !CircleVisible(x, y, rad+glow.Blur, w, h) {
		return
	}

	// Canvas-style shadow approximation: rings fading outwards, opacity
	// scaled by the shape's own alpha.
	if glow.Blur > 0 && glow.Color.A > 0 {
		base := float64(glow.Color.A) * float64(c.A) / 255
		for i := glowRings; i >= 1; i-- {
			gc := glow.Color
			gc.A = uint8(base * 0.25 / float64(i))
			if gc.A == 0 {
				continue
			}
			r.disc(x, y, rad+glow.Blur*float32(i)/glowRings, gc)
		}
	}

	r.disc(x, y, rad, c)
}

func (r *Raster) disc(x, y, rad float32, c color.NRGBA) {
	if rad <= 0 || c.A == 0 {
		return
	}
	r.pts = r.pts[:0]
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		r.pts = append(r.pts, point{x + rad*float32(math.Cos(a)), y + rad*float32(math.Sin(a))})
	}
	r.fill(c)
}

// fill rasterises the closed polygon in r.pts. The rasterizer only covers
// the polygon's bounding box clipped to the image, so cost scales with the
// shape's area rather than the surface's.
func (r *Raster) fill(c color.NRGBA) {
	if len(r.pts) < 3 {
		return
	}
	minX, minY := r.pts[0].x, r.pts[0].y
	maxX, maxY := minX, minY
	for _, p := range r.pts[1:] {
		minX, maxX = min(minX, p.x), max(maxX, p.x)
		minY, maxY = min(minY, p.y), max(maxY, p.y)
	}

	box := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	).Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.MoveTo(r.pts[0].x-ox, r.pts[0].y-oy)
	for _, p := range r.pts[1:] {
		r.z.LineTo(p.x-ox, p.y-oy)
	}
	r.z.ClosePath()
	r.z.Draw(r.img, box, image.NewUniform(c), box.Min)
}

// Composite draws layers bottom to top into a new image sized like the first layer.
func Composite(layers ...*Raster) *image.RGBA {
	if len(layers) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	out := image.NewRGBA(layers[0].img.Bounds())
	for _, l := range layers {
		draw.Draw(out, out.Bounds(), l.img, image.Point{}, draw.Over)
	}
	return out
}

// SavePNG composites the layers and writes them to path.
func SavePNG(path string, layers ...*Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, Composite(layers...)); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return f.Close()
}
