// Package camera provides viewport geometry and the perspective projection
// used by the starfield.
package camera

import "math/rand"

// Camera describes the viewport a field of points is projected onto.
// The eye sits on the viewport centre looking down +z; the projection plane
// is Depth units away, so a point at z == Depth projects onto itself.
type Camera struct {
	// Viewport dimensions (surface size)
	ViewportW, ViewportH float64

	// Depth of the far plane and focal distance
	Depth float64
}

// New creates a camera for a viewport of the given size.
func New(viewportW, viewportH, depth float64) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Depth:     depth,
	}
}

// Center returns the vanishing point in screen coordinates.
func (c *Camera) Center() (cx, cy float64) {
	return c.ViewportW / 2, c.ViewportH / 2
}

// Project scales a screen position away from the centre by Depth/z.
// Smaller z yields a larger displacement. z must be positive.
func (c *Camera) Project(x, y, z float64) (sx, sy float64) {
	cx, cy := c.Center()
	scale := c.Depth / z
	return (x-cx)*scale + cx, (y-cy)*scale + cy
}

// Nearness maps depth to [0, 1]: 0 at the far plane, 1 at the eye.
func (c *Camera) Nearness(z float64) float64 {
	n := 1 - z/c.Depth
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// RandomPoint returns a uniformly distributed point inside the viewport.
func (c *Camera) RandomPoint(rng *rand.Rand) (x, y float64) {
	return rng.Float64() * c.ViewportW, rng.Float64() * c.ViewportH
}

// RandomDepth returns a uniformly distributed depth in (0, Depth].
func (c *Camera) RandomDepth(rng *rand.Rand) float64 {
	return (1 - rng.Float64()) * c.Depth
}

// Resize updates viewport dimensions. Returns false when nothing changed.
func (c *Camera) Resize(viewportW, viewportH float64) bool {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return false
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	return true
}
