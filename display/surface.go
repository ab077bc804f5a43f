// Package display binds canvas surfaces and host events to a raylib window.
package display

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/stardrift/canvas"
)

// Surface is a canvas.Surface backed by a raylib render texture. Each layer
// owns one texture; Present composites it into the window.
// The texture holds premultiplied alpha: draws between Begin and End and the
// final Present all use BlendAlphaPremultiply, so translucent strokes are
// weighted by their alpha exactly once.
// All methods must run on the thread that owns the GL context.
type Surface struct {
	target rl.RenderTexture2D
	w, h   int
	loaded bool
}

// NewSurface allocates a render texture of the given size.
func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.SetSize(w, h)
	return s
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

// SetSize reallocates the texture, which discards its contents.
func (s *Surface) SetSize(w, h int) {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
	s.w, s.h = w, h
	if w <= 0 || h <= 0 {
		return
	}
	s.target = rl.LoadRenderTexture(int32(w), int32(h))
	s.loaded = true

	rl.BeginTextureMode(s.target)
	rl.ClearBackground(rl.Blank)
	rl.EndTextureMode()
}

func (s *Surface) Begin() {
	if s.loaded {
		rl.BeginTextureMode(s.target)
		rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	}
}

func (s *Surface) End() {
	if s.loaded {
		rl.EndBlendMode()
		rl.EndTextureMode()
	}
}

func (s *Surface) Clear() {
	rl.ClearBackground(rl.Blank)
}

func (s *Surface) Fill(c color.NRGBA) {
	c.A = 0xff
	rl.ClearBackground(toColor(c))
}

func (s *Surface) Line(x0, y0, x1, y1, width float32, c color.NRGBA) {
	if width <= 0 || c.A == 0 {
		return
	}
	pad := width
	x0, y0, x1, y1, ok := canvas.ClipSegment(x0, y0, x1, y1, -pad, -pad, float32(s.w)+pad, float32(s.h)+pad)
	if !ok {
		return
	}
	rl.DrawLineEx(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y1}, width, toColor(c))
}

func (s *Surface) Circle(x, y, r float32, c color.NRGBA, glow canvas.Glow) {
	if !canvas.CircleVisible(x, y, r+glow.Blur, s.w, s.h) {
		return
	}

	if glow.Blur > 0 && glow.Color.A > 0 {
		inner := glow.Color
		inner.A = uint8(float32(glow.Color.A) * float32(c.A) / 255 * 0.5)
		outer := glow.Color
		outer.A = 0
		rl.DrawCircleGradient(int32(x), int32(y), r+glow.Blur, toColor(inner), toColor(outer))
	}

	if r > 0 && c.A > 0 {
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, r, toColor(c))
	}
}

// Present draws the layer into the current frame buffer at (x, y).
// Call between rl.BeginDrawing and rl.EndDrawing.
func (s *Surface) Present(x, y float32) {
	if !s.loaded {
		return
	}
	// Render textures are stored bottom-up
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(s.w), Height: -float32(s.h)}
	rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	rl.DrawTextureRec(s.target.Texture, src, rl.Vector2{X: x, Y: y}, rl.White)
	rl.EndBlendMode()
}

// Unload releases the GPU texture.
func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
}

// toColor converts a straight-alpha colour to the premultiplied form the
// texture stores.
func toColor(c color.NRGBA) rl.Color {
	p := canvas.Premultiply(c)
	return rl.Color{R: p.R, G: p.G, B: p.B, A: p.A}
}
