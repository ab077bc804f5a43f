package display

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/stardrift/game"
)

// PollInput forwards this frame's window resize and pointer movement to the host.
func PollInput(h *game.Host) {
	if rl.IsWindowResized() {
		h.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	delta := rl.GetMouseDelta()
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	if !rl.IsCursorOnScreen() {
		return
	}
	pos := rl.GetMousePosition()
	h.PointerMove(float64(pos.X), float64(pos.Y))
}
