package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLayerRegistryDefaults(t *testing.T) {
	r := NewLayerRegistry(true, false)

	want := map[LayerID]bool{
		LayerStarfield: true,
		LayerContent:   true,
		LayerTrail:     false,
		LayerHUD:       false,
	}
	for id, on := range want {
		if r.IsEnabled(id) != on {
			t.Errorf("%s enabled = %v, want %v", id, r.IsEnabled(id), on)
		}
	}
	if got := len(r.All()); got != 4 {
		t.Errorf("expected 4 layers, got %d", got)
	}
}

func TestLayerRegistryHandleKeyPress(t *testing.T) {
	r := NewLayerRegistry(true, true)

	id, on, ok := r.HandleKeyPress(rl.KeyT)
	if !ok || id != LayerTrail || on {
		t.Errorf("expected trail toggled off, got %s %v %v", id, on, ok)
	}
	if _, _, ok := r.HandleKeyPress(rl.KeyQ); ok {
		t.Error("unbound key should not toggle")
	}
}

// TestLayerRegistrySetEnabledReverts mirrors a failed toggle being rolled back.
func TestLayerRegistrySetEnabledReverts(t *testing.T) {
	r := NewLayerRegistry(false, true)

	on := r.Toggle(LayerStarfield)
	if !on {
		t.Fatal("expected starfield toggled on")
	}
	r.SetEnabled(LayerStarfield, !on)
	if r.IsEnabled(LayerStarfield) {
		t.Error("expected starfield back off")
	}

	r.SetEnabled("unknown", true)
	if r.IsEnabled("unknown") {
		t.Error("unregistered layer should stay disabled")
	}
}
