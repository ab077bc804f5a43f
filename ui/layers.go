package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LayerID identifies a toggleable layer of the page.
type LayerID string

const (
	LayerStarfield LayerID = "starfield"
	LayerContent   LayerID = "content"
	LayerTrail     LayerID = "trail"
	LayerHUD       LayerID = "hud"
)

// LayerDescriptor defines a layer that can be toggled from the keyboard or
// the controls panel.
type LayerDescriptor struct {
	ID       LayerID
	Name     string
	Key      int32  // Keyboard key to toggle (0 = no key)
	KeyLabel string // Key label for display
}

// LayerRegistry tracks which layers are shown, in back-to-front order.
type LayerRegistry struct {
	descriptors []LayerDescriptor
	byID        map[LayerID]LayerDescriptor
	enabled     map[LayerID]bool
}

// NewLayerRegistry creates a registry with the page layers. The two engine
// layers start in the given state; content is on and the HUD is off.
func NewLayerRegistry(starfield, trail bool) *LayerRegistry {
	reg := &LayerRegistry{
		byID:    make(map[LayerID]LayerDescriptor),
		enabled: make(map[LayerID]bool),
	}
	reg.Register(LayerDescriptor{ID: LayerStarfield, Name: "Starfield", Key: rl.KeyS, KeyLabel: "S"}, starfield)
	reg.Register(LayerDescriptor{ID: LayerContent, Name: "Content", Key: rl.KeyC, KeyLabel: "C"}, true)
	reg.Register(LayerDescriptor{ID: LayerTrail, Name: "Cursor trail", Key: rl.KeyT, KeyLabel: "T"}, trail)
	reg.Register(LayerDescriptor{ID: LayerHUD, Name: "Stats", Key: rl.KeyH, KeyLabel: "H"}, false)
	return reg
}

// Register adds a layer to the registry.
func (r *LayerRegistry) Register(desc LayerDescriptor, enabled bool) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = enabled
}

// Toggle flips a layer and returns its new state.
func (r *LayerRegistry) Toggle(id LayerID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets a layer's state.
func (r *LayerRegistry) SetEnabled(id LayerID, enabled bool) {
	if _, ok := r.byID[id]; ok {
		r.enabled[id] = enabled
	}
}

// IsEnabled returns whether a layer is shown.
func (r *LayerRegistry) IsEnabled(id LayerID) bool {
	return r.enabled[id]
}

// All returns all layers in registration order.
func (r *LayerRegistry) All() []LayerDescriptor {
	return r.descriptors
}

// HandleKeyPress toggles the layer bound to key.
// Returns the layer ID and new state if a toggle occurred.
func (r *LayerRegistry) HandleKeyPress(key int32) (LayerID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}
