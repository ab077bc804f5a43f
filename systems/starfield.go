package systems

import (
	"math/rand"

	"github.com/pthm-cable/stardrift/camera"
)

// Star is one point of the perspective starfield.
type Star struct {
	X, Y         float64 // Screen position after the last projection
	Z            float64 // Depth in (0, Depth]
	PrevX, PrevY float64 // Screen position one tick earlier
}

// Starfield advances a fixed set of stars toward the viewer.
type Starfield struct {
	Stars []Star
	Speed float64 // Depth units per tick

	cam *camera.Camera
	rng *rand.Rand
}

// NewStarfield creates count stars scattered across the camera viewport.
func NewStarfield(count int, speed float64, cam *camera.Camera, rng *rand.Rand) *Starfield {
	s := &Starfield{
		Stars: make([]Star, count),
		Speed: speed,
		cam:   cam,
		rng:   rng,
	}
	for i := range s.Stars {
		st := &s.Stars[i]
		st.X, st.Y = cam.RandomPoint(rng)
		st.Z = cam.RandomDepth(rng)
	}
	return s
}

// Update advances every star one tick.
// A star whose depth crosses the near plane respawns before projection, so
// it is projected from its fresh position in the same tick.
// Returns the number of stars respawned.
func (s *Starfield) Update() int {
	depth := s.cam.Depth
	respawned := 0
	for i := range s.Stars {
		st := &s.Stars[i]
		st.PrevX, st.PrevY = st.X, st.Y

		st.Z -= s.Speed
		if st.Z <= 0 {
			st.X, st.Y = s.cam.RandomPoint(s.rng)
			st.Z = depth
			respawned++
		}

		st.X, st.Y = s.cam.Project(st.X, st.Y, st.Z)
	}
	return respawned
}

// Camera returns the projection the field is bound to.
func (s *Starfield) Camera() *camera.Camera {
	return s.cam
}

// Count returns the number of stars.
func (s *Starfield) Count() int {
	return len(s.Stars)
}
