package camera

import (
	"math"
	"math/rand"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(800, 600, 1000)

	cx, cy := cam.Center()
	if cx != 400 || cy != 300 {
		t.Errorf("expected centre (400, 300), got (%f, %f)", cx, cy)
	}
}

func TestProjectFarPlaneIsIdentity(t *testing.T) {
	cam := New(800, 600, 1000)

	sx, sy := cam.Project(123, 456, 1000)
	if math.Abs(sx-123) > 1e-9 || math.Abs(sy-456) > 1e-9 {
		t.Errorf("expected (123, 456), got (%f, %f)", sx, sy)
	}
}

func TestProjectPushesOutward(t *testing.T) {
	cam := New(800, 600, 1000)

	testCases := []struct {
		x, y, z    float64
		wantX, wantY float64
	}{
		{500, 300, 500, 600, 300}, // 100 right of centre doubles
		{400, 200, 250, 400, -100}, // 100 above centre, x4
		{400, 300, 1, 400, 300},    // centre never moves
	}

	for _, tc := range testCases {
		sx, sy := cam.Project(tc.x, tc.y, tc.z)
		if math.Abs(sx-tc.wantX) > 1e-9 || math.Abs(sy-tc.wantY) > 1e-9 {
			t.Errorf("Project(%v, %v, %v) = (%f, %f), want (%f, %f)",
				tc.x, tc.y, tc.z, sx, sy, tc.wantX, tc.wantY)
		}
	}
}

func TestNearness(t *testing.T) {
	cam := New(800, 600, 1000)

	if got := cam.Nearness(1000); got != 0 {
		t.Errorf("expected 0 at far plane, got %f", got)
	}
	if got := cam.Nearness(250); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("expected 0.75, got %f", got)
	}
	if got := cam.Nearness(-5); got != 1 {
		t.Errorf("expected clamp to 1, got %f", got)
	}
}

func TestRandomPointAndDepthBounds(t *testing.T) {
	cam := New(800, 600, 1000)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		x, y := cam.RandomPoint(rng)
		if x < 0 || x >= 800 || y < 0 || y >= 600 {
			t.Fatalf("point (%f, %f) outside viewport", x, y)
		}
		z := cam.RandomDepth(rng)
		if z <= 0 || z > 1000 {
			t.Fatalf("depth %f outside (0, 1000]", z)
		}
	}
}

func TestResize(t *testing.T) {
	cam := New(800, 600, 1000)

	if cam.Resize(800, 600) {
		t.Error("resize to same size should report no change")
	}
	if !cam.Resize(1200, 800) {
		t.Error("resize to new size should report change")
	}
	cx, cy := cam.Center()
	if cx != 600 || cy != 400 {
		t.Errorf("expected centre (600, 400) after resize, got (%f, %f)", cx, cy)
	}
}
