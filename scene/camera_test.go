package scene

import (
	"math/rand"
	"testing"

	pmath "pathtracer/math"
)

func TestCameraAspectRatioUsesWidthOverHeight(t *testing.T) {
	// A camera built with a non-square width/height must not stretch the
	// horizontal viewport vector by the square width/width ratio.
	camWide := NewCamera(pmath.Vec3Zero, pmath.NewVec3(0, 0, -1), pmath.Vec3Up, 90, 400, 200, 0, 1, 0, 0)
	camSquare := NewCamera(pmath.Vec3Zero, pmath.NewVec3(0, 0, -1), pmath.Vec3Up, 90, 200, 200, 0, 1, 0, 0)

	rng := rand.New(rand.NewSource(1))
	wideRay := camWide.GetRay(rng, 1, 0.5)
	squareRay := camSquare.GetRay(rng, 1, 0.5)

	if wideRay.Direction.X <= squareRay.Direction.X {
		t.Errorf("Camera: expected a wider aspect ratio to widen the horizontal extent; wide=%v square=%v",
			wideRay.Direction.X, squareRay.Direction.X)
	}
}

func TestCameraShutterTimeWithinInterval(t *testing.T) {
	cam := NewCamera(pmath.Vec3Zero, pmath.NewVec3(0, 0, -1), pmath.Vec3Up, 40, 200, 100, 0, 1, 0.25, 0.75)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		r := cam.GetRay(rng, rng.Float64(), rng.Float64())
		if r.Time < 0.25 || r.Time > 0.75 {
			t.Fatalf("Camera.GetRay: expected time in [0.25,0.75], got %v", r.Time)
		}
	}
}

func TestCameraDegenerateShutterIsFixedTime(t *testing.T) {
	cam := NewCamera(pmath.Vec3Zero, pmath.NewVec3(0, 0, -1), pmath.Vec3Up, 40, 200, 100, 0, 1, 0.5, 0.5)
	rng := rand.New(rand.NewSource(4))
	r := cam.GetRay(rng, 0.5, 0.5)
	if r.Time != 0.5 {
		t.Errorf("Camera.GetRay: expected fixed time 0.5, got %v", r.Time)
	}
}
