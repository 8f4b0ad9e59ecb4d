package scene

import (
	"testing"

	pmath "pathtracer/math"
	"pathtracer/materials"
)

func TestSphereHitCenterline(t *testing.T) {
	s := NewSphere(pmath.NewVec3(0, 0, -1), 0.5, materials.RedMaterial())
	r := pmath.NewRay(pmath.Vec3Zero, pmath.NewVec3(0, 0, -1), 0)

	rec, ok := s.Hit(r, 0, 1000)
	if !ok {
		t.Fatal("Sphere.Hit: expected a hit along the centerline")
	}
	if rec.T <= 0 || rec.T >= 1 {
		t.Errorf("Sphere.Hit: expected T in (0,1), got %v", rec.T)
	}
	if !rec.FrontFace {
		t.Error("Sphere.Hit: expected a front-face hit from outside the sphere")
	}
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(pmath.NewVec3(0, 0, -1), 0.5, materials.RedMaterial())
	r := pmath.NewRay(pmath.Vec3Zero, pmath.NewVec3(1, 1, 0), 0)

	if _, ok := s.Hit(r, 0, 1000); ok {
		t.Error("Sphere.Hit: expected a ray pointing away from the sphere to miss")
	}
}

func TestMovingSphereCenterAt(t *testing.T) {
	ms := NewMovingSphere(pmath.Vec3Zero, pmath.NewVec3(0, 10, 0), 0, 1, 0.2, materials.RedMaterial())
	if ms.CenterAt(0) != pmath.Vec3Zero {
		t.Errorf("MovingSphere.CenterAt(0): expected origin, got %v", ms.CenterAt(0))
	}
	if ms.CenterAt(1) != pmath.NewVec3(0, 10, 0) {
		t.Errorf("MovingSphere.CenterAt(1): expected (0,10,0), got %v", ms.CenterAt(1))
	}
	mid := ms.CenterAt(0.5)
	if mid != pmath.NewVec3(0, 5, 0) {
		t.Errorf("MovingSphere.CenterAt(0.5): expected (0,5,0), got %v", mid)
	}
}

func TestMovingSphereBoundingBoxSpansBothEndpoints(t *testing.T) {
	ms := NewMovingSphere(pmath.Vec3Zero, pmath.NewVec3(0, 10, 0), 0, 1, 0.2, materials.RedMaterial())
	box, ok := ms.BoundingBox(0, 1)
	if !ok {
		t.Fatal("MovingSphere.BoundingBox: expected ok")
	}
	if box.Min.Y > -0.2+1e-9 || box.Max.Y < 10.2-1e-9 {
		t.Errorf("MovingSphere.BoundingBox: expected envelope covering both endpoints, got %v", box)
	}
}
