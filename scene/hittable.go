// Package scene implements the primitives, acceleration structure, and
// camera a render walks: spheres (static and moving), axis-aligned
// rectangles and boxes, translate/rotate wrappers, and the BVH that always
// sits between the orchestrator and the primitive list.
package scene

import (
	pmath "pathtracer/math"
	"pathtracer/materials"
)

// HitRecord describes a ray-primitive intersection.
type HitRecord struct {
	Point     pmath.Vec3
	Normal    pmath.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  materials.Material
}

// SetFaceNormal orients Normal against the incoming ray direction and
// records whether the hit was on the outward-facing side.
func (rec *HitRecord) SetFaceNormal(r pmath.Ray, outwardNormal pmath.Vec3) {
	rec.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by every scene primitive, transform wrapper, and
// the BVH node itself.
type Hittable interface {
	Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox(time0, time1 float64) (AABB, bool)
}
