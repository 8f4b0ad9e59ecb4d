package scene

import (
	pmath "pathtracer/math"
	"pathtracer/materials"
)

// Box is a closed rectangular prism built from six axis-aligned faces.
type Box struct {
	Min, Max pmath.Vec3
	sides    *HittableList
}

func NewBox(min, max pmath.Vec3, mat materials.Material) *Box {
	sides := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)
	return &Box{Min: min, Max: max, sides: sides}
}

func (b *Box) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax)
}

func (b *Box) BoundingBox(time0, time1 float64) (AABB, bool) {
	return AABB{Min: b.Min, Max: b.Max}, true
}
