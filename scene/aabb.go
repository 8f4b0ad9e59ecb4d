package scene

import (
	pmath "pathtracer/math"
)

// AABB is an axis-aligned bounding box tested with the standard slab
// method, used for BVH node bounds and primitive culling.
type AABB struct {
	Min, Max pmath.Vec3
}

// Hit runs the slab test, shrinking [tMin, tMax] against each axis in turn
// and rejecting as soon as the interval becomes empty.
func (b AABB) Hit(r pmath.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := component(r.Origin, axis)
		dir := component(r.Direction, axis)
		min := component(b.Min, axis)
		max := component(b.Max, axis)

		invD := 1.0 / dir
		t0 := (min - origin) * invD
		t1 := (max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func component(v pmath.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// SurroundingBox returns the smallest box containing both a and b, used
// when building interior BVH nodes.
func SurroundingBox(a, b AABB) AABB {
	small := pmath.Vec3{
		X: minF(a.Min.X, b.Min.X),
		Y: minF(a.Min.Y, b.Min.Y),
		Z: minF(a.Min.Z, b.Min.Z),
	}
	big := pmath.Vec3{
		X: maxF(a.Max.X, b.Max.X),
		Y: maxF(a.Max.Y, b.Max.Y),
		Z: maxF(a.Max.Z, b.Max.Z),
	}
	return AABB{Min: small, Max: big}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
