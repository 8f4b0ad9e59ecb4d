package scene

import (
	pmath "pathtracer/math"
	"pathtracer/materials"
)

// XYRect is an axis-aligned rectangle in the plane z=K, bounded by
// [X0,X1]x[Y0,Y1].
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          materials.Material
}

func NewXYRect(x0, x1, y0, y1, k float64, mat materials.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

func (rect *XYRect) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	t := (rect.K - r.Origin.Z) / r.Direction.Z
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	y := r.Origin.Y + t*r.Direction.Y
	if x < rect.X0 || x > rect.X1 || y < rect.Y0 || y > rect.Y1 {
		return HitRecord{}, false
	}

	rec := HitRecord{
		T:        t,
		U:        (x - rect.X0) / (rect.X1 - rect.X0),
		V:        (y - rect.Y0) / (rect.Y1 - rect.Y0),
		Material: rect.Material,
		Point:    r.At(t),
	}
	rec.SetFaceNormal(r, pmath.Vec3{X: 0, Y: 0, Z: 1})
	return rec, true
}

// BoundingBox pads the zero-thickness plane by a small epsilon so it never
// degenerates in the BVH's slab test.
func (rect *XYRect) BoundingBox(time0, time1 float64) (AABB, bool) {
	const pad = 0.0001
	return AABB{
		Min: pmath.Vec3{X: rect.X0, Y: rect.Y0, Z: rect.K - pad},
		Max: pmath.Vec3{X: rect.X1, Y: rect.Y1, Z: rect.K + pad},
	}, true
}

// XZRect is an axis-aligned rectangle in the plane y=K.
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          materials.Material
}

func NewXZRect(x0, x1, z0, z1, k float64, mat materials.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

func (rect *XZRect) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	t := (rect.K - r.Origin.Y) / r.Direction.Y
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	if x < rect.X0 || x > rect.X1 || z < rect.Z0 || z > rect.Z1 {
		return HitRecord{}, false
	}

	rec := HitRecord{
		T:        t,
		U:        (x - rect.X0) / (rect.X1 - rect.X0),
		V:        (z - rect.Z0) / (rect.Z1 - rect.Z0),
		Material: rect.Material,
		Point:    r.At(t),
	}
	rec.SetFaceNormal(r, pmath.Vec3{X: 0, Y: 1, Z: 0})
	return rec, true
}

func (rect *XZRect) BoundingBox(time0, time1 float64) (AABB, bool) {
	const pad = 0.0001
	return AABB{
		Min: pmath.Vec3{X: rect.X0, Y: rect.K - pad, Z: rect.Z0},
		Max: pmath.Vec3{X: rect.X1, Y: rect.K + pad, Z: rect.Z1},
	}, true
}

// YZRect is an axis-aligned rectangle in the plane x=K.
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          materials.Material
}

func NewYZRect(y0, y1, z0, z1, k float64, mat materials.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

func (rect *YZRect) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	t := (rect.K - r.Origin.X) / r.Direction.X
	if t < tMin || t > tMax {
		return HitRecord{}, false
	}
	y := r.Origin.Y + t*r.Direction.Y
	z := r.Origin.Z + t*r.Direction.Z
	if y < rect.Y0 || y > rect.Y1 || z < rect.Z0 || z > rect.Z1 {
		return HitRecord{}, false
	}

	rec := HitRecord{
		T:        t,
		U:        (y - rect.Y0) / (rect.Y1 - rect.Y0),
		V:        (z - rect.Z0) / (rect.Z1 - rect.Z0),
		Material: rect.Material,
		Point:    r.At(t),
	}
	rec.SetFaceNormal(r, pmath.Vec3{X: 1, Y: 0, Z: 0})
	return rec, true
}

func (rect *YZRect) BoundingBox(time0, time1 float64) (AABB, bool) {
	const pad = 0.0001
	return AABB{
		Min: pmath.Vec3{X: rect.K - pad, Y: rect.Y0, Z: rect.Z0},
		Max: pmath.Vec3{X: rect.K + pad, Y: rect.Y1, Z: rect.Z1},
	}, true
}
