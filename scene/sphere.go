package scene

import (
	"math"

	pmath "pathtracer/math"
	"pathtracer/materials"
)

// Sphere is a static sphere centered at Center with the given Radius.
type Sphere struct {
	Center   pmath.Vec3
	Radius   float64
	Material materials.Material
}

func NewSphere(center pmath.Vec3, radius float64, mat materials.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, r, tMin, tMax)
}

func (s *Sphere) BoundingBox(time0, time1 float64) (AABB, bool) {
	radiusVec := pmath.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return AABB{Min: s.Center.Sub(radiusVec), Max: s.Center.Add(radiusVec)}, true
}

// MovingSphere linearly interpolates its center between Center0 at Time0
// and Center1 at Time1, sampled at the ray's own Time field.
type MovingSphere struct {
	Center0, Center1 pmath.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         materials.Material
}

func NewMovingSphere(center0, center1 pmath.Vec3, time0, time1, radius float64, mat materials.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// CenterAt returns the sphere's center at the given shutter time.
func (s *MovingSphere) CenterAt(time float64) pmath.Vec3 {
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Sub(s.Center0).Mul(t))
}

func (s *MovingSphere) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	return hitSphere(s.CenterAt(r.Time), s.Radius, s.Material, r, tMin, tMax)
}

func (s *MovingSphere) BoundingBox(time0, time1 float64) (AABB, bool) {
	radiusVec := pmath.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	box0 := AABB{Min: s.CenterAt(time0).Sub(radiusVec), Max: s.CenterAt(time0).Add(radiusVec)}
	box1 := AABB{Min: s.CenterAt(time1).Sub(radiusVec), Max: s.CenterAt(time1).Add(radiusVec)}
	return SurroundingBox(box0, box1), true
}

func hitSphere(center pmath.Vec3, radius float64, mat materials.Material, r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.LengthSqr()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSqr() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{T: root, Material: mat}
	rec.Point = r.At(root)
	outwardNormal := rec.Point.Sub(center).Div(radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	return rec, true
}

// sphereUV maps a point on the unit sphere to (u, v) in [0,1]^2.
func sphereUV(p pmath.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
