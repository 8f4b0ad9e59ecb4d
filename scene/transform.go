package scene

import (
	"math"

	pmath "pathtracer/math"
)

// Translate offsets a Hittable by a fixed vector, transforming rays into the
// wrapped object's local space and translating the resulting hit point back.
type Translate struct {
	Object Hittable
	Offset pmath.Vec3
}

func NewTranslate(object Hittable, offset pmath.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

func (t *Translate) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	movedRay := pmath.NewRay(r.Origin.Sub(t.Offset), r.Direction, r.Time)
	rec, ok := t.Object.Hit(movedRay, tMin, tMax)
	if !ok {
		return HitRecord{}, false
	}
	rec.Point = rec.Point.Add(t.Offset)
	rec.SetFaceNormal(movedRay, rec.Normal)
	return rec, true
}

func (t *Translate) BoundingBox(time0, time1 float64) (AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return AABB{}, false
	}
	return AABB{Min: box.Min.Add(t.Offset), Max: box.Max.Add(t.Offset)}, true
}

// RotateY rotates a Hittable about the Y axis by the angle, in degrees,
// passed to NewRotateY.
type RotateY struct {
	Object         Hittable
	sinTheta       float64
	cosTheta       float64
	bbox           AABB
	hasBox         bool
}

func NewRotateY(object Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	bbox, hasBox := object.BoundingBox(0, 1)
	rot := &RotateY{Object: object, sinTheta: sinTheta, cosTheta: cosTheta, hasBox: hasBox}
	if !hasBox {
		return rot
	}

	min := pmath.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := pmath.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*bbox.Max.X + float64(1-i)*bbox.Min.X
				y := float64(j)*bbox.Max.Y + float64(1-j)*bbox.Min.Y
				z := float64(k)*bbox.Max.Z + float64(1-k)*bbox.Min.Z

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				tester := pmath.Vec3{X: newX, Y: y, Z: newZ}

				min.X = math.Min(min.X, tester.X)
				min.Y = math.Min(min.Y, tester.Y)
				min.Z = math.Min(min.Z, tester.Z)
				max.X = math.Max(max.X, tester.X)
				max.Y = math.Max(max.Y, tester.Y)
				max.Z = math.Max(max.Z, tester.Z)
			}
		}
	}

	rot.bbox = AABB{Min: min, Max: max}
	return rot
}

func (rot *RotateY) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	origin := pmath.Vec3{
		X: rot.cosTheta*r.Origin.X - rot.sinTheta*r.Origin.Z,
		Y: r.Origin.Y,
		Z: rot.sinTheta*r.Origin.X + rot.cosTheta*r.Origin.Z,
	}
	direction := pmath.Vec3{
		X: rot.cosTheta*r.Direction.X - rot.sinTheta*r.Direction.Z,
		Y: r.Direction.Y,
		Z: rot.sinTheta*r.Direction.X + rot.cosTheta*r.Direction.Z,
	}
	rotatedRay := pmath.NewRay(origin, direction, r.Time)

	rec, ok := rot.Object.Hit(rotatedRay, tMin, tMax)
	if !ok {
		return HitRecord{}, false
	}

	point := pmath.Vec3{
		X: rot.cosTheta*rec.Point.X + rot.sinTheta*rec.Point.Z,
		Y: rec.Point.Y,
		Z: -rot.sinTheta*rec.Point.X + rot.cosTheta*rec.Point.Z,
	}
	normal := pmath.Vec3{
		X: rot.cosTheta*rec.Normal.X + rot.sinTheta*rec.Normal.Z,
		Y: rec.Normal.Y,
		Z: -rot.sinTheta*rec.Normal.X + rot.cosTheta*rec.Normal.Z,
	}

	rec.Point = point
	rec.SetFaceNormal(rotatedRay, normal)
	return rec, true
}

func (rot *RotateY) BoundingBox(time0, time1 float64) (AABB, bool) {
	return rot.bbox, rot.hasBox
}
