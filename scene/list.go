package scene

import pmath "pathtracer/math"

// HittableList is a flat composite of Hittables, hit by testing each member
// and keeping the closest. It is never handed to the orchestrator directly
// — BuildBVH always wraps the final scene list in a BVHNode — but it's the
// natural container for a Box's six faces and for intermediate scene
// assembly before the BVH build.
type HittableList struct {
	Objects []Hittable
}

func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

func (l *HittableList) Add(h Hittable) {
	l.Objects = append(l.Objects, h)
}

func (l *HittableList) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

func (l *HittableList) BoundingBox(time0, time1 float64) (AABB, bool) {
	if len(l.Objects) == 0 {
		return AABB{}, false
	}

	var result AABB
	first := true
	for _, obj := range l.Objects {
		box, ok := obj.BoundingBox(time0, time1)
		if !ok {
			return AABB{}, false
		}
		if first {
			result = box
			first = false
		} else {
			result = SurroundingBox(result, box)
		}
	}
	return result, true
}
