package scene

import (
	"math/rand"
	"sort"

	pmath "pathtracer/math"
	"pathtracer/internal/rlog"
)

// BVHNode is a binary bounding-volume-hierarchy node: build picks a random
// axis, sorts the span of objects along it, and bisects; traversal shrinks
// tMax to the closest hit found so far so the right subtree only has to
// beat the left subtree's result.
type BVHNode struct {
	left, right Hittable
	box         AABB
}

// BuildBVH recursively partitions objects (a shallow copy is taken; the
// caller's slice is left untouched) into a BVHNode covering [time0, time1].
func BuildBVH(objects []Hittable, time0, time1 float64, rng *rand.Rand) *BVHNode {
	span := make([]Hittable, len(objects))
	copy(span, objects)
	return buildBVH(span, time0, time1, rng)
}

func buildBVH(objects []Hittable, time0, time1 float64, rng *rand.Rand) *BVHNode {
	node := &BVHNode{}
	axis := rng.Intn(3)

	switch len(objects) {
	case 1:
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		if boxCompare(objects[0], objects[1], axis, time0, time1) {
			node.left, node.right = objects[0], objects[1]
		} else {
			node.left, node.right = objects[1], objects[0]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return boxCompare(objects[i], objects[j], axis, time0, time1)
		})
		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid], time0, time1, rng)
		node.right = buildBVH(objects[mid:], time0, time1, rng)
	}

	boxLeft, okLeft := node.left.BoundingBox(time0, time1)
	boxRight, okRight := node.right.BoundingBox(time0, time1)
	if !okLeft || !okRight {
		rlog.Warnf("BVH: child missing a bounding box during construction; using the boxes that exist")
	}
	switch {
	case okLeft && okRight:
		node.box = SurroundingBox(boxLeft, boxRight)
	case okLeft:
		node.box = boxLeft
	case okRight:
		node.box = boxRight
	}
	return node
}

func boxCompare(a, b Hittable, axis int, time0, time1 float64) bool {
	boxA, _ := a.BoundingBox(time0, time1)
	boxB, _ := b.BoundingBox(time0, time1)
	return component(boxA.Min, axis) < component(boxB.Min, axis)
}

func (n *BVHNode) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	if !n.box.Hit(r, tMin, tMax) {
		return HitRecord{}, false
	}

	recLeft, hitLeft := n.left.Hit(r, tMin, tMax)
	if hitLeft {
		tMax = recLeft.T
	}
	recRight, hitRight := n.right.Hit(r, tMin, tMax)
	if hitRight {
		return recRight, true
	}
	if hitLeft {
		return recLeft, true
	}
	return HitRecord{}, false
}

func (n *BVHNode) BoundingBox(time0, time1 float64) (AABB, bool) {
	return n.box, true
}
