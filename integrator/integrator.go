// Package integrator implements the Monte Carlo estimator that turns a ray
// into a radiance sample: emission plus a single recursive scatter term,
// depth-capped, with no Russian roulette and no next-event estimation.
package integrator

import (
	"math/rand"

	pmath "pathtracer/math"
	"pathtracer/scene"
)

// RayColor recursively estimates the radiance arriving along r: it adds the
// hit material's emission to the attenuated radiance of the scattered ray,
// stopping at depth 0 or when nothing is hit (returning the scene's
// background color) or when the material absorbs (doesn't scatter).
func RayColor(rng *rand.Rand, r pmath.Ray, s *scene.Scene, depth int) pmath.Vec3 {
	if depth <= 0 {
		return pmath.Vec3{}
	}

	rec, hit := s.Hit(r, 0.001, 1e9)
	if !hit {
		return s.Background
	}

	emitted := rec.Material.Emitted(rec.U, rec.V, rec.Point)

	result, scattered := rec.Material.Scatter(rng, r, rec.Point, rec.Normal, rec.FrontFace, rec.U, rec.V)
	if !scattered {
		return emitted
	}

	incoming := RayColor(rng, result.Scattered, s, depth-1)
	return emitted.Add(result.Attenuation.MulVec(incoming))
}
