package scene

import (
	"math"
	"math/rand"

	pmath "pathtracer/math"
)

// Camera is a thin-lens pinhole camera with depth-of-field and a shutter
// interval for motion-blur sampling. NewCamera builds everything up front;
// GetRay reads it back to cast jittered, time-stamped rays.
type Camera struct {
	origin          pmath.Vec3
	lowerLeftCorner pmath.Vec3
	horizontal      pmath.Vec3
	vertical        pmath.Vec3
	u, v, w         pmath.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera builds a camera looking from lookFrom toward lookAt, with the
// given up vector, vertical field of view in degrees, width/height in
// pixels (aspect = width/height, not width/width), aperture diameter,
// focus distance, and shutter interval.
func NewCamera(lookFrom, lookAt, up pmath.Vec3, vfovDegrees float64, width, height int, aperture, focusDist, time0, time1 float64) *Camera {
	aspectRatio := float64(width) / float64(height)

	theta := vfovDegrees * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Sub(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Mul(viewportWidth * focusDist)
	vertical := v.Mul(viewportHeight * focusDist)
	lowerLeftCorner := origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(w.Mul(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		time0:           time0,
		time1:           time1,
	}
}

// GetRay casts a ray through normalized viewport coordinates (s, t) in
// [0,1]^2, jittered across the lens aperture and stamped with a random
// shutter time in [time0, time1].
func (c *Camera) GetRay(rng *rand.Rand, s, t float64) pmath.Ray {
	rd := pmath.RandomInUnitDisk(rng).Mul(c.lensRadius)
	offset := c.u.Mul(rd.X).Add(c.v.Mul(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(c.origin).
		Sub(offset)

	time := c.time0
	if c.time1 > c.time0 {
		time = pmath.RandomInRange(rng, c.time0, c.time1)
	}

	return pmath.NewRay(c.origin.Add(offset), direction, time)
}
