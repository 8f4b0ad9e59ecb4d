package math

// Ray is a parametric line Origin + t*Direction, carrying the shutter time
// at which it was cast so moving geometry can be sampled correctly.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

func NewRay(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
