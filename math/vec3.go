package math

import "math"

// Vec3 is an ordered triple of doubles, used as a point, a direction, or an
// RGB color depending on context.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Vec3Zero  = Vec3{0, 0, 0}
	Vec3One   = Vec3{1, 1, 1}
	Vec3Up    = Vec3{0, 1, 0}
	Vec3Down  = Vec3{0, -1, 0}
	Vec3Right = Vec3{1, 0, 0}
	Vec3Left  = Vec3{-1, 0, 0}
	Vec3Front = Vec3{0, 0, 1}
	Vec3Back  = Vec3{0, 0, -1}
)

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) Mul(scalar float64) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// MulVec is the componentwise (Hadamard) product, used for attenuation and
// texture modulation.
func (v Vec3) MulVec(other Vec3) Vec3 {
	return Vec3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

func (v Vec3) Div(scalar float64) Vec3 {
	return v.Mul(1.0 / scalar)
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

func (v Vec3) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length > 0 {
		return v.Mul(1.0 / length)
	}
	return v
}

func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Add(other.Sub(v).Mul(t))
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// NearZero reports whether every component is within 1e-8 of zero, used to
// catch degenerate scatter directions before they're normalized.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Clamp restricts each component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	clamp := func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return Vec3{X: clamp(v.X), Y: clamp(v.Y), Z: clamp(v.Z)}
}

// Reflect mirrors v across a surface with the given unit normal.
func Reflect(v, normal Vec3) Vec3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Refract bends a unit incident ray uvIn across a unit normal using Snell's
// law, given the ratio of refractive indices (incident over transmitted).
func Refract(uvIn, normal Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uvIn.Negate().Dot(normal), 1.0)
	rOutPerp := uvIn.Add(normal.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := normal.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSqr())))
	return rOutPerp.Add(rOutParallel)
}

// Schlick is the polynomial approximation of Fresnel reflectance used by
// dielectric materials to decide between reflection and refraction.
func Schlick(cosine, refIndex float64) float64 {
	r0 := (1 - refIndex) / (1 + refIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
