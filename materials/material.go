// Package materials implements the closed set of BSDF/emission behaviors
// scene primitives can carry: Lambertian diffuse, metal (reflective with
// fuzz), dielectric (refractive glass), and diffuse light (emission only).
package materials

import (
	"math"
	"math/rand"

	pmath "pathtracer/math"
	"pathtracer/textures"
)

// Kind tags which scattering behavior a Material implements.
type Kind int

const (
	Lambertian Kind = iota
	Metal
	Dielectric
	DiffuseLight
)

// Material is the tagged variant used by every primitive in the scene.
// Fields outside a Kind's relevant subset are ignored.
type Material struct {
	Kind   Kind
	Albedo textures.Texture // Lambertian, Metal
	Fuzz   float64          // Metal: reflected-ray perturbation radius, clamped to [0,1]
	IOR    float64          // Dielectric: index of refraction
	Emit   textures.Texture // DiffuseLight
}

// ScatterResult carries the outgoing ray and its attenuation for a
// successful scatter event.
type ScatterResult struct {
	Attenuation pmath.Vec3
	Scattered   pmath.Ray
}

// NewLambertian builds a diffuse material with the given albedo texture.
func NewLambertian(albedo textures.Texture) Material {
	return Material{Kind: Lambertian, Albedo: albedo}
}

// NewMetal builds a reflective material; fuzz is clamped to [0,1].
func NewMetal(albedo textures.Texture, fuzz float64) Material {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return Material{Kind: Metal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric builds a refractive material with the given index of
// refraction.
func NewDielectric(ior float64) Material {
	return Material{Kind: Dielectric, IOR: ior}
}

// NewDiffuseLight builds a material that emits its texture's color and
// never scatters.
func NewDiffuseLight(emit textures.Texture) Material {
	return Material{Kind: DiffuseLight, Emit: emit}
}

// Default Material Library — named constructors for common scene presets.

func RedMaterial() Material {
	return NewLambertian(textures.NewSolid(pmath.NewVec3(0.65, 0.05, 0.05)))
}

func GreenMaterial() Material {
	return NewLambertian(textures.NewSolid(pmath.NewVec3(0.12, 0.45, 0.15)))
}

func WhiteMaterial() Material {
	return NewLambertian(textures.NewSolid(pmath.NewVec3(0.73, 0.73, 0.73)))
}

func BlueMaterial() Material {
	return NewLambertian(textures.NewSolid(pmath.NewVec3(0.1, 0.2, 0.6)))
}

func MetalMaterial() Material {
	return NewMetal(textures.NewSolid(pmath.NewVec3(0.8, 0.8, 0.9)), 0.1)
}

func GlassMaterial() Material {
	return NewDielectric(1.5)
}

func EmissiveMaterial() Material {
	return NewDiffuseLight(textures.NewSolid(pmath.NewVec3(7, 7, 7)))
}

// Scatter computes an outgoing ray and attenuation for an incident ray that
// hit this material at the given point, normal, and UV. ok is false when
// the material absorbs (lambertian and dielectric never fail; metal fails
// when the fuzzed reflection points into the surface; diffuse lights never
// scatter).
func (m Material) Scatter(rng *rand.Rand, rIn pmath.Ray, point, normal pmath.Vec3, frontFace bool, u, v float64) (ScatterResult, bool) {
	switch m.Kind {
	case Lambertian:
		direction := normal.Add(pmath.RandomUnitVector(rng))
		if direction.NearZero() {
			direction = normal
		}
		return ScatterResult{
			Attenuation: m.Albedo.Sample(u, v, point),
			Scattered:   pmath.NewRay(point, direction, rIn.Time),
		}, true

	case Metal:
		reflected := pmath.Reflect(rIn.Direction.Normalize(), normal)
		reflected = reflected.Add(pmath.RandomInUnitSphere(rng).Mul(m.Fuzz))
		if reflected.Dot(normal) <= 0 {
			return ScatterResult{}, false
		}
		return ScatterResult{
			Attenuation: m.Albedo.Sample(u, v, point),
			Scattered:   pmath.NewRay(point, reflected, rIn.Time),
		}, true

	case Dielectric:
		refractionRatio := m.IOR
		if frontFace {
			refractionRatio = 1.0 / m.IOR
		}

		unitDirection := rIn.Direction.Normalize()
		cosTheta := math.Min(unitDirection.Negate().Dot(normal), 1.0)
		sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

		cannotRefract := refractionRatio*sinTheta > 1.0
		var direction pmath.Vec3
		if cannotRefract || pmath.Schlick(cosTheta, refractionRatio) > rng.Float64() {
			direction = pmath.Reflect(unitDirection, normal)
		} else {
			direction = pmath.Refract(unitDirection, normal, refractionRatio)
		}

		return ScatterResult{
			Attenuation: pmath.Vec3{X: 1, Y: 1, Z: 1},
			Scattered:   pmath.NewRay(point, direction, rIn.Time),
		}, true

	default: // DiffuseLight
		return ScatterResult{}, false
	}
}

// Emitted returns the color this material emits at the given surface point,
// zero for every kind except DiffuseLight.
func (m Material) Emitted(u, v float64, point pmath.Vec3) pmath.Vec3 {
	if m.Kind != DiffuseLight {
		return pmath.Vec3{}
	}
	return m.Emit.Sample(u, v, point)
}

