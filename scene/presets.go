package scene

import (
	"math/rand"

	pmath "pathtracer/math"
	"pathtracer/materials"
	"pathtracer/textures"
)

// BuildRandomSpheres assembles a ground checker plane, three large
// signature spheres (glass, Lambertian, metal), and a field of small
// randomly displaced spheres around them — roughly a third of the small
// Lambertian ones given upward linear motion so MovingSphere, the camera's shutter interval, and the
// BVH's time-aware bounding boxes are all exercised end to end.
func BuildRandomSpheres(width, height int, rng *rand.Rand) (*Scene, error) {
	builder := NewBuilder()

	groundMaterial := materials.NewLambertian(textures.NewCheckerColors(
		pmath.NewVec3(0.2, 0.3, 0.1), pmath.NewVec3(0.9, 0.9, 0.9), 10))
	builder.Add(NewSphere(pmath.NewVec3(0, -1000, 0), 1000, groundMaterial))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := pmath.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			if center.Sub(pmath.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.6:
				albedoVec := pmath.RandomVec3(rng, 0, 1).MulVec(pmath.RandomVec3(rng, 0, 1))
				mat := materials.NewLambertian(textures.NewSolid(albedoVec))
				if rng.Float64() < 0.33 {
					center1 := center.Add(pmath.NewVec3(0, pmath.RandomInRange(rng, 0, 0.5), 0))
					builder.Add(NewMovingSphere(center, center1, 0, 1, 0.2, mat))
				} else {
					builder.Add(NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.85:
				albedoVec := pmath.RandomVec3(rng, 0.5, 1)
				fuzz := pmath.RandomInRange(rng, 0, 0.5)
				mat := materials.NewMetal(textures.NewSolid(albedoVec), fuzz)
				builder.Add(NewSphere(center, 0.2, mat))
			default:
				mat := materials.NewDielectric(1.5)
				builder.Add(NewSphere(center, 0.2, mat))
			}
		}
	}

	builder.Add(NewSphere(pmath.NewVec3(0, 1, 0), 1.0, materials.NewDielectric(1.5)))
	builder.Add(NewSphere(pmath.NewVec3(-4, 1, 0), 1.0, materials.NewLambertian(textures.NewSolid(pmath.NewVec3(0.4, 0.2, 0.1)))))
	builder.Add(NewSphere(pmath.NewVec3(4, 1, 0), 1.0, materials.NewMetal(textures.NewSolid(pmath.NewVec3(0.7, 0.6, 0.5)), 0.0)))

	lookFrom := pmath.NewVec3(13, 2, 3)
	lookAt := pmath.NewVec3(0, 0, 0)
	camera := NewCamera(lookFrom, lookAt, pmath.Vec3Up, 20, width, height, 0.1, 10.0, 0, 1)
	builder.WithCamera(camera)
	builder.WithBackground(pmath.NewVec3(0.7, 0.8, 1.0))

	return builder.Build(0, 1, rng)
}

// BuildCornellBox assembles the classic five-wall box (green wall on the
// image's left, red wall on its right, white back/floor/ceiling), a ceiling area light, and two
// rotated boxes — one tall, one short — wrapped in Translate/RotateY.
func BuildCornellBox(width, height int, rng *rand.Rand) (*Scene, error) {
	builder := NewBuilder()

	red := materials.RedMaterial()
	white := materials.WhiteMaterial()
	green := materials.GreenMaterial()
	light := materials.NewDiffuseLight(textures.NewSolid(pmath.NewVec3(15, 15, 15)))

	builder.Add(NewYZRect(0, 555, 0, 555, 555, green))
	builder.Add(NewYZRect(0, 555, 0, 555, 0, red))
	builder.Add(NewXZRect(213, 343, 227, 332, 554, light))
	builder.Add(NewXZRect(0, 555, 0, 555, 0, white))
	builder.Add(NewXZRect(0, 555, 0, 555, 555, white))
	builder.Add(NewXYRect(0, 555, 0, 555, 555, white))

	tallBox := NewBox(pmath.Vec3Zero, pmath.NewVec3(165, 330, 165), white)
	tallRotated := NewRotateY(tallBox, 15)
	tallTranslated := NewTranslate(tallRotated, pmath.NewVec3(265, 0, 295))
	builder.Add(tallTranslated)

	shortBox := NewBox(pmath.Vec3Zero, pmath.NewVec3(165, 165, 165), white)
	shortRotated := NewRotateY(shortBox, -18)
	shortTranslated := NewTranslate(shortRotated, pmath.NewVec3(130, 0, 65))
	builder.Add(shortTranslated)

	lookFrom := pmath.NewVec3(278, 278, -800)
	lookAt := pmath.NewVec3(278, 278, 0)
	camera := NewCamera(lookFrom, lookAt, pmath.Vec3Up, 40, width, height, 0, 10.0, 0, 1)
	builder.WithCamera(camera)
	builder.WithBackground(pmath.Vec3{})

	return builder.Build(0, 1, rng)
}
