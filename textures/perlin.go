package textures

import (
	"math"
	"math/rand"

	pmath "pathtracer/math"
)

const perlinPointCount = 256

// perlin is a classic Perlin-noise generator: a table of random
// unit gradients plus three random permutations, trilinearly interpolated
// with a Hermite smoothing curve.
type perlin struct {
	randVec  [perlinPointCount]pmath.Vec3
	permX    [perlinPointCount]int
	permY    [perlinPointCount]int
	permZ    [perlinPointCount]int
}

func newPerlin(rng *rand.Rand) *perlin {
	p := &perlin{}
	for i := 0; i < perlinPointCount; i++ {
		p.randVec[i] = pmath.RandomVec3(rng, -1, 1).Normalize()
	}
	p.permX = generatePerlinPermutation(rng)
	p.permY = generatePerlinPermutation(rng)
	p.permZ = generatePerlinPermutation(rng)
	return p
}

func generatePerlinPermutation(rng *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

func (p *perlin) noise(point pmath.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]pmath.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randVec[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterpolate(c, u, v, w)
}

// turbulence sums noise at successively doubled frequencies and halved
// amplitudes to produce the 7-octave marble pattern used by Noise.
func (p *perlin) turbulence(point pmath.Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.noise(temp)
		weight *= 0.5
		temp = temp.Mul(2)
	}
	return math.Abs(accum)
}

func perlinInterpolate(c [2][2][2]pmath.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := pmath.Vec3{X: u - float64(i), Y: v - float64(j), Z: w - float64(k)}
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
