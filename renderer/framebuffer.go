package renderer

import (
	"math"

	"pathtracer/core"
)

// tonemap converts an accumulated, sample-averaged linear color into an
// 8-bit gamma-2 quantized pixel: sqrt (gamma 2.0), clamp to [0, 0.999]
// before scaling, matching the classic ray tracer write_color convention.
func tonemap(accumulated core.Color, samples int) (r, g, b byte) {
	scale := 1.0 / float64(samples)
	c := accumulated.Mul(scale)

	gammaCorrect := func(x float64) byte {
		x = math.Sqrt(math.Max(0, x))
		if x > 0.999 {
			x = 0.999
		}
		return byte(256 * x)
	}

	return gammaCorrect(c.X), gammaCorrect(c.Y), gammaCorrect(c.Z)
}
