// Package textures provides CPU-side samplers queried by materials during
// shading: a solid color, a 3-D checker pattern, Perlin noise/turbulence,
// and an image lookup, each implementing Sample(u, v, p).
package textures

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"math/rand"
	"os"

	_ "golang.org/x/image/bmp"

	pmath "pathtracer/math"
)

// Texture samples a color at a surface point given its (u, v) parameterization
// and the hit point in object space.
type Texture interface {
	Sample(u, v float64, p pmath.Vec3) pmath.Vec3
}

// Solid is a constant-color texture.
type Solid struct {
	Color pmath.Vec3
}

func NewSolid(color pmath.Vec3) *Solid {
	return &Solid{Color: color}
}

func (s *Solid) Sample(u, v float64, p pmath.Vec3) pmath.Vec3 {
	return s.Color
}

// Checker alternates between two sub-textures based on the sign of
// sin(scale*x)*sin(scale*y)*sin(scale*z), producing a 3-D checkerboard that
// doesn't need UV coordinates at all.
type Checker struct {
	Odd, Even Texture
	Scale     float64
}

func NewChecker(odd, even Texture, scale float64) *Checker {
	if scale == 0 {
		scale = 10
	}
	return &Checker{Odd: odd, Even: even, Scale: scale}
}

func NewCheckerColors(odd, even pmath.Vec3, scale float64) *Checker {
	return NewChecker(NewSolid(odd), NewSolid(even), scale)
}

func (c *Checker) Sample(u, v float64, p pmath.Vec3) pmath.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Sample(u, v, p)
	}
	return c.Even.Sample(u, v, p)
}

// Noise is a Perlin-noise texture with a turbulence-driven marble pattern,
// scaled by Frequency.
type Noise struct {
	perlin    *perlin
	Frequency float64
}

func NewNoise(rng *rand.Rand, frequency float64) *Noise {
	return &Noise{perlin: newPerlin(rng), Frequency: frequency}
}

func (n *Noise) Sample(u, v float64, p pmath.Vec3) pmath.Vec3 {
	scaled := p.Mul(n.Frequency)
	marble := 1 + math.Sin(scaled.Z+10*n.perlin.turbulence(scaled, 7))
	return pmath.Vec3{X: 1, Y: 1, Z: 1}.Mul(0.5 * marble)
}

// Image samples a decoded image file with nearest-neighbor lookup, V
// flipped so v=0 is the bottom row as in the rest of the renderer's
// coordinate conventions, and coordinates clamped to the image bounds.
type Image struct {
	pixels        []byte
	width, height int
}

// NewImage decodes path (PNG, JPEG, or BMP) into an RGBA8 pixel buffer
// suitable for per-pixel sampling.
func NewImage(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, width*height*4)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pixels[idx] = byte(r >> 8)
			pixels[idx+1] = byte(g >> 8)
			pixels[idx+2] = byte(b >> 8)
			pixels[idx+3] = byte(a >> 8)
			idx += 4
		}
	}

	return &Image{pixels: pixels, width: width, height: height}, nil
}

func (img *Image) Sample(u, v float64, p pmath.Vec3) pmath.Vec3 {
	if img.width == 0 || img.height == 0 {
		return pmath.Vec3{X: 0, Y: 1, Z: 1} // cyan debug color for a missing texture
	}

	u = clamp01(u)
	v = 1 - clamp01(v) // flip V to image space

	i := int(u * float64(img.width))
	j := int(v * float64(img.height))
	if i >= img.width {
		i = img.width - 1
	}
	if j >= img.height {
		j = img.height - 1
	}

	idx := (j*img.width + i) * 4
	const colorScale = 1.0 / 255.0
	return pmath.Vec3{
		X: float64(img.pixels[idx]) * colorScale,
		Y: float64(img.pixels[idx+1]) * colorScale,
		Z: float64(img.pixels[idx+2]) * colorScale,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
