package scene

import (
	"fmt"
	"math/rand"

	pmath "pathtracer/math"
)

// Scene bundles the camera, background color, and the always-BVH-wrapped
// primitive hierarchy an integrator walks. Earlier drafts allowed a flat
// HittableList to reach the orchestrator directly; Build always wraps the
// final primitive list in a BVHNode, closing that gap for good.
type Scene struct {
	Camera     *Camera
	Background pmath.Vec3
	root       Hittable
}

// Builder accumulates primitives before the scene is finalized into a BVH.
type Builder struct {
	objects    []Hittable
	camera     *Camera
	background pmath.Vec3
}

func NewBuilder() *Builder {
	return &Builder{background: pmath.Vec3{X: 0.7, Y: 0.8, Z: 1.0}}
}

func (b *Builder) Add(h Hittable) *Builder {
	b.objects = append(b.objects, h)
	return b
}

func (b *Builder) WithCamera(c *Camera) *Builder {
	b.camera = c
	return b
}

func (b *Builder) WithBackground(color pmath.Vec3) *Builder {
	b.background = color
	return b
}

// Build wraps every accumulated primitive in a BVHNode and returns the
// finished Scene. It is an error to build a scene with no camera or no
// primitives.
func (b *Builder) Build(time0, time1 float64, rng *rand.Rand) (*Scene, error) {
	if b.camera == nil {
		return nil, fmt.Errorf("scene builder: no camera configured")
	}
	if len(b.objects) == 0 {
		return nil, fmt.Errorf("scene builder: no primitives added")
	}

	root := BuildBVH(b.objects, time0, time1, rng)
	return &Scene{Camera: b.camera, Background: b.background, root: root}, nil
}

// Hit walks the scene's BVH root.
func (s *Scene) Hit(r pmath.Ray, tMin, tMax float64) (HitRecord, bool) {
	return s.root.Hit(r, tMin, tMax)
}

// BuilderFunc builds a scene for an image of the given size; registry maps
// each wire-format identifier to one.
type BuilderFunc func(width, height int, rng *rand.Rand) (*Scene, error)

var registry = map[string]BuilderFunc{
	"RandomSpheres": BuildRandomSpheres,
	"CornellBox":    BuildCornellBox,
}

// Lookup resolves a SceneID to its builder, reporting an unknown-scene error
// that the orchestrator returns, wrapped, before any tile is dispatched.
func Lookup(sceneID string) (BuilderFunc, error) {
	fn, ok := registry[sceneID]
	if !ok {
		return nil, fmt.Errorf("unknown scene id %q", sceneID)
	}
	return fn, nil
}
