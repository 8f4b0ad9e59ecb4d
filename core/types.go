package core

import (
	"pathtracer/math"
)

// Color is an alias for Vec3: light transport arithmetic (add, scale,
// componentwise multiply) is exactly Vec3 arithmetic, and there is no alpha
// channel in the radiance model.
type Color = math.Vec3

var (
	ColorWhite = Color{X: 1, Y: 1, Z: 1}
	ColorBlack = Color{X: 0, Y: 0, Z: 0}
	ColorRed   = Color{X: 1, Y: 0, Z: 0}
	ColorGreen = Color{X: 0, Y: 1, Z: 0}
	ColorBlue  = Color{X: 0, Y: 0, Z: 1}
)

// CameraConfig describes the camera's placement and lens parameters for a
// single render. FOV is vertical field of view in degrees.
type CameraConfig struct {
	LookFrom    math.Vec3 `json:"lookFrom"`
	LookAt      math.Vec3 `json:"lookAt"`
	Up          math.Vec3 `json:"up"`
	FOV         float64   `json:"fov"`
	Aperture    float64   `json:"aperture"`
	FocusDist   float64   `json:"focusDist"`
	ShutterOpen float64   `json:"shutterOpen"`
	ShutterClose float64  `json:"shutterClose"`
}

// RenderConfig is the external, JSON-decodable description of a single
// render request.
type RenderConfig struct {
	Width           int          `json:"width"`
	Height          int          `json:"height"`
	SamplesPerPixel int          `json:"samplesPerPixel"`
	MaxDepth        int          `json:"maxDepth"`
	TileSize        int          `json:"tileSize"`
	SceneID         string       `json:"sceneId"`
	Seed            int64        `json:"seed"`
	Camera          CameraConfig `json:"camera"`
	Background      math.Vec3    `json:"background"`
}

// FrameBuffer holds the finished render as 8-bit RGBA pixels (4 bytes per
// pixel, A always 255) in row-major order with row 0 at the bottom, matching
// the wire layout a GPU texture-upload consumer expects.
type FrameBuffer struct {
	Data   []byte
	Width  int
	Height int
}

// NewFrameBuffer allocates a zeroed buffer sized for width x height RGBA
// pixels.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Data:   make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Set writes one RGBA pixel, with alpha fixed at 255. x and y are measured
// from the top-left, the same convention the render loop iterates in; Set
// stores into Data with row 0 at the bottom, so the two conventions don't
// collide as long as callers always go through Set/At.
func (fb *FrameBuffer) Set(x, y int, r, g, b byte) {
	row := fb.Height - 1 - y
	idx := (row*fb.Width + x) * 4
	fb.Data[idx] = r
	fb.Data[idx+1] = g
	fb.Data[idx+2] = b
	fb.Data[idx+3] = 255
}

// At returns the RGBA quadruple for the pixel at (x, y), x and y measured
// from the top-left as in Set.
func (fb *FrameBuffer) At(x, y int) (r, g, b, a byte) {
	row := fb.Height - 1 - y
	idx := (row*fb.Width + x) * 4
	return fb.Data[idx], fb.Data[idx+1], fb.Data[idx+2], fb.Data[idx+3]
}
