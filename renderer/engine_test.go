package renderer

import (
	"testing"

	"pathtracer/core"
)

func TestEngineRenderProducesCorrectlySizedBuffer(t *testing.T) {
	e := NewEngine()
	cfg := core.RenderConfig{
		Width: 20, Height: 10, SamplesPerPixel: 2, MaxDepth: 3, TileSize: 8,
		SceneID: "RandomSpheres",
		Camera:  core.CameraConfig{},
	}

	if err := e.Render(cfg); err != nil {
		t.Fatalf("Engine.Render: unexpected error: %v", err)
	}

	fb := e.FrameBuffer()
	if fb == nil {
		t.Fatal("Engine.FrameBuffer: expected a non-nil buffer after Render")
	}
	if fb.Width != 20 || fb.Height != 10 {
		t.Errorf("Engine.FrameBuffer: expected 20x10, got %dx%d", fb.Width, fb.Height)
	}
	if len(fb.Data) != 20*10*4 {
		t.Errorf("Engine.FrameBuffer: expected %d bytes, got %d", 20*10*4, len(fb.Data))
	}

	done, total := e.Progress()
	if done != total {
		t.Errorf("Engine.Progress: expected done==total after a completed render, got %d/%d", done, total)
	}
}

func TestEngineRenderRejectsInvalidConfig(t *testing.T) {
	e := NewEngine()
	cfg := core.RenderConfig{Width: 0, Height: 10, SamplesPerPixel: 1, MaxDepth: 1, TileSize: 8, SceneID: "RandomSpheres"}
	if err := e.Render(cfg); err == nil {
		t.Error("Engine.Render: expected an error for a zero-width config")
	}
}

func TestEngineRenderRejectsUnknownScene(t *testing.T) {
	e := NewEngine()
	cfg := core.RenderConfig{Width: 10, Height: 10, SamplesPerPixel: 1, MaxDepth: 1, TileSize: 8, SceneID: "NoSuchScene"}
	if err := e.Render(cfg); err == nil {
		t.Error("Engine.Render: expected an error for an unknown scene id")
	}
}

func TestEngineOnRenderCompleteFires(t *testing.T) {
	e := NewEngine()
	fired := false
	e.OnRenderComplete(func() { fired = true })

	cfg := core.RenderConfig{Width: 8, Height: 8, SamplesPerPixel: 1, MaxDepth: 2, TileSize: 4, SceneID: "CornellBox"}
	if err := e.Render(cfg); err != nil {
		t.Fatalf("Engine.Render: unexpected error: %v", err)
	}
	if !fired {
		t.Error("Engine: expected OnRenderComplete callback to fire")
	}
}

func TestEngineRenderIsDeterministicForAFixedSeed(t *testing.T) {
	cfg := core.RenderConfig{
		Width: 16, Height: 12, SamplesPerPixel: 2, MaxDepth: 3, TileSize: 5,
		SceneID: "RandomSpheres", Seed: 42,
	}

	e1, e2 := NewEngine(), NewEngine()
	if err := e1.Render(cfg); err != nil {
		t.Fatalf("Render e1: %v", err)
	}
	if err := e2.Render(cfg); err != nil {
		t.Fatalf("Render e2: %v", err)
	}

	fb1, fb2 := e1.FrameBuffer(), e2.FrameBuffer()
	if len(fb1.Data) != len(fb2.Data) {
		t.Fatalf("expected matching buffer lengths, got %d vs %d", len(fb1.Data), len(fb2.Data))
	}
	for i := range fb1.Data {
		if fb1.Data[i] != fb2.Data[i] {
			t.Fatalf("expected byte-identical buffers for the same seed, first diff at byte %d", i)
		}
	}
}

func TestEngineDeterministicImageSizeAcrossTileSizes(t *testing.T) {
	cfg1 := core.RenderConfig{Width: 16, Height: 12, SamplesPerPixel: 1, MaxDepth: 2, TileSize: 4, SceneID: "RandomSpheres"}
	cfg2 := cfg1
	cfg2.TileSize = 100

	e1, e2 := NewEngine(), NewEngine()
	if err := e1.Render(cfg1); err != nil {
		t.Fatalf("Render cfg1: %v", err)
	}
	if err := e2.Render(cfg2); err != nil {
		t.Fatalf("Render cfg2: %v", err)
	}

	fb1, fb2 := e1.FrameBuffer(), e2.FrameBuffer()
	if fb1.Width != fb2.Width || fb1.Height != fb2.Height {
		t.Errorf("expected identical image dimensions regardless of tile size, got %dx%d vs %dx%d",
			fb1.Width, fb1.Height, fb2.Width, fb2.Height)
	}
}
