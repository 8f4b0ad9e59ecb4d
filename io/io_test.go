package io

import (
	"os"
	"path/filepath"
	"testing"

	"pathtracer/core"
)

func TestRenderConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.json")

	original := core.RenderConfig{
		Width: 400, Height: 225, SamplesPerPixel: 50, MaxDepth: 10, TileSize: 32,
		SceneID: "RandomSpheres",
		Camera: core.CameraConfig{
			FOV: 20, Aperture: 0.1, FocusDist: 10,
		},
	}

	if err := SaveRenderConfig(path, original); err != nil {
		t.Fatalf("SaveRenderConfig: %v", err)
	}

	loaded, err := LoadRenderConfig(path)
	if err != nil {
		t.Fatalf("LoadRenderConfig: %v", err)
	}

	if loaded != original {
		t.Errorf("round trip mismatch: wrote %+v, read %+v", original, loaded)
	}
}

func TestLoadRenderConfigMissingFile(t *testing.T) {
	if _, err := LoadRenderConfig("/nonexistent/render.json"); err == nil {
		t.Error("LoadRenderConfig: expected an error for a missing file")
	}
}

func TestLoadEngineConfigDefaultsWhenAbsent(t *testing.T) {
	cfg, err := LoadEngineConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadEngineConfig: unexpected error for missing file: %v", err)
	}
	if cfg.DefaultTileSize != 32 || cfg.LogLevel != "info" {
		t.Errorf("LoadEngineConfig: expected defaults, got %+v", cfg)
	}
}

func TestLoadEngineConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathtracer.toml")
	contents := "worker_count = 4\ndefault_tile_size = 16\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadEngineConfig(path)
	if err != nil {
		t.Fatalf("LoadEngineConfig: %v", err)
	}
	if cfg.WorkerCount != 4 || cfg.DefaultTileSize != 16 || cfg.LogLevel != "debug" {
		t.Errorf("LoadEngineConfig: expected decoded values, got %+v", cfg)
	}
}
