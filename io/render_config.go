// Package io handles the two configuration surfaces a render touches: the
// per-render RenderConfig/CameraConfig JSON wire format, and the
// engine-level TOML settings file read at process startup.
package io

import (
	"encoding/json"
	"fmt"
	"os"

	"pathtracer/core"
)

// LoadRenderConfig decodes a RenderConfig from a JSON file at path.
func LoadRenderConfig(path string) (core.RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.RenderConfig{}, fmt.Errorf("failed to read render config %s: %w", path, err)
	}

	var cfg core.RenderConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return core.RenderConfig{}, fmt.Errorf("failed to parse render config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveRenderConfig writes cfg to path as indented JSON, mainly useful for
// generating a starting-point config file.
func SaveRenderConfig(path string, cfg core.RenderConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode render config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write render config %s: %w", path, err)
	}
	return nil
}
