package io

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EngineConfig holds process-level settings loaded once at startup, as
// distinct from the per-render RenderConfig decoded from JSON.
type EngineConfig struct {
	WorkerCount     int    `toml:"worker_count"`      // 0 means derive from hardwareConcurrency-1
	DefaultTileSize int    `toml:"default_tile_size"` // 0 means the CLI's built-in default
	LogLevel        string `toml:"log_level"`
}

func defaultEngineConfig() EngineConfig {
	return EngineConfig{WorkerCount: 0, DefaultTileSize: 32, LogLevel: "info"}
}

// LoadEngineConfig decodes an EngineConfig from a TOML file at path. A
// missing file is not an error — it returns the defaults.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := defaultEngineConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("failed to parse engine config %s: %w", path, err)
	}
	return cfg, nil
}
