// Command render drives a single offline render from the command line:
// flags describe the RenderConfig, the core Engine does the work, and the
// finished buffer is written out as a PNG — a thin caller-side convenience,
// not a core capability.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"pathtracer/core"
	pathio "pathtracer/io"
	"pathtracer/internal/rlog"
	"pathtracer/renderer"
)

func main() {
	width := flag.Int("width", 400, "output image width in pixels")
	height := flag.Int("height", 225, "output image height in pixels")
	samples := flag.Int("samples", 50, "samples per pixel")
	maxDepth := flag.Int("max-depth", 10, "maximum scatter recursion depth")
	tileSize := flag.Int("tile-size", 32, "tile edge length in pixels")
	sceneID := flag.String("scene", "RandomSpheres", "scene id: RandomSpheres or CornellBox")
	seed := flag.Int64("seed", 0, "RNG seed for scene generation and pixel sampling")
	configPath := flag.String("config", "", "path to a RenderConfig JSON file (overrides the flags above)")
	enginePath := flag.String("engine-config", "pathtracer.toml", "path to an optional engine settings TOML file")
	outPath := flag.String("out", "render.png", "output PNG path")
	quiet := flag.Bool("quiet", false, "suppress the terminal progress UI")
	flag.Parse()

	engineCfg, err := pathio.LoadEngineConfig(*enginePath)
	if err != nil {
		rlog.Errorf("failed to load engine config: %v", err)
		os.Exit(1)
	}
	rlog.SetLevel(engineCfg.LogLevel)
	if engineCfg.DefaultTileSize > 0 && !isFlagSet("tile-size") {
		*tileSize = engineCfg.DefaultTileSize
	}

	var cfg core.RenderConfig
	if *configPath != "" {
		cfg, err = pathio.LoadRenderConfig(*configPath)
		if err != nil {
			rlog.Errorf("failed to load render config: %v", err)
			os.Exit(1)
		}
	} else {
		cfg = core.RenderConfig{
			Width:           *width,
			Height:          *height,
			SamplesPerPixel: *samples,
			MaxDepth:        *maxDepth,
			TileSize:        *tileSize,
			SceneID:         *sceneID,
			Seed:            *seed,
		}
	}

	engine := renderer.NewEngine()
	engine.SetWorkerCount(engineCfg.WorkerCount)

	var ui *progressUI
	if !*quiet {
		ui, err = newProgressUI(engine)
		if err != nil {
			rlog.Warnf("failed to start terminal progress UI: %v", err)
			ui = nil
		}
	}
	if ui != nil {
		go ui.run()
	}

	if err := engine.Render(cfg); err != nil {
		if ui != nil {
			ui.stop()
		}
		rlog.Errorf("render failed: %v", err)
		os.Exit(1)
	}
	if ui != nil {
		ui.stop()
	}

	if err := writePNG(*outPath, engine.FrameBuffer()); err != nil {
		rlog.Errorf("failed to write output image: %v", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%dx%d, %d samples/pixel)\n", *outPath, cfg.Width, cfg.Height, cfg.SamplesPerPixel)
}

func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func writePNG(path string, fb *core.FrameBuffer) error {
	if fb == nil {
		return fmt.Errorf("no frame buffer to write")
	}

	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b, a := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode png to %s: %w", path, err)
	}
	return nil
}
