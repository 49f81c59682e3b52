package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType  string
	width      int // 0 keeps the preset's value
	height     int
	depth      int // -1 keeps the preset's value
	fov        float64
	background string
	shadows    string
	workers    int
	tileSize   int
	out        string
}

func main() {
	// Parse command line flags
	opts := options{}
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene type: default, single-sphere, checkerboard or glass")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", -1, "Reflection/refraction recursion depth (-1 = scene default)")
	flag.Float64Var(&opts.fov, "fov", 0, "Vertical field of view in degrees (0 = scene default)")
	flag.StringVar(&opts.background, "background", "", "Background color name (e.g. skyblue) or r,g,b")
	flag.StringVar(&opts.shadows, "shadows", "unbounded", "Shadow rays: 'unbounded' (objects beyond a light still occlude it) or 'bounded'")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flag.IntVar(&opts.tileSize, "tile", 64, "Tile size in pixels")
	flag.StringVar(&opts.out, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-14s %s\n", info.ID, info.Description)
		}
		return
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, cfg, err := createScene(opts)
	if err != nil {
		return err
	}
	fmt.Printf("Using %s scene (%dx%d, depth %d, %d objects, %d lights, %s shadows)\n",
		opts.sceneType, cfg.Width, cfg.Height, cfg.MaxDepth,
		selectedScene.GetPrimitiveCount(), selectedScene.GetLightCount(), selectedScene.ShadowMode())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raytracer := renderer.NewRaytracer(selectedScene, cfg.Width, cfg.Height, renderer.Config{
		TileSize:   opts.tileSize,
		NumWorkers: opts.workers,
	}, renderer.NewDefaultLogger())

	img, _, err := raytracer.Render(ctx, nil)
	if err != nil {
		return err
	}

	filename := opts.out
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(createOutputDir(opts.sceneType), fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := loaders.SavePNG(filename, img); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the requested preset with command line overrides applied
func createScene(opts options) (*scene.Scene, scene.Config, error) {
	preset, err := scene.LookupPreset(opts.sceneType)
	if err != nil {
		return nil, scene.Config{}, err
	}

	cfg := preset.Info.Config
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.depth >= 0 {
		cfg.MaxDepth = opts.depth
	}
	if opts.fov != 0 {
		if opts.fov < 0 || opts.fov >= 180 {
			return nil, scene.Config{}, fmt.Errorf("fov must be between 0 and 180 degrees, got: %g", opts.fov)
		}
		cfg.VFovDegrees = opts.fov
	}
	if opts.background != "" {
		if cfg.Background, err = scene.ParseBackground(opts.background); err != nil {
			return nil, scene.Config{}, err
		}
	}

	shadowMode, err := scene.ParseShadowMode(opts.shadows)
	if err != nil {
		return nil, scene.Config{}, err
	}

	s := preset.Build(cfg)
	s.SetShadowMode(shadowMode)
	return s, cfg, nil
}

// createOutputDir returns the directory renders of a scene are written to
func createOutputDir(sceneType string) string {
	return filepath.Join("output", sceneType)
}
