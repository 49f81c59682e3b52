package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/pixmap"
)

// Config contains rendering configuration
type Config struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	ColorOfPixel(col, row int) core.Vec3
}

// TileCompletionResult is reported after each tile finishes
type TileCompletionResult struct {
	Tile       *Tile
	TileImage  *pixmap.Pixmap // Copy of the finished tile's pixels
	TileNumber int            // Completion order, starting at 1
	TotalTiles int
}

// Raytracer renders a scene into a pixmap tile by tile on a worker pool
type Raytracer struct {
	scene         Scene
	width, height int
	config        Config
	logger        core.Logger
	tiles         []*Tile
	workerPool    *WorkerPool
	tileRenderer  *TileRenderer
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(scene Scene, width, height int, config Config, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultConfig().TileSize
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:        scene,
		width:        width,
		height:       height,
		config:       config,
		logger:       logger,
		tiles:        NewTileGrid(width, height, config.TileSize),
		workerPool:   NewWorkerPool(config.NumWorkers),
		tileRenderer: NewTileRenderer(scene),
	}
}

// TileCount returns the number of tiles a render is split into
func (rt *Raytracer) TileCount() int {
	return len(rt.tiles)
}

// Render shades every pixel and returns the finished pixmap. tileCallback,
// if not nil, is called once per finished tile, never concurrently.
func (rt *Raytracer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (*pixmap.Pixmap, RenderStats, error) {
	target := pixmap.New(rt.width, rt.height)
	startTime := time.Now()

	rt.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		rt.width, rt.height, len(rt.tiles), rt.workerPool.GetNumWorkers())

	var mu sync.Mutex
	completed := 0
	nextReport := 10

	err := rt.workerPool.Run(ctx, rt.tiles, func(ctx context.Context, tile *Tile) error {
		rt.tileRenderer.RenderTileBounds(tile.Bounds, target)

		mu.Lock()
		defer mu.Unlock()
		completed++
		if percent := completed * 100 / len(rt.tiles); percent >= nextReport {
			rt.logger.Printf("  %d%% (%d/%d tiles)\n", percent, completed, len(rt.tiles))
			nextReport = percent - percent%10 + 10
		}
		if tileCallback != nil {
			tileCallback(TileCompletionResult{
				Tile:       tile,
				TileImage:  target.Crop(tile.Bounds),
				TileNumber: completed,
				TotalTiles: len(rt.tiles),
			})
		}
		return nil
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		TotalTiles:  len(rt.tiles),
		NumWorkers:  rt.workerPool.GetNumWorkers(),
		Elapsed:     time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Elapsed, stats.PixelsPerSecond())

	return target, stats, nil
}
