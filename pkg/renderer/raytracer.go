package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/google/uuid"
)

// RenderConfig contains configuration for a render
type RenderConfig struct {
	Depth      int  // Maximum reflection/refraction bounces
	XDivisions int  // Tile columns; 1x1 renders on the calling goroutine
	YDivisions int  // Tile rows
	NumWorkers int  // Number of parallel workers (0 = use CPU count)
	ShowTiles  bool // Draw the tile grid over the finished image
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Depth:      5,
		XDivisions: 8,
		YDivisions: 8,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer drives a single render of a world through a camera
type Raytracer struct {
	id       uuid.UUID
	world    *scene.World
	camera   *Camera
	config   RenderConfig
	logger   core.Logger
	progress ProgressFunc
}

// NewRaytracer creates a raytracer. A nil logger discards log output.
func NewRaytracer(world *scene.World, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	id := uuid.New()
	return &Raytracer{
		id:     id,
		world:  world,
		camera: camera,
		config: config,
		logger: prefixLogger{prefix: id.String()[:8], next: logger},
	}
}

// ID returns the render id
func (rt *Raytracer) ID() string {
	return rt.id.String()
}

// SetProgress registers a callback receiving completed pixel counts
func (rt *Raytracer) SetProgress(fn ProgressFunc) {
	rt.progress = fn
}

// Config returns the render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces the full image
func (rt *Raytracer) Render() (*canvas.Canvas, RenderStats, error) {
	cfg := rt.config
	if cfg.XDivisions < 1 || cfg.YDivisions < 1 {
		return nil, RenderStats{}, fmt.Errorf("%dx%d: %w", cfg.XDivisions, cfg.YDivisions, ErrInvalidDivisions)
	}

	res := rt.camera.Resolution()
	tiles := NewTileGrid(res.Width, res.Height, cfg.XDivisions, cfg.YDivisions)
	stats := RenderStats{
		RenderID:    rt.ID(),
		Width:       res.Width,
		Height:      res.Height,
		TotalPixels: res.Width * res.Height,
		Tiles:       len(tiles),
		Workers:     1,
		Depth:       cfg.Depth,
	}

	whitted := integrator.NewWhitted(rt.world)
	singleThreaded := cfg.XDivisions == 1 && cfg.YDivisions == 1

	if !singleThreaded {
		stats.Workers = resolveWorkers(cfg.NumWorkers)
	}

	rt.logger.Printf("Rendering %s, %d tiles on %d workers, depth %d\n",
		res, stats.Tiles, stats.Workers, cfg.Depth)

	start := time.Now()
	var out *canvas.Canvas
	if singleThreaded {
		out = rt.camera.Render(whitted, cfg.Depth, rt.progress)
	} else {
		var err error
		out, err = rt.camera.RenderTiled(whitted, cfg.Depth, cfg.XDivisions, cfg.YDivisions, cfg.NumWorkers, rt.progress)
		if err != nil {
			return nil, RenderStats{}, err
		}
	}
	stats.Duration = time.Since(start)

	if cfg.ShowTiles {
		out = DrawTileOverlay(out, tiles)
	}

	rt.logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Duration, stats.PixelsPerSecond())
	return out, stats, nil
}
