package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
)

// Render traces every pixel on the calling goroutine, reporting progress once
// per image row. progress may be nil.
func (c *Camera) Render(integ integrator.Integrator, depth int, progress ProgressFunc) *canvas.Canvas {
	tr := NewTileRenderer(c, integ, depth)
	whole := NewTile(0, image.Rect(0, 0, c.Width(), c.Height()))
	return tr.RenderTile(whole, newProgressReporter(progress))
}

// RenderTiled splits the image into xdiv x ydiv tiles and renders them on a
// pool of workers (0 means one per CPU). The result is pixel-identical to Render.
func (c *Camera) RenderTiled(integ integrator.Integrator, depth, xdiv, ydiv, workers int, progress ProgressFunc) (*canvas.Canvas, error) {
	if xdiv < 1 || ydiv < 1 {
		return nil, fmt.Errorf("%dx%d: %w", xdiv, ydiv, ErrInvalidDivisions)
	}

	tiles := NewTileGrid(c.Width(), c.Height(), xdiv, ydiv)
	out := canvas.New(c.Width(), c.Height())

	pool := NewWorkerPool(NewTileRenderer(c, integ, depth), out, progress, len(tiles), workers)
	pool.Start()
	defer pool.Stop()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	for range tiles {
		if _, ok := pool.GetResult(); !ok {
			return nil, errors.New("worker pool closed unexpectedly")
		}
	}

	return out, nil
}
