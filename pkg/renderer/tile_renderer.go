package renderer

import (
	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *Camera
	integrator integrator.Integrator
	depth      int
}

// NewTileRenderer creates a tile renderer tracing camera rays through integratorInst
func NewTileRenderer(camera *Camera, integratorInst integrator.Integrator, depth int) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		integrator: integratorInst,
		depth:      depth,
	}
}

// RenderTile renders the pixels within tile into a tile-sized canvas,
// reporting progress once per completed row
func (tr *TileRenderer) RenderTile(tile *Tile, progress *progressReporter) *canvas.Canvas {
	bounds := tile.Bounds
	out := canvas.New(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.RayForPixel(x, y)
			out.WritePixel(x-bounds.Min.X, y-bounds.Min.Y, tr.integrator.ColorAt(ray, tr.depth))
		}
		progress.report(bounds.Dx())
	}

	return out
}
