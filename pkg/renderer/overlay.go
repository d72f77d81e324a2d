package renderer

import (
	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/fogleman/gg"
)

// DrawTileOverlay returns a copy of c with the outline of every tile drawn on top
func DrawTileOverlay(c *canvas.Canvas, tiles []*Tile) *canvas.Canvas {
	img := c.ToImage()
	dc := gg.NewContextForRGBA(img)

	dc.SetRGBA(1, 0, 1, 0.6)
	dc.SetLineWidth(1)
	for _, tile := range tiles {
		b := tile.Bounds
		dc.DrawRectangle(float64(b.Min.X)+0.5, float64(b.Min.Y)+0.5, float64(b.Dx())-1, float64(b.Dy())-1)
		dc.Stroke()
	}

	return canvas.FromImage(dc.Image())
}
