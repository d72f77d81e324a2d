package renderer

import (
	"image"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{ID: id, Bounds: bounds}
}

// NewTileGrid splits a width x height image into xdiv columns and ydiv rows
// of tiles. Every tile is width/xdiv by height/ydiv pixels, except that the
// last column and row absorb the remainder. Divisions are clamped to
// [1, width] and [1, height] so that no tile is empty.
func NewTileGrid(width, height, xdiv, ydiv int) []*Tile {
	xdiv = clampDivisions(xdiv, width)
	ydiv = clampDivisions(ydiv, height)

	tileWidth := width / xdiv
	tileHeight := height / ydiv

	tiles := make([]*Tile, 0, xdiv*ydiv)
	for row := 0; row < ydiv; row++ {
		y0 := row * tileHeight
		y1 := y0 + tileHeight
		if row == ydiv-1 {
			y1 = height
		}
		for col := 0; col < xdiv; col++ {
			x0 := col * tileWidth
			x1 := x0 + tileWidth
			if col == xdiv-1 {
				x1 = width
			}
			tiles = append(tiles, NewTile(len(tiles), image.Rect(x0, y0, x1, y1)))
		}
	}
	return tiles
}

func clampDivisions(div, size int) int {
	return max(1, min(div, size))
}
