package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Canvas is a width x height grid of unclamped colors, origin at top-left
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a canvas with every pixel black
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) offset(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) outside %dx%d", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// PixelAt returns the color at (x, y). It panics if the pixel is out of range.
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[c.offset(x, y)]
}

// WritePixel sets the color at (x, y). It panics if the pixel is out of range.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.pixels[c.offset(x, y)] = col
}

// Blit copies sub into c with its top-left corner at (x0, y0). It panics if
// sub does not fit inside c.
func (c *Canvas) Blit(sub *Canvas, x0, y0 int) {
	if x0 < 0 || y0 < 0 || x0+sub.Width > c.Width || y0+sub.Height > c.Height {
		panic(fmt.Sprintf("canvas: %dx%d blit at (%d, %d) outside %dx%d",
			sub.Width, sub.Height, x0, y0, c.Width, c.Height))
	}
	for y := 0; y < sub.Height; y++ {
		start := (y0+y)*c.Width + x0
		copy(c.pixels[start:start+sub.Width], sub.pixels[y*sub.Width:(y+1)*sub.Width])
	}
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each channel to [0, 1]
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(p.R),
				G: toByte(p.G),
				B: toByte(p.B),
				A: 255,
			})
		}
	}
	return img
}

// toByte clamps v to [0, 1] and scales it to 0..255
func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// FromImage converts an 8-bit image into a canvas
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy())
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			c.pixels[y*c.Width+x] = core.NewColor(float64(r)/0xffff, float64(g)/0xffff, float64(bl)/0xffff)
		}
	}
	return c
}
