package renderer

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestDrawTileOverlay(t *testing.T) {
	c := canvas.New(16, 16)
	tiles := NewTileGrid(16, 16, 2, 2)

	out := DrawTileOverlay(c, tiles)

	if out.Width != 16 || out.Height != 16 {
		t.Fatalf("expected 16x16, got %dx%d", out.Width, out.Height)
	}
	edge := out.PixelAt(0, 4)
	if edge.R == 0 || edge.B == 0 {
		t.Errorf("expected outline color on tile edge, got %v", edge)
	}
	if edge.G != 0 {
		t.Errorf("expected magenta outline, got %v", edge)
	}
	if interior := out.PixelAt(4, 4); !interior.Equals(core.Black) {
		t.Errorf("expected tile interior untouched, got %v", interior)
	}
	if !c.PixelAt(0, 4).Equals(core.Black) {
		t.Error("expected source canvas to be left unmodified")
	}
}
