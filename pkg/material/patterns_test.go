package material

import (
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

var (
	white = NewSolidColor(core.White)
	black = NewSolidColor(core.Black)
)

func TestSolidColor(t *testing.T) {
	pattern := NewSolidColor(core.NewColor(0.2, 0.4, 0.6))
	for _, p := range []core.Tuple{core.Point(0, 0, 0), core.Point(1, 0, 0), core.Point(0, 0, 1), core.Point(-3, 7, 2)} {
		if got := pattern.ColorAt(p); !got.Equals(core.NewColor(0.2, 0.4, 0.6)) {
			t.Errorf("ColorAt(%v) = %v, expected constant color", p, got)
		}
	}
}

func TestPatterns_ColorAt(t *testing.T) {
	tests := []struct {
		name     string
		pattern  Pattern
		point    core.Tuple
		expected core.Color
	}{
		{"stripe constant in y", NewStripe(white, black), core.Point(0, 1, 0), core.White},
		{"stripe constant in z", NewStripe(white, black), core.Point(0, 0, 2), core.White},
		{"stripe x=0.9", NewStripe(white, black), core.Point(0.9, 0, 0), core.White},
		{"stripe x=1", NewStripe(white, black), core.Point(1, 0, 0), core.Black},
		{"stripe x=-0.1", NewStripe(white, black), core.Point(-0.1, 0, 0), core.Black},
		{"stripe x=-1", NewStripe(white, black), core.Point(-1, 0, 0), core.Black},
		{"stripe x=-1.1", NewStripe(white, black), core.Point(-1.1, 0, 0), core.White},

		{"gradient 0", NewGradient(white, black), core.Point(0, 0, 0), core.White},
		{"gradient 0.25", NewGradient(white, black), core.Point(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{"gradient 0.5", NewGradient(white, black), core.Point(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{"gradient 0.75", NewGradient(white, black), core.Point(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},

		{"ring origin", NewRing(white, black), core.Point(0, 0, 0), core.White},
		{"ring x", NewRing(white, black), core.Point(1, 0, 0), core.Black},
		{"ring z", NewRing(white, black), core.Point(0, 0, 1), core.Black},
		{"ring diagonal", NewRing(white, black), core.Point(0.708, 0, 0.708), core.Black},

		{"checkers repeat in x", NewCheckers(white, black), core.Point(0.99, 0, 0), core.White},
		{"checkers x=1.01", NewCheckers(white, black), core.Point(1.01, 0, 0), core.Black},
		{"checkers y=1.01", NewCheckers(white, black), core.Point(0, 1.01, 0), core.Black},
		{"checkers z=1.01", NewCheckers(white, black), core.Point(0, 0, 1.01), core.Black},
		{"checkers two steps", NewCheckers(white, black), core.Point(1.01, 1.01, 0), core.White},

		{"radial origin", NewRadialGradient(white, black, 0), core.Point(0, 0, 0), core.White},
		{"radial x=0.25", NewRadialGradient(white, black, 0), core.Point(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{"radial z=0.5", NewRadialGradient(white, black, 0), core.Point(0, 0, 0.5), core.NewColor(0.5, 0.5, 0.5)},
		{"radial ignores y", NewRadialGradient(white, black, 0), core.Point(0, 0.5, 0), core.White},
		{"radial spherical y", NewRadialGradient(white, black, 1), core.Point(0, 0.5, 0), core.NewColor(0.5, 0.5, 0.5)},

		{"blended", NewBlended(white, black), core.Point(0.3, 0.2, 0.1), core.NewColor(0.5, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pattern.ColorAt(tt.point)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPattern_Transform(t *testing.T) {
	pattern := NewStripe(white, black)
	if !pattern.Transform().Equals(core.Identity4()) {
		t.Error("New pattern should have identity transform")
	}

	pattern.SetTransform(core.Scaling(2, 2, 2))
	if got := pattern.ColorAt(core.Point(1.5, 0, 0)); !got.Equals(core.White) {
		t.Errorf("Scaled stripe at x=1.5: expected white, got %v", got)
	}

	pattern.SetTransform(core.Translation(0.5, 0, 0))
	if got := pattern.ColorAt(core.Point(2.5, 0, 0)); !got.Equals(core.White) {
		t.Errorf("Translated stripe at x=2.5: expected white, got %v", got)
	}
}

func TestPattern_Nested(t *testing.T) {
	green := NewSolidColor(core.NewColor(0, 1, 0))
	red := NewSolidColor(core.NewColor(1, 0, 0))

	p0 := NewStripe(white, black)
	p0.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	p1 := NewStripe(green, red)
	p1.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	pattern := NewStripe(p0, p1)
	pattern.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	tests := []struct {
		x        float64
		expected core.Color
	}{
		{0.125, core.White},
		{0.375, core.Black},
		{0.625, core.NewColor(0, 1, 0)},
		{0.875, core.NewColor(1, 0, 0)},
	}

	for _, tt := range tests {
		if got := pattern.ColorAt(core.Point(tt.x, 0, 0)); !got.Equals(tt.expected) {
			t.Errorf("x=%.3f: expected %v, got %v", tt.x, tt.expected, got)
		}
	}
}

func TestPerturbed_StaysWithinWrappedColors(t *testing.T) {
	pattern := NewPerturbed(NewStripe(white, black), 0.5, 4, 0.9)

	for i := 0; i < 50; i++ {
		x := float64(i) * 0.173
		got := pattern.ColorAt(core.Point(x, 0.3, -x))
		if !got.Equals(core.White) && !got.Equals(core.Black) {
			t.Fatalf("Perturbed stripe produced a color outside the stripe set: %v", got)
		}
	}
}

func TestPerturbed_ZeroScaleIsIdentity(t *testing.T) {
	inner := NewGradient(white, black)
	pattern := NewPerturbed(inner, 0, 3, 0.5)

	for _, x := range []float64{0.1, 0.45, 0.8} {
		p := core.Point(x, 0, 0)
		if got, expected := pattern.ColorAt(p), inner.ColorAt(p); !got.Equals(expected) {
			t.Errorf("x=%.2f: expected %v, got %v", x, expected, got)
		}
	}
}
