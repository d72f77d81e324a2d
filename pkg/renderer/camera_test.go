package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func tupleApprox(a, b core.Tuple, tolerance float64) bool {
	return approxEqual(a.X, b.X, tolerance) &&
		approxEqual(a.Y, b.Y, tolerance) &&
		approxEqual(a.Z, b.Z, tolerance) &&
		approxEqual(a.W, b.W, tolerance)
}

func colorApprox(a, b core.Color, tolerance float64) bool {
	return approxEqual(a.R, b.R, tolerance) &&
		approxEqual(a.G, b.G, tolerance) &&
		approxEqual(a.B, b.B, tolerance)
}

func mustCamera(t *testing.T, width, height int, fov float64) *Camera {
	t.Helper()
	c, err := NewCamera(Resolution{Width: width, Height: height}, fov)
	if err != nil {
		t.Fatalf("new camera: %v", err)
	}
	return c
}

func TestNewCamera_Defaults(t *testing.T) {
	c := mustCamera(t, 160, 120, math.Pi/2)

	if c.Width() != 160 || c.Height() != 120 {
		t.Errorf("expected 160x120, got %dx%d", c.Width(), c.Height())
	}
	if c.FieldOfView() != math.Pi/2 {
		t.Errorf("expected field of view pi/2, got %v", c.FieldOfView())
	}
	if !c.Transform().Equals(core.Identity4()) {
		t.Errorf("expected identity transform, got %v", c.Transform())
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCamera(t, tt.width, tt.height, math.Pi/2)
			if !approxEqual(c.PixelSize(), 0.01, 1e-9) {
				t.Errorf("expected pixel size 0.01, got %v", c.PixelSize())
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	s := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform core.Matrix4
		px, py    int
		origin    core.Tuple
		direction core.Tuple
	}{
		{
			name:      "center of the canvas",
			transform: core.Identity4(),
			px:        100, py: 50,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0, 0, -1),
		},
		{
			name:      "corner of the canvas",
			transform: core.Identity4(),
			px:        0, py: 0,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "transformed camera",
			transform: core.RotationY(math.Pi / 4).Multiply(core.Translation(0, -2, 5)),
			px:        100, py: 50,
			origin:    core.Point(0, 2, -5),
			direction: core.Vector(s, 0, -s),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCamera(t, 201, 101, math.Pi/2)
			if err := c.SetTransform(tt.transform); err != nil {
				t.Fatalf("set transform: %v", err)
			}

			ray := c.RayForPixel(tt.px, tt.py)
			if !tupleApprox(ray.Origin, tt.origin, 1e-4) {
				t.Errorf("expected origin %v, got %v", tt.origin, ray.Origin)
			}
			if !tupleApprox(ray.Direction, tt.direction, 1e-4) {
				t.Errorf("expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestNewCamera_Errors(t *testing.T) {
	tests := []struct {
		name     string
		res      Resolution
		fov      float64
		expected error
	}{
		{"zero width", Resolution{0, 100}, math.Pi / 2, ErrInvalidResolution},
		{"negative height", Resolution{100, -1}, math.Pi / 2, ErrInvalidResolution},
		{"zero field of view", Resolution{100, 100}, 0, ErrInvalidFieldOfView},
		{"field of view of pi", Resolution{100, 100}, math.Pi, ErrInvalidFieldOfView},
		{"NaN field of view", Resolution{100, 100}, math.NaN(), ErrInvalidFieldOfView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCamera(tt.res, tt.fov)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestCamera_SetTransformSingular(t *testing.T) {
	c := mustCamera(t, 10, 10, math.Pi/2)
	err := c.SetTransform(core.Scaling(0, 1, 1))
	if !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("expected ErrNotInvertible, got %v", err)
	}
	if !c.Transform().Equals(core.Identity4()) {
		t.Error("expected failed SetTransform to leave the transform unchanged")
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	cfg := scene.NewCameraConfig("main", 201, 101, math.Pi/2,
		core.Point(0, 0, -5), core.Point(0, 0, 0), core.Vector(0, 1, 0))

	c, err := NewCameraFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ray := c.RayForPixel(100, 50)
	if !tupleApprox(ray.Origin, core.Point(0, 0, -5), 1e-9) {
		t.Errorf("expected origin (0,0,-5), got %v", ray.Origin)
	}
	if !tupleApprox(ray.Direction, core.Vector(0, 0, 1), 1e-9) {
		t.Errorf("expected direction (0,0,1), got %v", ray.Direction)
	}

	cfg.Width = 0
	if _, err := NewCameraFromConfig(cfg); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("expected ErrInvalidResolution, got %v", err)
	}
}
