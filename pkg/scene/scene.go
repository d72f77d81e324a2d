package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// ErrCameraNotFound is returned when a scene has no camera with the requested name
var ErrCameraNotFound = errors.New("camera not found")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	World       *World
	Cameras     []CameraConfig // first camera is the default
}

// CameraConfig is the construction triple for a camera: resolution, field of
// view and view transform
type CameraConfig struct {
	Name        string
	Width       int          // Image width in pixels
	Height      int          // Image height in pixels
	FieldOfView float64      // Radians, across the wider image dimension
	Transform   core.Matrix4 // World to camera view transform
}

// DefaultCameraConfig returns a 640x480 camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Name:        "default",
		Width:       640,
		Height:      480,
		FieldOfView: math.Pi / 3,
		Transform:   core.Identity4(),
	}
}

// NewCameraConfig creates a camera configuration looking from `from` toward `to`
func NewCameraConfig(name string, width, height int, fov float64, from, to, up core.Tuple) CameraConfig {
	return CameraConfig{
		Name:        name,
		Width:       width,
		Height:      height,
		FieldOfView: fov,
		Transform:   core.ViewTransform(from, to, up),
	}
}

// Camera returns the camera named name. An empty name selects the scene's
// first camera, or DefaultCameraConfig if the scene defines none.
func (s *Scene) Camera(name string) (CameraConfig, error) {
	if name == "" {
		if len(s.Cameras) == 0 {
			return DefaultCameraConfig(), nil
		}
		return s.Cameras[0], nil
	}
	for _, c := range s.Cameras {
		if c.Name == name {
			return c, nil
		}
	}
	return CameraConfig{}, fmt.Errorf("scene %q: camera %q: %w", s.Name, name, ErrCameraNotFound)
}

// GetPrimitiveCount returns the number of leaf shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for i := 0; i < s.World.Len(); i++ {
		if s.World.shapes[i].Kind() != geometry.KindGroup {
			count++
		}
	}
	return count
}
