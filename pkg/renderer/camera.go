package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

var (
	ErrInvalidResolution  = errors.New("invalid resolution")
	ErrInvalidFieldOfView = errors.New("field of view must be in (0, pi)")
	ErrInvalidDivisions   = errors.New("tile divisions must be positive")
)

// Camera maps pixels of a width x height canvas onto a view plane one unit in
// front of the eye, then into world space through the inverse view transform.
type Camera struct {
	resolution  Resolution
	fieldOfView float64
	transform   core.Matrix4
	inverse     core.Matrix4
	halfWidth   float64
	halfHeight  float64
	pixelSize   float64
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(res Resolution, fieldOfView float64) (*Camera, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}
	if !(fieldOfView > 0 && fieldOfView < math.Pi) {
		return nil, fmt.Errorf("%v: %w", fieldOfView, ErrInvalidFieldOfView)
	}

	c := &Camera{
		resolution:  res,
		fieldOfView: fieldOfView,
		transform:   core.Identity4(),
		inverse:     core.Identity4(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := res.AspectRatio()
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(res.Width)

	return c, nil
}

// NewCameraFromConfig builds a camera from a scene camera description
func NewCameraFromConfig(cfg scene.CameraConfig) (*Camera, error) {
	c, err := NewCamera(Resolution{Width: cfg.Width, Height: cfg.Height}, cfg.FieldOfView)
	if err != nil {
		return nil, fmt.Errorf("camera %q: %w", cfg.Name, err)
	}
	if err := c.SetTransform(cfg.Transform); err != nil {
		return nil, fmt.Errorf("camera %q: %w", cfg.Name, err)
	}
	return c, nil
}

// SetTransform sets the world to camera view transform
func (c *Camera) SetTransform(m core.Matrix4) error {
	inv, err := m.TryInverse()
	if err != nil {
		return fmt.Errorf("view transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Transform returns the world to camera view transform
func (c *Camera) Transform() core.Matrix4 {
	return c.transform
}

// Resolution returns the image size the camera renders
func (c *Camera) Resolution() Resolution {
	return c.resolution
}

// Width returns the horizontal pixel count
func (c *Camera) Width() int { return c.resolution.Width }

// Height returns the vertical pixel count
func (c *Camera) Height() int { return c.resolution.Height }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize returns the world-space size of one pixel on the view plane
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
