package lights

import "github.com/df07/go-recursive-raytracer/pkg/core"

// PointLight is a light source with no size, emitting equally in all directions
type PointLight struct {
	Position  core.Tuple // Position of the light (a point)
	Intensity core.Color // Brightness and color of the light
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit vector from point toward the light and the distance to it
func (l PointLight) DirectionFrom(point core.Tuple) (core.Tuple, float64) {
	v := l.Position.Subtract(point)
	distance := v.Length()
	return v.Normalize(), distance
}
