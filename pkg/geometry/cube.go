package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Cube is the axis-aligned box spanning [-1, 1] on every axis
type Cube struct{}

// NewCube creates a shape wrapping an axis-aligned unit cube
func NewCube() *Shape {
	return NewShape(&Cube{})
}

func (c *Cube) Kind() Kind { return KindCube }
func (c *Cube) primitive() {}

// LocalIntersect uses the slab method
func (c *Cube) LocalIntersect(ray core.Ray) []float64 {
	tmin, tmax := checkAxis(ray.Origin.X, ray.Direction.X)

	ymin, ymax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	tmin = math.Max(tmin, ymin)
	tmax = math.Min(tmax, ymax)
	if tmin > tmax {
		return nil
	}

	zmin, zmax := checkAxis(ray.Origin.Z, ray.Direction.Z)
	tmin = math.Max(tmin, zmin)
	tmax = math.Min(tmax, zmax)
	if tmin > tmax {
		return nil
	}

	return []float64{tmin, tmax}
}

// checkAxis returns the t values where the ray crosses the two planes bounding
// one axis. A direction of zero yields signed infinities.
func checkAxis(origin, direction float64) (float64, float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	var tmin, tmax float64
	if math.Abs(direction) >= core.EPSILON {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = math.Copysign(math.Inf(1), tminNumerator)
		tmax = math.Copysign(math.Inf(1), tmaxNumerator)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalNormalAt picks the axis of the largest coordinate magnitude
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch maxc {
	case absX:
		return core.Vector(point.X, 0, 0)
	case absY:
		return core.Vector(0, point.Y, 0)
	default:
		return core.Vector(0, 0, point.Z)
	}
}
