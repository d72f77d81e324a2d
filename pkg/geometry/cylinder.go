package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the y axis, truncated to the open
// interval (Minimum, Maximum). Each end may be capped independently.
type Cylinder struct {
	Minimum   float64
	Maximum   float64
	ClosedMin bool
	ClosedMax bool
}

// NewCylinder creates a shape wrapping a truncated cylinder
func NewCylinder(minimum, maximum float64, closedMin, closedMax bool) *Shape {
	return NewShape(&Cylinder{
		Minimum:   minimum,
		Maximum:   maximum,
		ClosedMin: closedMin,
		ClosedMax: closedMax,
	})
}

// NewInfiniteCylinder creates a shape wrapping an unbounded open cylinder
func NewInfiniteCylinder() *Shape {
	return NewCylinder(math.Inf(-1), math.Inf(1), false, false)
}

func (c *Cylinder) Kind() Kind { return KindCylinder }
func (c *Cylinder) primitive() {}

func (c *Cylinder) LocalIntersect(ray core.Ray) []float64 {
	var xs []float64

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// a ray parallel to the y axis can only meet the caps
	if math.Abs(a) >= core.EPSILON {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*cc
		if disc < 0 {
			return nil
		}

		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if y0 := ray.Origin.Y + t0*ray.Direction.Y; c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, t0)
		}
		if y1 := ray.Origin.Y + t1*ray.Direction.Y; c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, t1)
		}
	}

	return c.intersectCaps(ray, xs)
}

func (c *Cylinder) intersectCaps(ray core.Ray, xs []float64) []float64 {
	if math.Abs(ray.Direction.Y) < core.EPSILON {
		return xs
	}
	if c.ClosedMin {
		t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
		if withinRadius(ray, t, 1) {
			xs = append(xs, t)
		}
	}
	if c.ClosedMax {
		t := (c.Maximum - ray.Origin.Y) / ray.Direction.Y
		if withinRadius(ray, t, 1) {
			xs = append(xs, t)
		}
	}
	return xs
}

func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if c.ClosedMax && dist < 1 && point.Y >= c.Maximum-core.EPSILON {
		return core.Vector(0, 1, 0)
	}
	if c.ClosedMin && dist < 1 && point.Y <= c.Minimum+core.EPSILON {
		return core.Vector(0, -1, 0)
	}
	return core.Vector(point.X, 0, point.Z)
}

// withinRadius reports whether the ray at t lies within radius of the y axis
func withinRadius(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}
