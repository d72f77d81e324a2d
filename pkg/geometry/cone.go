package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Cone is a double-napped cone with its apex at the object-space origin,
// truncated to the open interval (Minimum, Maximum) along y. The radius at
// height y is |y|, so caps are bounded by their own height.
type Cone struct {
	Minimum   float64
	Maximum   float64
	ClosedMin bool
	ClosedMax bool
}

// NewCone creates a shape wrapping a truncated cone
func NewCone(minimum, maximum float64, closedMin, closedMax bool) *Shape {
	return NewShape(&Cone{
		Minimum:   minimum,
		Maximum:   maximum,
		ClosedMin: closedMin,
		ClosedMax: closedMax,
	})
}

// NewInfiniteCone creates a shape wrapping an unbounded open double cone
func NewInfiniteCone() *Shape {
	return NewCone(math.Inf(-1), math.Inf(1), false, false)
}

func (c *Cone) Kind() Kind { return KindCone }
func (c *Cone) primitive() {}

func (c *Cone) LocalIntersect(ray core.Ray) []float64 {
	var xs []float64
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.EPSILON && math.Abs(b) < core.EPSILON:
		// no body hit, caps only
	case math.Abs(a) < core.EPSILON:
		// ray parallel to one nappe
		t := -cc / (2 * b)
		if y := o.Y + t*d.Y; c.Minimum < y && y < c.Maximum {
			xs = append(xs, t)
		}
	default:
		disc := b*b - 4*a*cc
		if disc < 0 {
			break
		}
		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if y0 := o.Y + t0*d.Y; c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, t0)
		}
		if y1 := o.Y + t1*d.Y; c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, t1)
		}
	}

	return c.intersectCaps(ray, xs)
}

func (c *Cone) intersectCaps(ray core.Ray, xs []float64) []float64 {
	if math.Abs(ray.Direction.Y) < core.EPSILON {
		return xs
	}
	if c.ClosedMin {
		t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
		if withinRadius(ray, t, math.Abs(c.Minimum)) {
			xs = append(xs, t)
		}
	}
	if c.ClosedMax {
		t := (c.Maximum - ray.Origin.Y) / ray.Direction.Y
		if withinRadius(ray, t, math.Abs(c.Maximum)) {
			xs = append(xs, t)
		}
	}
	return xs
}

func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	ySquared := point.Y * point.Y

	if c.ClosedMax && dist < ySquared && point.Y >= c.Maximum-core.EPSILON {
		return core.Vector(0, 1, 0)
	}
	if c.ClosedMin && dist < ySquared && point.Y <= c.Minimum+core.EPSILON {
		return core.Vector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.Vector(point.X, y, point.Z).Normalize()
}
