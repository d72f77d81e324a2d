package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct{}

// NewPlane creates a shape wrapping an xz plane
func NewPlane() *Shape {
	return NewShape(&Plane{})
}

func (p *Plane) Kind() Kind { return KindPlane }
func (p *Plane) primitive() {}

// LocalIntersect returns a single hit, or none when the ray is parallel to the
// plane. Coplanar rays count as a miss.
func (p *Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.EPSILON {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

func (p *Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
