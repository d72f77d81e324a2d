package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Sphere is the unit sphere centered at the object-space origin
type Sphere struct{}

// NewSphere creates a shape wrapping a unit sphere
func NewSphere() *Shape {
	return NewShape(&Sphere{})
}

// NewGlassSphere creates a fully transparent unit sphere with refractive index 1.5
func NewGlassSphere() *Shape {
	s := NewSphere()
	s.Material.Transparency = 1.0
	s.Material.RefractiveIndex = 1.5
	return s
}

func (s *Sphere) Kind() Kind { return KindSphere }
func (s *Sphere) primitive() {}

// LocalIntersect solves |O + tD|² = 1
func (s *Sphere) LocalIntersect(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	n := point.Subtract(core.Point(0, 0, 0))
	n.W = 0
	return n.Normalize()
}
