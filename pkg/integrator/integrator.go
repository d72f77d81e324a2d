package integrator

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// ColorAt computes the color seen along ray, allowing at most depth
	// further reflection or refraction bounces
	ColorAt(ray core.Ray, depth int) core.Color
}
