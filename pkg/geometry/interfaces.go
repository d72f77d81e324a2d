package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Kind identifies the primitive variant owned by a Shape
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Primitive is the geometry owned by a Shape, expressed in its own object space.
// The set of primitives is closed: Sphere, Plane, Cube, Cylinder, Cone and Group.
type Primitive interface {
	Kind() Kind
	// LocalIntersect returns the t values at which an object-space ray meets the surface
	LocalIntersect(ray core.Ray) []float64
	// LocalNormalAt returns the object-space normal at a point assumed to lie on the surface
	LocalNormalAt(point core.Tuple) core.Tuple

	primitive()
}

// Arena resolves object indices to shapes. Groups need one to reach their children.
type Arena interface {
	Object(idx ObjectIndex) *Shape
}
