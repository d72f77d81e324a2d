package integrator

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Computations holds the shading state derived from a single intersection
type Computations struct {
	T          float64
	Object     geometry.ObjectIndex
	Point      core.Tuple
	OverPoint  core.Tuple // Point nudged along the normal, origin for shadow and reflection rays
	UnderPoint core.Tuple // Point nudged against the normal, origin for refraction rays
	Eyev       core.Tuple
	Normalv    core.Tuple
	Reflectv   core.Tuple
	Inside     bool    // Whether the ray starts inside the object
	N1         float64 // Refractive index of the medium being exited
	N2         float64 // Refractive index of the medium being entered
}

// PrepareComputations computes the shading state for hit, which must be one of
// xs, the full sorted intersection list of ray. Panics if hit has no object.
func PrepareComputations(w *scene.World, hit geometry.Intersection, ray core.Ray, xs geometry.Intersections) Computations {
	if hit.Object == geometry.NoObject {
		panic("prepare computations: intersection has no object")
	}
	object := w.Object(hit.Object)

	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.At(hit.T),
		Eyev:   ray.Direction.Negate(),
	}
	comps.Normalv = object.NormalAt(comps.Point, w)

	if comps.Normalv.Dot(comps.Eyev) < 0 {
		comps.Inside = true
		comps.Normalv = comps.Normalv.Negate()
	}

	comps.Reflectv = ray.Direction.Reflect(comps.Normalv)
	offset := comps.Normalv.Multiply(core.EPSILON)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(w, hit, xs)
	return comps
}

// refractiveIndices walks xs keeping a stack of the objects the ray is inside,
// returning the indices on either side of hit.
func refractiveIndices(w *scene.World, hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = material.Vacuum, material.Vacuum
	var containers []geometry.ObjectIndex

	top := func() float64 {
		if len(containers) == 0 {
			return material.Vacuum
		}
		return w.Object(containers[len(containers)-1]).Material.RefractiveIndex
	}

	for _, x := range xs {
		isHit := x == hit
		if isHit {
			n1 = top()
		}

		if i := indexOf(containers, x.Object); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = top()
			break
		}
	}
	return n1, n2
}

func indexOf(containers []geometry.ObjectIndex, idx geometry.ObjectIndex) int {
	for i, c := range containers {
		if c == idx {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the intersection
func Schlick(comps Computations) float64 {
	cos := comps.Eyev.Dot(comps.Normalv)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			// total internal reflection
			return 1.0
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
