package integrator

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Whitted is a recursive ray tracer: Phong shading at each hit plus mirror
// reflection and Snell refraction, bounded by a recursion depth.
type Whitted struct {
	World *scene.World
}

// NewWhitted creates a Whitted integrator over world
func NewWhitted(world *scene.World) *Whitted {
	return &Whitted{World: world}
}

// ColorAt returns the color seen along ray, or black if it hits nothing
func (wt *Whitted) ColorAt(ray core.Ray, depth int) core.Color {
	xs := wt.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := PrepareComputations(wt.World, hit, ray, xs)
	return wt.ShadeHit(comps, depth)
}

// ShadeHit sums the local lighting from every light with the reflected and
// refracted contributions. Surfaces that both reflect and refract are blended
// with the Schlick approximation.
func (wt *Whitted) ShadeHit(comps Computations, depth int) core.Color {
	shape := wt.World.Object(comps.Object)
	mat := shape.Material
	objectPoint := shape.WorldToObject(comps.OverPoint, wt.World)

	surface := core.Black
	for _, light := range wt.World.Lights {
		shadowed := mat.ReceivesShadow && wt.World.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(mat.Lighting(light, objectPoint, comps.OverPoint, comps.Eyev, comps.Normalv, shadowed))
	}

	reflected := wt.ReflectedColor(comps, depth)
	refracted := wt.RefractedColor(comps, depth)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror bounce at the hit
func (wt *Whitted) ReflectedColor(comps Computations, depth int) core.Color {
	mat := wt.World.Object(comps.Object).Material
	if mat.Reflective == 0 || depth < 1 {
		return core.Black
	}

	ray := core.NewRay(comps.OverPoint, comps.Reflectv)
	return wt.ColorAt(ray, depth-1).Multiply(mat.Reflective)
}

// RefractedColor traces the transmitted ray through the hit. Total internal
// reflection contributes black.
func (wt *Whitted) RefractedColor(comps Computations, depth int) core.Color {
	mat := wt.World.Object(comps.Object).Material
	if mat.Transparency == 0 || depth < 1 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eyev.Dot(comps.Normalv)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normalv.Multiply(nRatio*cosI - cosT).Subtract(comps.Eyev.Multiply(nRatio))
	ray := core.NewRay(comps.UnderPoint, direction)
	return wt.ColorAt(ray, depth-1).Multiply(mat.Transparency)
}

var _ Integrator = (*Whitted)(nil)
