package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewPatternScene shows every pattern type on a row of spheres above a ring floor
func NewPatternScene() *Scene {
	w := NewWorld()

	solid := material.NewSolidColor
	red := solid(core.NewColor(0.9, 0.1, 0.1))
	white := solid(core.White)
	blue := solid(core.NewColor(0.1, 0.2, 0.9))
	green := solid(core.NewColor(0.1, 0.8, 0.2))
	yellow := solid(core.NewColor(0.9, 0.8, 0.1))

	rings := material.NewRing(solid(core.NewColor(0.3, 0.3, 0.3)), solid(core.NewColor(0.6, 0.6, 0.6)))
	rings.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	floor := geometry.NewPlane()
	floor.Material.Specular = 0
	floor.Material.Pattern = material.NewPerturbed(rings, 0.3, 4, 0.9)
	w.AddObject(floor)

	stripes := material.NewStripe(red, white)
	stripes.SetTransform(core.Scaling(0.2, 0.2, 0.2).Then(core.RotationZ(math.Pi / 4)))

	gradient := material.NewGradient(blue, white)
	gradient.SetTransform(core.Scaling(2, 1, 1).Then(core.Translation(-1, 0, 0)))

	radial := material.NewRadialGradient(green, white, 1)
	radial.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	checkers := material.NewCheckers(yellow, blue)
	checkers.SetTransform(core.Scaling(0.4, 0.4, 0.4))

	crossA := material.NewStripe(red, white)
	crossA.SetTransform(core.Scaling(0.25, 0.25, 0.25))
	crossB := material.NewStripe(blue, white)
	crossB.SetTransform(core.Scaling(0.25, 0.25, 0.25).Then(core.RotationY(math.Pi / 2)))
	blended := material.NewBlended(crossA, crossB)

	patterns := []material.Pattern{stripes, gradient, radial, checkers, blended}
	for i, p := range patterns {
		s := geometry.NewSphere()
		x := -4 + 2*float64(i)
		s.SetTransform(core.Scaling(0.8, 0.8, 0.8).Then(core.Translation(x, 0.8, 0)))
		s.Material = s.Material.WithPattern(p)
		s.Material.Specular = 0.3
		w.AddObject(s)
	}

	w.AddLight(lights.NewPointLight(core.Point(-6, 10, -10), core.White))

	return &Scene{
		Name:        "patterns",
		Description: "Stripe, gradient, radial, checker, blended and perturbed patterns",
		World:       w,
		Cameras: []CameraConfig{
			NewCameraConfig("main", 640, 480, math.Pi/3,
				core.Point(0, 3, -8), core.Point(0, 0.5, 0), core.Vector(0, 1, 0)),
		},
	}
}
