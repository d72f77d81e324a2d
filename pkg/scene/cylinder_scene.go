package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewCylinderScene creates open, half-open and closed cylinders on a striped floor
func NewCylinderScene() *Scene {
	w := NewWorld()

	floor := geometry.NewPlane()
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.1
	stripes := material.NewStripe(
		material.NewSolidColor(core.NewColor(0.45, 0.45, 0.5)),
		material.NewSolidColor(core.NewColor(0.7, 0.7, 0.75)),
	)
	stripes.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.RotationY(math.Pi / 3)))
	floor.Material.Pattern = stripes
	w.AddObject(floor)

	// open tube tilted toward the camera
	open := geometry.NewCylinder(0, 2, false, false)
	open.SetTransform(core.Scaling(0.6, 1, 0.6).
		Then(core.RotationX(-math.Pi / 3)).
		Then(core.Translation(-2.2, 1, 0)))
	open.Material.Color = core.NewColor(0.9, 0.6, 0.1)
	open.Material.Specular = 1
	open.Material.Shininess = 300
	open.Material.Reflective = 0.3
	w.AddObject(open)

	// closed only at the bottom, so the inside is visible from above
	cup := geometry.NewCylinder(0, 1.5, true, false)
	cup.SetTransform(core.Scaling(0.7, 1, 0.7))
	cup.Material.Color = core.NewColor(0.2, 0.3, 0.9)
	cup.Material.Diffuse = 0.8
	w.AddObject(cup)

	glass := geometry.NewCylinder(0, 1, true, true)
	glass.SetTransform(core.Scaling(0.5, 1, 0.5).Then(core.Translation(2, 0, -0.5)))
	glass.Material.Color = core.NewColor(0.1, 0.1, 0.1)
	glass.Material.Diffuse = 0.1
	glass.Material.Specular = 1
	glass.Material.Shininess = 300
	glass.Material.Reflective = 0.9
	glass.Material.Transparency = 0.9
	glass.Material.RefractiveIndex = material.Glass
	w.AddObject(glass)

	pillar := geometry.NewInfiniteCylinder()
	pillar.SetTransform(core.Scaling(0.3, 1, 0.3).Then(core.Translation(1, 0, 4)))
	pillar.Material.Color = core.NewColor(0.8, 0.2, 0.2)
	w.AddObject(pillar)

	w.AddLight(lights.NewPointLight(core.Point(-5, 8, -10), core.White))

	return &Scene{
		Name:        "cylinders",
		Description: "Open, half-open, closed and infinite cylinders",
		World:       w,
		Cameras: []CameraConfig{
			NewCameraConfig("main", 640, 480, math.Pi/3,
				core.Point(0, 3.5, -6), core.Point(0, 0.75, 0), core.Vector(0, 1, 0)),
		},
	}
}
