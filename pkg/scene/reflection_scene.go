package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewReflectionScene creates mirror-like spheres over a reflective checkered floor
func NewReflectionScene() *Scene {
	w := NewWorld()

	floor := geometry.NewPlane()
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.3
	checkers := material.NewCheckers(
		material.NewSolidColor(core.NewColor(0.35, 0.35, 0.35)),
		material.NewSolidColor(core.NewColor(0.65, 0.65, 0.65)),
	)
	floor.Material.Pattern = checkers
	w.AddObject(floor)

	mirror := geometry.NewSphere()
	mirror.SetTransform(core.Translation(-0.5, 1, 0.5))
	mirror.Material.Color = core.NewColor(0.1, 0.1, 0.1)
	mirror.Material.Diffuse = 0.2
	mirror.Material.Specular = 1
	mirror.Material.Shininess = 300
	mirror.Material.Reflective = 0.9
	w.AddObject(mirror)

	red := geometry.NewSphere()
	red.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.Translation(1.5, 0.5, -0.5)))
	red.Material.Color = core.NewColor(0.9, 0.1, 0.1)
	red.Material.Diffuse = 0.7
	red.Material.Specular = 0.3
	red.Material.Reflective = 0.2
	w.AddObject(red)

	gold := geometry.NewSphere()
	gold.SetTransform(core.Scaling(0.33, 0.33, 0.33).Then(core.Translation(-1.5, 0.33, -0.75)))
	gold.Material.Color = core.NewColor(0.9, 0.7, 0)
	gold.Material.Specular = 0.9
	gold.Material.Shininess = 500
	gold.Material.Reflective = 0.4
	w.AddObject(gold)

	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	return &Scene{
		Name:        "reflection",
		Description: "Reflective spheres on a checkered floor",
		World:       w,
		Cameras: []CameraConfig{
			NewCameraConfig("main", 640, 480, math.Pi/3,
				core.Point(0, 1.5, -5), core.Point(0, 1, 0), core.Vector(0, 1, 0)),
		},
	}
}
