package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// NewDefaultScene creates three spheres on a floor in front of two walls
func NewDefaultScene() *Scene {
	w := NewWorld()

	floor := geometry.NewPlane()
	floor.Material.Color = core.NewColor(1, 0.9, 0.9)
	floor.Material.Specular = 0
	w.AddObject(floor)

	leftWall := geometry.NewPlane()
	leftWall.SetTransform(core.RotationX(math.Pi / 2).
		Then(core.RotationY(-math.Pi / 4)).
		Then(core.Translation(0, 0, 5)))
	leftWall.Material = floor.Material
	w.AddObject(leftWall)

	rightWall := geometry.NewPlane()
	rightWall.SetTransform(core.RotationX(math.Pi / 2).
		Then(core.RotationY(math.Pi / 4)).
		Then(core.Translation(0, 0, 5)))
	rightWall.Material = floor.Material
	w.AddObject(rightWall)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material.Color = core.NewColor(0.1, 1, 0.5)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3
	w.AddObject(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.Translation(1.5, 0.5, -0.5)))
	right.Material.Color = core.NewColor(0.5, 1, 0.1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3
	w.AddObject(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Scaling(0.33, 0.33, 0.33).Then(core.Translation(-1.5, 0.33, -0.75)))
	left.Material.Color = core.NewColor(1, 0.8, 0.1)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3
	w.AddObject(left)

	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	return &Scene{
		Name:        "default",
		Description: "Three spheres on a floor between two walls",
		World:       w,
		Cameras: []CameraConfig{
			NewCameraConfig("main", 640, 480, math.Pi/3,
				core.Point(0, 1.5, -5), core.Point(0, 1, 0), core.Vector(0, 1, 0)),
		},
	}
}
