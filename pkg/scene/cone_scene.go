package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewConeScene creates a row of truncated cones over a checkered stripe floor
func NewConeScene() *Scene {
	w := NewWorld()

	stripes1 := material.NewStripe(
		material.NewSolidColor(core.NewColor(167.0/255, 83.0/255, 104.0/255)),
		material.NewSolidColor(core.NewColor(124.0/255, 41.0/255, 62.0/255)),
	)
	stripes1.SetTransform(core.Scaling(0.3, 0.3, 0.3).Then(core.RotationY(math.Pi / 4)))
	stripes2 := material.NewStripe(
		material.NewSolidColor(core.NewColor(63.0/255, 63.0/255, 63.0/255)),
		material.NewSolidColor(core.NewColor(104.0/255, 104.0/255, 104.0/255)),
	)
	stripes2.SetTransform(core.Scaling(0.3, 0.3, 0.3).Then(core.RotationY(-math.Pi / 4)))

	floor := geometry.NewPlane()
	floor.SetTransform(core.Translation(0, -1, 0))
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.2
	floor.Material.Pattern = material.NewCheckers(stripes1, stripes2)
	w.AddObject(floor)

	// double cone with both nappes visible
	hourglass := geometry.NewCone(-1, 1, false, false)
	hourglass.SetTransform(core.Translation(-4, 0, 0))
	hourglass.Material.Color = core.NewColor(1, 0.843, 0)
	hourglass.Material.Ambient = 0.2
	hourglass.Material.Specular = 1
	hourglass.Material.Shininess = 1000
	hourglass.Material.Reflective = 0.6
	w.AddObject(hourglass)

	capped := geometry.NewCone(-1, 0, true, false)
	capped.SetTransform(core.RotationX(math.Pi).Then(core.Translation(-1.5, 0, -1)))
	capped.Material.Color = core.NewColor(0.2, 0, 0.9)
	capped.Material.Specular = 1
	capped.Material.Shininess = 1000
	capped.Material.Reflective = 0.4
	w.AddObject(capped)

	tilted := geometry.NewCone(-2, 0, true, false)
	tilted.SetTransform(core.RotationX(-math.Pi / 4).Then(core.Translation(1.5, 0.9, 1)))
	tilted.Material.Color = core.NewColor(0, 0.9, 0.1)
	tilted.Material.Specular = 1
	tilted.Material.Shininess = 300
	tilted.Material.Reflective = 0.5
	w.AddObject(tilted)

	spinning := geometry.NewCone(0, 1.5, false, true)
	spinning.SetTransform(core.Scaling(0.5, 1, 0.5).
		Then(core.RotationZ(-math.Pi / 6)).
		Then(core.Translation(4, -1, 0)))
	spinning.Material.Color = core.NewColor(0.9, 0.9, 0.9)
	spinning.Material.Ambient = 0.2
	spinning.Material.Specular = 1
	spinning.Material.Shininess = 300
	spinning.Material.Reflective = 0.3
	w.AddObject(spinning)

	half := core.White.Multiply(0.5)
	w.AddLight(lights.NewPointLight(core.Point(-2, 5, -10), half))
	w.AddLight(lights.NewPointLight(core.Point(5, 5, -10), half))

	return &Scene{
		Name:        "cones",
		Description: "Truncated and capped cones",
		World:       w,
		Cameras: []CameraConfig{
			NewCameraConfig("main", 640, 480, math.Pi/3,
				core.Point(0, 3, -9), core.Point(0, 0, 0), core.Vector(0, 1, 0)),
		},
	}
}
