package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewRefractionScene creates a glass sphere holding an air bubble, surrounded
// by smaller glass and opaque spheres
func NewRefractionScene() *Scene {
	w := NewWorld()

	grey25 := material.NewSolidColor(core.NewColor(0.25, 0.25, 0.25))
	grey75 := material.NewSolidColor(core.NewColor(0.75, 0.75, 0.75))
	stripes1 := material.NewStripe(grey25, grey75)
	stripes1.SetTransform(core.Scaling(0.4, 0.4, 0.4).Then(core.RotationY(math.Pi / 4)))
	stripes2 := material.NewStripe(grey25, grey75)
	stripes2.SetTransform(core.Scaling(0.4, 0.4, 0.4).Then(core.RotationY(-math.Pi / 4)))
	floorPattern := material.NewBlended(stripes1, stripes2)
	floorPattern.SetTransform(core.RotationY(-math.Pi / 16))

	floor := geometry.NewPlane()
	floor.Material.Color = core.NewColor(1, 0.9, 0.9)
	floor.Material.Ambient = 0.2
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.2
	floor.Material.Pattern = floorPattern
	w.AddObject(floor)

	radius := 1.5
	glass := geometry.NewSphere()
	glass.SetTransform(core.Scaling(radius, radius, radius).Then(core.Translation(1.1, radius, 0)))
	glass.Material.Diffuse = 0.1
	glass.Material.Specular = 1
	glass.Material.Shininess = 300
	glass.Material.Reflective = 1
	glass.Material.Transparency = 1
	glass.Material.RefractiveIndex = material.Glass
	w.AddObject(glass)

	bubbleRadius := radius * 0.8
	bubble := geometry.NewSphere()
	bubble.SetTransform(core.Scaling(bubbleRadius, bubbleRadius, bubbleRadius).Then(core.Translation(1.1, radius, 0)))
	bubble.Material.Ambient = 0
	bubble.Material.Diffuse = 0
	bubble.Material.Specular = 0.9
	bubble.Material.Shininess = 300
	bubble.Material.Reflective = 0.9
	bubble.Material.Transparency = 0.9
	bubble.Material.RefractiveIndex = material.Air
	w.AddObject(bubble)

	red := geometry.NewSphere()
	red.SetTransform(core.Scaling(0.4, 0.4, 0.4).Then(core.Translation(-2.3, 0.4, -1.2)))
	red.Material.Color = core.NewColor(1, 0, 0)
	red.Material.Ambient = 0.15
	red.Material.Diffuse = 0.1
	red.Material.Specular = 0.7
	red.Material.Shininess = 100
	red.Material.Reflective = 1
	red.Material.Transparency = 1
	red.Material.RefractiveIndex = material.Glass
	w.AddObject(red)

	magenta := geometry.NewSphere()
	magenta.SetTransform(core.Scaling(0.2, 0.2, 0.2).Then(core.Translation(1.5, 0.2, -1.8)))
	magenta.Material.Color = core.NewColor(0.8, 0, 0.8)
	magenta.Material.Specular = 0.5
	magenta.Material.Shininess = 10
	w.AddObject(magenta)

	blue := geometry.NewSphere()
	blue.SetTransform(core.Scaling(0.6, 0.6, 0.6).Then(core.Translation(-1, 0.6, -0.8)))
	blue.Material.Color = core.NewColor(0.1, 0, 1)
	blue.Material.Specular = 1
	blue.Material.Shininess = 1000
	blue.Material.Reflective = 0.8
	w.AddObject(blue)

	w.AddLight(lights.NewPointLight(core.Point(5, 10, -8), core.NewColor(0.9, 0.9, 0.9)))

	view := core.ViewTransform(core.Point(0, 2.5, -5), core.Point(0, 0.5, 5), core.Vector(0, 1, 0)).
		Then(core.Translation(0, 0, -2.5))

	return &Scene{
		Name:        "refraction",
		Description: "Glass spheres, one holding an air bubble, over a blended stripe floor",
		World:       w,
		Cameras: []CameraConfig{
			{Name: "front", Width: 640, Height: 480, FieldOfView: math.Pi / 3, Transform: view},
		},
	}
}
