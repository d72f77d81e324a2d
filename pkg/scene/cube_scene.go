package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewCubeScene creates a grid of reflective cubes inside a large cube room
func NewCubeScene() *Scene {
	w := NewWorld()

	// the room neither casts nor receives shadows so the light can sit outside it
	room := geometry.NewCube()
	room.SetTransform(core.Scaling(200, 200, 200))
	room.Material.Color = core.NewColor(0.8, 0.8, 1)
	room.Material.Diffuse = 0.3
	room.Material.Ambient = 0.2
	room.Material.Specular = 0
	room.Material.Shininess = 1
	room.Material.CastsShadow = false
	room.Material.ReceivesShadow = false
	w.AddObject(room)

	green := material.DefaultMaterial()
	green.Color = core.NewColor(0, 0.8, 0.1)
	green.Specular = 0.4
	green.Reflective = 0.7
	addCubeGrid(w, core.Point(4, 0, 5), 1.3, green, 3, 3.9, math.Pi/6)

	red := material.DefaultMaterial()
	red.Color = core.NewColor(0.9, 0, 0.1)
	red.Diffuse = 0.7
	red.Reflective = 0.7
	addCubeGrid(w, core.Point(4, -12, -10), 1, red, 4, 3, math.Pi/6)

	ball := geometry.NewSphere()
	ball.SetTransform(core.Scaling(18, 18, 18).
		Then(core.Translation(-24, 0, -3)).
		Then(core.RotationY(math.Pi / 6)))
	ball.Material.Diffuse = 0.1
	ball.Material.Specular = 1
	ball.Material.Shininess = 1000
	ball.Material.Reflective = 0.5
	w.AddObject(ball)

	blue := geometry.NewCube()
	blue.SetTransform(core.Scaling(2, 2, 2).
		Then(core.RotationY(math.Pi / 6)).
		Then(core.RotationX(math.Pi / 4)).
		Then(core.Translation(0, 4, -5)))
	blue.Material.Color = core.NewColor(0, 0.1, 0.8)
	blue.Material.Reflective = 0.7
	w.AddObject(blue)

	third := core.NewColor(1, 1, 1).Multiply(1.0 / 3)
	w.AddLight(lights.NewPointLight(core.Point(-2, 10, -10), third))
	w.AddLight(lights.NewPointLight(core.Point(20, 10, -10), third))
	w.AddLight(lights.NewPointLight(core.Point(0, 30, -40), third))

	return &Scene{
		Name:        "cubes",
		Description: "Grids of reflective cubes in a cube room",
		World:       w,
		Cameras: []CameraConfig{
			NewCameraConfig("main", 640, 480, math.Pi/3,
				core.Point(-10, 8, -30), core.Point(0, 0, 0), core.Vector(0, 1, 0)),
		},
	}
}

// addCubeGrid adds an n×n×n block of cubes of the given size, spaced sep apart
// from origin, with the whole block rotated about y
func addCubeGrid(w *World, origin core.Tuple, size float64, m material.Material, n int, sep, rotation float64) {
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				c := geometry.NewCube()
				c.SetTransform(core.Scaling(size, size, size).
					Then(core.Translation(origin.X, origin.Y, origin.Z)).
					Then(core.Translation(float64(x)*sep, float64(y)*sep, float64(z)*sep)).
					Then(core.RotationY(rotation)))
				c.Material = m
				w.AddObject(c)
			}
		}
	}
}
