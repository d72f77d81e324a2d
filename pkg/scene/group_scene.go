package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewGroupScene creates a hexagon built from nested groups of spheres and
// cylinders, next to a translated group of two spheres
func NewGroupScene() *Scene {
	w := NewWorld()

	checkers := material.NewCheckers(material.NewSolidColor(core.Black), material.NewSolidColor(core.White))
	floor := geometry.NewPlane()
	floor.Material.Pattern = checkers
	floor.Material.Specular = 0
	w.AddObject(floor)

	hexagon := geometry.NewGroup()
	hexagon.SetTransform(core.RotationX(-math.Pi / 6).Then(core.Translation(-1, 1.25, 0.5)))
	hex := w.AddObject(hexagon)

	metal := material.DefaultMaterial()
	metal.Color = core.NewColor(0.85, 0.3, 0.2)
	metal.Specular = 1
	metal.Shininess = 300
	metal.Reflective = 0.3

	for n := 0; n < 6; n++ {
		side := geometry.NewGroup()
		side.SetTransform(core.RotationY(float64(n) * math.Pi / 3))
		s := w.AddObject(side)
		addChild(w, hex, s)

		corner := geometry.NewSphere()
		corner.SetTransform(core.Scaling(0.25, 0.25, 0.25).Then(core.Translation(0, 0, -1)))
		corner.Material = metal
		addChild(w, s, w.AddObject(corner))

		edge := geometry.NewCylinder(0, 1, false, false)
		edge.SetTransform(core.Scaling(0.25, 1, 0.25).
			Then(core.RotationZ(-math.Pi / 2)).
			Then(core.RotationY(-math.Pi / 6)).
			Then(core.Translation(0, 0, -1)))
		edge.Material = metal
		addChild(w, s, w.AddObject(edge))
	}

	pair := geometry.NewGroup()
	pair.SetTransform(core.Translation(1.5, 1, -1))
	p := w.AddObject(pair)

	s1 := geometry.NewSphere()
	s1.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.Translation(0.6, 0, 0)))
	s1.Material.Color = core.NewColor(0.2, 0.6, 0.9)
	addChild(w, p, w.AddObject(s1))

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.Translation(0, 0, 0.6)))
	s2.Material.Color = core.NewColor(0.9, 0.8, 0.2)
	addChild(w, p, w.AddObject(s2))

	w.AddLight(lights.NewPointLight(core.Point(-2, 5, -10), core.White))

	return &Scene{
		Name:        "groups",
		Description: "A hexagon of nested groups and a pair of grouped spheres",
		World:       w,
		Cameras: []CameraConfig{
			NewCameraConfig("main", 640, 480, math.Pi/3,
				core.Point(0, 2.5, -5), core.Point(0, 1, 0), core.Vector(0, 1, 0)),
		},
	}
}

// addChild links shapes while a built-in scene is assembled; the indices are
// always valid there, so a failure is a programming error.
func addChild(w *World, group, child geometry.ObjectIndex) {
	if err := w.AddChild(group, child); err != nil {
		panic(err)
	}
}
