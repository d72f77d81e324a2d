package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func colorApprox(a, b core.Color, tolerance float64) bool {
	return approxEqual(a.R, b.R, tolerance) &&
		approxEqual(a.G, b.G, tolerance) &&
		approxEqual(a.B, b.B, tolerance)
}

// singleShapeWorld returns a world holding only s, and the index of s
func singleShapeWorld(s *geometry.Shape) (*scene.World, geometry.ObjectIndex) {
	w := scene.NewWorld()
	idx := w.AddObject(s)
	return w, idx
}

func TestPrepareComputations_Outside(t *testing.T) {
	w, idx := singleShapeWorld(geometry.NewSphere())
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	hit := geometry.NewIntersection(4, idx)

	comps := PrepareComputations(w, hit, ray, geometry.Intersections{hit})

	if comps.T != 4 || comps.Object != idx {
		t.Errorf("expected t=4 object=%d, got t=%v object=%d", idx, comps.T, comps.Object)
	}
	if !comps.Point.Equals(core.Point(0, 0, -1)) {
		t.Errorf("expected point (0,0,-1), got %v", comps.Point)
	}
	if !comps.Eyev.Equals(core.Vector(0, 0, -1)) {
		t.Errorf("expected eyev (0,0,-1), got %v", comps.Eyev)
	}
	if !comps.Normalv.Equals(core.Vector(0, 0, -1)) {
		t.Errorf("expected normalv (0,0,-1), got %v", comps.Normalv)
	}
	if comps.Inside {
		t.Error("expected hit to be outside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	w, idx := singleShapeWorld(geometry.NewSphere())
	ray := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
	hit := geometry.NewIntersection(1, idx)

	comps := PrepareComputations(w, hit, ray, geometry.Intersections{hit})

	if !comps.Point.Equals(core.Point(0, 0, 1)) {
		t.Errorf("expected point (0,0,1), got %v", comps.Point)
	}
	if !comps.Eyev.Equals(core.Vector(0, 0, -1)) {
		t.Errorf("expected eyev (0,0,-1), got %v", comps.Eyev)
	}
	if !comps.Inside {
		t.Error("expected hit to be inside")
	}
	// normal is flipped to face the eye
	if !comps.Normalv.Equals(core.Vector(0, 0, -1)) {
		t.Errorf("expected normalv (0,0,-1), got %v", comps.Normalv)
	}
}

func TestPrepareComputations_ReflectionVector(t *testing.T) {
	w, idx := singleShapeWorld(geometry.NewPlane())
	s := math.Sqrt2 / 2
	ray := core.NewRay(core.Point(0, 1, -1), core.Vector(0, -s, s))
	hit := geometry.NewIntersection(math.Sqrt2, idx)

	comps := PrepareComputations(w, hit, ray, geometry.Intersections{hit})

	if !comps.Reflectv.Equals(core.Vector(0, s, s)) {
		t.Errorf("expected reflectv (0,%v,%v), got %v", s, s, comps.Reflectv)
	}
}

func TestPrepareComputations_OverAndUnderPoint(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	t.Run("over point", func(t *testing.T) {
		sphere := geometry.NewSphere()
		sphere.SetTransform(core.Translation(0, 0, 1))
		w, idx := singleShapeWorld(sphere)
		hit := geometry.NewIntersection(5, idx)

		comps := PrepareComputations(w, hit, ray, geometry.Intersections{hit})

		if comps.OverPoint.Z >= -core.EPSILON/2 {
			t.Errorf("expected over point z < %v, got %v", -core.EPSILON/2, comps.OverPoint.Z)
		}
		if comps.Point.Z <= comps.OverPoint.Z {
			t.Errorf("expected point z %v > over point z %v", comps.Point.Z, comps.OverPoint.Z)
		}
	})

	t.Run("under point", func(t *testing.T) {
		sphere := geometry.NewGlassSphere()
		sphere.SetTransform(core.Translation(0, 0, 1))
		w, idx := singleShapeWorld(sphere)
		hit := geometry.NewIntersection(5, idx)

		comps := PrepareComputations(w, hit, ray, geometry.Intersections{hit})

		if comps.UnderPoint.Z <= core.EPSILON/2 {
			t.Errorf("expected under point z > %v, got %v", core.EPSILON/2, comps.UnderPoint.Z)
		}
		if comps.Point.Z >= comps.UnderPoint.Z {
			t.Errorf("expected point z %v < under point z %v", comps.Point.Z, comps.UnderPoint.Z)
		}
	})
}

// TestPrepareComputations_RefractiveIndices tests n1/n2 across three nested glass spheres
func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	w := scene.NewWorld()

	a := geometry.NewGlassSphere()
	a.SetTransform(core.Scaling(2, 2, 2))
	a.Material.RefractiveIndex = 1.5
	ai := w.AddObject(a)

	b := geometry.NewGlassSphere()
	b.SetTransform(core.Translation(0, 0, -0.25))
	b.Material.RefractiveIndex = 2.0
	bi := w.AddObject(b)

	c := geometry.NewGlassSphere()
	c.SetTransform(core.Translation(0, 0, 0.25))
	c.Material.RefractiveIndex = 2.5
	ci := w.AddObject(c)

	ray := core.NewRay(core.Point(0, 0, -4), core.Vector(0, 0, 1))
	xs := geometry.Intersections{
		geometry.NewIntersection(2, ai),
		geometry.NewIntersection(2.75, bi),
		geometry.NewIntersection(3.25, ci),
		geometry.NewIntersection(4.75, bi),
		geometry.NewIntersection(5.25, ci),
		geometry.NewIntersection(6, ai),
	}

	tests := []struct {
		index  int
		n1, n2 float64
	}{
		{0, 1.0, 1.5},
		{1, 1.5, 2.0},
		{2, 2.0, 2.5},
		{3, 2.5, 2.5},
		{4, 2.5, 1.5},
		{5, 1.5, 1.0},
	}

	for _, tt := range tests {
		comps := PrepareComputations(w, xs[tt.index], ray, xs)
		if comps.N1 != tt.n1 || comps.N2 != tt.n2 {
			t.Errorf("intersection %d: expected n1=%v n2=%v, got n1=%v n2=%v",
				tt.index, tt.n1, tt.n2, comps.N1, comps.N2)
		}
	}
}

func TestPrepareComputations_NoObjectPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for intersection without object")
		}
	}()

	w := scene.NewWorld()
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	hit := geometry.NewIntersection(4, geometry.NoObject)
	PrepareComputations(w, hit, ray, geometry.Intersections{hit})
}

func TestSchlick(t *testing.T) {
	s := math.Sqrt2 / 2

	tests := []struct {
		name     string
		ray      core.Ray
		ts       []float64
		hit      int
		expected float64
	}{
		{
			name:     "total internal reflection",
			ray:      core.NewRay(core.Point(0, 0, s), core.Vector(0, 1, 0)),
			ts:       []float64{-s, s},
			hit:      1,
			expected: 1.0,
		},
		{
			name:     "perpendicular viewing angle",
			ray:      core.NewRay(core.Point(0, 0, 0), core.Vector(0, 1, 0)),
			ts:       []float64{-1, 1},
			hit:      1,
			expected: 0.04,
		},
		{
			name:     "small angle with n2 > n1",
			ray:      core.NewRay(core.Point(0, 0.99, -2), core.Vector(0, 0, 1)),
			ts:       []float64{1.8589},
			hit:      0,
			expected: 0.48873,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, idx := singleShapeWorld(geometry.NewGlassSphere())
			var xs geometry.Intersections
			for _, v := range tt.ts {
				xs = append(xs, geometry.NewIntersection(v, idx))
			}

			comps := PrepareComputations(w, xs[tt.hit], tt.ray, xs)
			got := Schlick(comps)
			if !approxEqual(got, tt.expected, 1e-4) {
				t.Errorf("expected reflectance %v, got %v", tt.expected, got)
			}
		})
	}
}
