package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func assertTs(t *testing.T, got []float64, expected []float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d intersections %v, got %d: %v", len(expected), expected, len(got), got)
	}
	for i := range expected {
		if !approxEqual(got[i], expected[i]) {
			t.Errorf("t[%d]: expected %f, got %f", i, expected[i], got[i])
		}
	}
}

func TestSphere_LocalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		ray      core.Ray
		expected []float64
	}{
		{"two points", core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)), []float64{4, 6}},
		{"tangent", core.NewRay(core.Point(0, 1, -5), core.Vector(0, 0, 1)), []float64{5, 5}},
		{"miss", core.NewRay(core.Point(0, 2, -5), core.Vector(0, 0, 1)), nil},
		{"origin inside", core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1)), []float64{-1, 1}},
		{"sphere behind ray", core.NewRay(core.Point(0, 0, 5), core.Vector(0, 0, 1)), []float64{-6, -4}},
	}

	s := &Sphere{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTs(t, s.LocalIntersect(tt.ray), tt.expected)
		})
	}
}

func TestSphere_LocalNormalAt(t *testing.T) {
	s3 := math.Sqrt(3) / 3
	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Tuple
	}{
		{"x axis", core.Point(1, 0, 0), core.Vector(1, 0, 0)},
		{"y axis", core.Point(0, 1, 0), core.Vector(0, 1, 0)},
		{"z axis", core.Point(0, 0, 1), core.Vector(0, 0, 1)},
		{"nonaxial", core.Point(s3, s3, s3), core.Vector(s3, s3, s3)},
	}

	s := &Sphere{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := s.LocalNormalAt(tt.point)
			if !n.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
			if !approxEqual(n.Length(), 1) {
				t.Errorf("Normal should be unit length, got %f", n.Length())
			}
		})
	}
}

func TestNewGlassSphere(t *testing.T) {
	s := NewGlassSphere()
	if !s.Transform().Equals(core.Identity4()) {
		t.Error("Glass sphere should have identity transform")
	}
	if s.Material.Transparency != 1.0 {
		t.Errorf("Expected transparency 1.0, got %f", s.Material.Transparency)
	}
	if s.Material.RefractiveIndex != 1.5 {
		t.Errorf("Expected refractive index 1.5, got %f", s.Material.RefractiveIndex)
	}
}

func TestSphere_HitCountIsZeroOrTwo(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	s := &Sphere{}

	for i := 0; i < 1000; i++ {
		origin := core.Point(random.Float64()*6-3, random.Float64()*6-3, random.Float64()*6-3)
		direction := core.Vector(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		if direction.Length() < 1e-3 {
			continue
		}
		xs := s.LocalIntersect(core.NewRay(origin, direction))
		if len(xs) != 0 && len(xs) != 2 {
			t.Fatalf("Ray %v %v produced %d intersections", origin, direction, len(xs))
		}
	}
}
