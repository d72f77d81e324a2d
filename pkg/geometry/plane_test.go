package geometry

import (
	"math/rand"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestPlane_LocalNormalAt(t *testing.T) {
	p := &Plane{}
	for _, point := range []core.Tuple{core.Point(0, 0, 0), core.Point(10, 0, -10), core.Point(-5, 0, 150)} {
		if n := p.LocalNormalAt(point); !n.Equals(core.Vector(0, 1, 0)) {
			t.Errorf("Normal at %v: expected (0,1,0), got %v", point, n)
		}
	}
}

func TestPlane_LocalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		ray      core.Ray
		expected []float64
	}{
		{"parallel", core.NewRay(core.Point(0, 10, 0), core.Vector(0, 0, 1)), nil},
		{"coplanar", core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1)), nil},
		{"from above", core.NewRay(core.Point(0, 1, 0), core.Vector(0, -1, 0)), []float64{1}},
		{"from below", core.NewRay(core.Point(0, -1, 0), core.Vector(0, 1, 0)), []float64{1}},
	}

	p := &Plane{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTs(t, p.LocalIntersect(tt.ray), tt.expected)
		})
	}
}

func TestPlane_ParallelRaysNeverHit(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	p := &Plane{}

	for i := 0; i < 500; i++ {
		origin := core.Point(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		dy := (random.Float64()*2 - 1) * 0.9 * core.EPSILON
		direction := core.Vector(random.Float64()*2-1, dy, random.Float64()*2-1)
		if xs := p.LocalIntersect(core.NewRay(origin, direction)); len(xs) != 0 {
			t.Fatalf("Parallel ray %v %v hit the plane: %v", origin, direction, xs)
		}
	}
}
