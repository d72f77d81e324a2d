package geometry

import "sort"

// ObjectIndex is a stable handle to a Shape stored in a World
type ObjectIndex int

// NoObject marks a shape that has not been added to a World, or has no parent
const NoObject ObjectIndex = -1

// Intersection records a ray hit at distance T on the shape identified by Object
type Intersection struct {
	T      float64
	Object ObjectIndex
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object ObjectIndex) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of hits along a single ray
type Intersections []Intersection

// Sort orders the intersections by ascending t
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest strictly positive t.
// It does not assume xs is sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if x.T <= 0 {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
