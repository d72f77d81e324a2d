package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrNotGroup         = errors.New("object is not a group")
	ErrAlreadyParented  = errors.New("object already belongs to a group")
	ErrCycle            = errors.New("object would become its own ancestor")
)

// World owns every shape in a flat, append-only arena plus the scene's lights.
// Shapes are referenced by the index returned from AddObject; indices stay
// valid for the lifetime of the World.
type World struct {
	shapes []*geometry.Shape
	Lights []lights.PointLight
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// AddObject moves a shape into the arena and returns its index
func (w *World) AddObject(s *geometry.Shape) geometry.ObjectIndex {
	idx := geometry.ObjectIndex(len(w.shapes))
	s.Bind(idx)
	w.shapes = append(w.shapes, s)
	return idx
}

// AddLight adds a point light to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// Len returns the number of shapes in the arena, including grouped children
func (w *World) Len() int {
	return len(w.shapes)
}

// Lookup returns the shape at idx, or ErrIndexOutOfBounds
func (w *World) Lookup(idx geometry.ObjectIndex) (*geometry.Shape, error) {
	if idx < 0 || int(idx) >= len(w.shapes) {
		return nil, fmt.Errorf("object %d: %w", idx, ErrIndexOutOfBounds)
	}
	return w.shapes[idx], nil
}

// Object returns the shape at idx. It panics if idx is out of range.
func (w *World) Object(idx geometry.ObjectIndex) *geometry.Shape {
	s, err := w.Lookup(idx)
	if err != nil {
		panic(err)
	}
	return s
}

// AddChild makes child a member of group. Both must already be in the world,
// group must wrap a Group primitive, child must not already have a parent,
// and the link must not make group a descendant of child.
func (w *World) AddChild(group, child geometry.ObjectIndex) error {
	gs, err := w.Lookup(group)
	if err != nil {
		return fmt.Errorf("add child: group: %w", err)
	}
	cs, err := w.Lookup(child)
	if err != nil {
		return fmt.Errorf("add child: child: %w", err)
	}

	g, ok := gs.Primitive.(*geometry.Group)
	if !ok {
		return fmt.Errorf("add child %d to %d (%v): %w", child, group, gs.Kind(), ErrNotGroup)
	}
	if cs.HasParent() {
		return fmt.Errorf("add child %d to %d: parent is %d: %w", child, group, cs.Parent(), ErrAlreadyParented)
	}
	for p := group; p != geometry.NoObject; p = w.shapes[p].Parent() {
		if p == child {
			return fmt.Errorf("add child %d to %d: %w", child, group, ErrCycle)
		}
	}

	g.Add(child)
	cs.SetParent(group)
	return nil
}

// Roots returns the indices of every shape that is not inside a group
func (w *World) Roots() []geometry.ObjectIndex {
	roots := make([]geometry.ObjectIndex, 0, len(w.shapes))
	for i, s := range w.shapes {
		if !s.HasParent() {
			roots = append(roots, geometry.ObjectIndex(i))
		}
	}
	return roots
}

// Intersect intersects the ray with every root shape and returns all hits
// sorted by t. Grouped shapes are reached only through their group, so each
// is reported once per surface crossing.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, s := range w.shapes {
		if s.HasParent() {
			continue
		}
		xs = append(xs, s.Intersect(ray, w)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether a shadow-casting object lies between point and light
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	direction, distance := light.DirectionFrom(point)
	xs := w.Intersect(core.NewRay(point, direction))

	var casters geometry.Intersections
	for _, x := range xs {
		if w.shapes[x.Object].Material.CastsShadow {
			casters = append(casters, x)
		}
	}

	hit, ok := casters.Hit()
	return ok && hit.T < distance
}

// DefaultWorld returns the two-sphere world used throughout the tests: a
// light at (-10, 10, -10), a unit sphere, and a concentric half-size sphere.
func DefaultWorld() *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	s1 := geometry.NewSphere()
	s1.Material.Color = core.NewColor(0.8, 1.0, 0.6)
	s1.Material.Diffuse = 0.7
	s1.Material.Specular = 0.2
	w.AddObject(s1)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	w.AddObject(s2)

	return w
}
