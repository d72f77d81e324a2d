package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Shape places a Primitive in the world with a transform and a material.
// Shapes are built and configured freely, then handed to a World, which
// assigns their index. After that they are referenced by index only.
type Shape struct {
	Primitive Primitive
	Material  material.Material

	transform core.Matrix4 // object to world
	inverse   core.Matrix4 // world to object
	index     ObjectIndex
	parent    ObjectIndex
}

// NewShape wraps a primitive with an identity transform and the default material
func NewShape(p Primitive) *Shape {
	return &Shape{
		Primitive: p,
		Material:  material.DefaultMaterial(),
		transform: core.Identity4(),
		inverse:   core.Identity4(),
		index:     NoObject,
		parent:    NoObject,
	}
}

// Kind returns the kind of the wrapped primitive
func (s *Shape) Kind() Kind {
	return s.Primitive.Kind()
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix4 {
	return s.transform
}

// InverseTransform returns the cached world-to-object transform
func (s *Shape) InverseTransform() core.Matrix4 {
	return s.inverse
}

// SetTransform sets the object-to-world transform and recomputes its inverse.
// Panics if m is not invertible.
func (s *Shape) SetTransform(m core.Matrix4) {
	inv, err := m.TryInverse()
	if err != nil {
		panic(fmt.Sprintf("shape transform: %v", err))
	}
	s.transform = m
	s.inverse = inv
}

// Index returns the shape's handle in its World, or NoObject
func (s *Shape) Index() ObjectIndex {
	return s.index
}

// Bind records the handle a World assigned to this shape
func (s *Shape) Bind(idx ObjectIndex) {
	s.index = idx
}

// Parent returns the index of the group containing this shape, or NoObject
func (s *Shape) Parent() ObjectIndex {
	return s.parent
}

// SetParent records the group containing this shape
func (s *Shape) SetParent(idx ObjectIndex) {
	s.parent = idx
}

// HasParent reports whether the shape belongs to a group
func (s *Shape) HasParent() bool {
	return s.parent != NoObject
}

// Intersect transforms ray into object space and intersects the primitive.
// Leaf hits are stamped with this shape's index. Group hits are returned as
// stamped by the children. arena may be nil unless the shape is a group.
func (s *Shape) Intersect(ray core.Ray, arena Arena) Intersections {
	localRay := ray.Transform(s.inverse)

	if g, ok := s.Primitive.(*Group); ok {
		return g.IntersectChildren(localRay, arena)
	}

	ts := s.Primitive.LocalIntersect(localRay)
	if len(ts) == 0 {
		return nil
	}
	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: s.index}
	}
	return xs
}

// WorldToObject converts a world-space point into this shape's object space,
// passing through every enclosing group.
func (s *Shape) WorldToObject(point core.Tuple, arena Arena) core.Tuple {
	if s.HasParent() {
		point = mustArena(arena).Object(s.parent).WorldToObject(point, arena)
	}
	return s.inverse.MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal into world space,
// passing through every enclosing group.
func (s *Shape) NormalToWorld(normal core.Tuple, arena Arena) core.Tuple {
	normal = s.inverse.Transpose().MultiplyTuple(normal)
	normal.W = 0
	normal = normal.Normalize()
	if s.HasParent() {
		normal = mustArena(arena).Object(s.parent).NormalToWorld(normal, arena)
	}
	return normal
}

// NormalAt returns the unit world-space surface normal at a world-space point
func (s *Shape) NormalAt(worldPoint core.Tuple, arena Arena) core.Tuple {
	localPoint := s.WorldToObject(worldPoint, arena)
	localNormal := s.Primitive.LocalNormalAt(localPoint)
	return s.NormalToWorld(localNormal, arena)
}

func mustArena(arena Arena) Arena {
	if arena == nil {
		panic("shape belongs to a group but no arena was supplied")
	}
	return arena
}
