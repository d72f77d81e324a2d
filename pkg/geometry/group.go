package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Group has no surface of its own. It lists the indices of its children,
// which live in the same arena as the group.
type Group struct {
	Children []ObjectIndex
}

// NewGroup creates a shape wrapping an empty group
func NewGroup() *Shape {
	return NewShape(&Group{})
}

func (g *Group) Kind() Kind { return KindGroup }
func (g *Group) primitive() {}

// Add appends a child index. Parent bookkeeping is the arena's job.
func (g *Group) Add(child ObjectIndex) {
	g.Children = append(g.Children, child)
}

// Contains reports whether idx is a direct child of the group
func (g *Group) Contains(idx ObjectIndex) bool {
	for _, c := range g.Children {
		if c == idx {
			return true
		}
	}
	return false
}

// IntersectChildren intersects every child with a ray already in the group's
// object space and returns the hits sorted by t.
func (g *Group) IntersectChildren(ray core.Ray, arena Arena) Intersections {
	if len(g.Children) == 0 {
		return nil
	}
	arena = mustArena(arena)

	var xs Intersections
	for _, idx := range g.Children {
		xs = append(xs, arena.Object(idx).Intersect(ray, arena)...)
	}
	xs.Sort()
	return xs
}

// LocalIntersect panics: a group can only be intersected through IntersectChildren
func (g *Group) LocalIntersect(ray core.Ray) []float64 {
	panic("group intersection requires an arena; use Shape.Intersect")
}

// LocalNormalAt panics: groups never appear as the object of an intersection
func (g *Group) LocalNormalAt(point core.Tuple) core.Tuple {
	panic("normal requested for a group")
}
