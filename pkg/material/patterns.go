package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Pattern provides spatially-varying colors for materials
type Pattern interface {
	// ColorAt returns the color at a point given in the owning shape's object space
	ColorAt(objectPoint core.Tuple) core.Color
	// SetTransform places the pattern within object space
	SetTransform(m core.Matrix4)
	Transform() core.Matrix4
}

// patternTransform holds a pattern's object-to-pattern transform and its cached inverse
type patternTransform struct {
	transform core.Matrix4
	inverse   core.Matrix4
}

func identityTransform() patternTransform {
	return patternTransform{transform: core.Identity4(), inverse: core.Identity4()}
}

// SetTransform sets the pattern transform. Panics if m is not invertible.
func (pt *patternTransform) SetTransform(m core.Matrix4) {
	pt.transform = m
	pt.inverse = m.Inverse()
}

// Transform returns the pattern transform
func (pt *patternTransform) Transform() core.Matrix4 {
	return pt.transform
}

func (pt *patternTransform) toPattern(objectPoint core.Tuple) core.Tuple {
	return pt.inverse.MultiplyTuple(objectPoint)
}

// SolidColor provides a uniform color
type SolidColor struct {
	patternTransform
	Color core.Color
}

// NewSolidColor creates a new solid color pattern
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{patternTransform: identityTransform(), Color: color}
}

// ColorAt returns the solid color regardless of position
func (s *SolidColor) ColorAt(objectPoint core.Tuple) core.Color {
	return s.Color
}

// Stripe alternates between two sub-patterns along x
type Stripe struct {
	patternTransform
	A, B Pattern
}

// NewStripe creates a stripe pattern
func NewStripe(a, b Pattern) *Stripe {
	return &Stripe{patternTransform: identityTransform(), A: a, B: b}
}

func (s *Stripe) ColorAt(objectPoint core.Tuple) core.Color {
	point := s.toPattern(objectPoint)
	if isEven(math.Floor(point.X)) {
		return s.A.ColorAt(point)
	}
	return s.B.ColorAt(point)
}

// Gradient linearly interpolates from A at x=0 to B at x=1, repeating every unit
type Gradient struct {
	patternTransform
	A, B Pattern
}

// NewGradient creates a gradient pattern
func NewGradient(a, b Pattern) *Gradient {
	return &Gradient{patternTransform: identityTransform(), A: a, B: b}
}

func (g *Gradient) ColorAt(objectPoint core.Tuple) core.Color {
	point := g.toPattern(objectPoint)
	fraction := point.X - math.Floor(point.X)
	return blend(g.A.ColorAt(point), g.B.ColorAt(point), fraction)
}

// Ring alternates between two sub-patterns in concentric rings around the y axis
type Ring struct {
	patternTransform
	A, B Pattern
}

// NewRing creates a ring pattern
func NewRing(a, b Pattern) *Ring {
	return &Ring{patternTransform: identityTransform(), A: a, B: b}
}

func (r *Ring) ColorAt(objectPoint core.Tuple) core.Color {
	point := r.toPattern(objectPoint)
	if isEven(math.Floor(math.Sqrt(point.X*point.X + point.Z*point.Z))) {
		return r.A.ColorAt(point)
	}
	return r.B.ColorAt(point)
}

// Checkers alternates between two sub-patterns in unit cubes
type Checkers struct {
	patternTransform
	A, B Pattern
}

// NewCheckers creates a 3D checker pattern
func NewCheckers(a, b Pattern) *Checkers {
	return &Checkers{patternTransform: identityTransform(), A: a, B: b}
}

func (c *Checkers) ColorAt(objectPoint core.Tuple) core.Color {
	point := c.toPattern(objectPoint)
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if isEven(sum) {
		return c.A.ColorAt(point)
	}
	return c.B.ColorAt(point)
}

// RadialGradient interpolates from A to B with distance from the y axis,
// repeating every unit. YFactor blends the y coordinate into the distance
// (0 gives cylindrical bands, 1 gives spherical shells).
type RadialGradient struct {
	patternTransform
	A, B    Pattern
	YFactor float64
}

// NewRadialGradient creates a radial gradient pattern
func NewRadialGradient(a, b Pattern, yFactor float64) *RadialGradient {
	return &RadialGradient{patternTransform: identityTransform(), A: a, B: b, YFactor: yFactor}
}

func (r *RadialGradient) ColorAt(objectPoint core.Tuple) core.Color {
	point := r.toPattern(objectPoint)
	radius := math.Sqrt(point.X*point.X + point.Z*point.Z + r.YFactor*point.Y*point.Y)
	fraction := radius - math.Floor(radius)
	return blend(r.A.ColorAt(point), r.B.ColorAt(point), fraction)
}

// Blended averages two sub-patterns
type Blended struct {
	patternTransform
	A, B Pattern
}

// NewBlended creates a pattern that averages a and b
func NewBlended(a, b Pattern) *Blended {
	return &Blended{patternTransform: identityTransform(), A: a, B: b}
}

func (b *Blended) ColorAt(objectPoint core.Tuple) core.Color {
	point := b.toPattern(objectPoint)
	return blend(b.A.ColorAt(point), b.B.ColorAt(point), 0.5)
}

// Perturbed jitters the sample point with octave Perlin noise before
// delegating to the wrapped pattern.
type Perturbed struct {
	patternTransform
	Pattern     Pattern
	Scale       float64
	Octaves     int
	Persistence float64
}

// NewPerturbed wraps pattern with a noise displacement of up to scale units per axis
func NewPerturbed(pattern Pattern, scale float64, octaves int, persistence float64) *Perturbed {
	return &Perturbed{
		patternTransform: identityTransform(),
		Pattern:          pattern,
		Scale:            scale,
		Octaves:          octaves,
		Persistence:      persistence,
	}
}

func (p *Perturbed) ColorAt(objectPoint core.Tuple) core.Color {
	point := p.toPattern(objectPoint)
	// offset z so each axis draws from an uncorrelated slice of the noise field
	dx := OctaveNoise(point.X, point.Y, point.Z, p.Octaves, p.Persistence)
	dy := OctaveNoise(point.X, point.Y, point.Z+1, p.Octaves, p.Persistence)
	dz := OctaveNoise(point.X, point.Y, point.Z+2, p.Octaves, p.Persistence)
	jittered := core.Point(
		point.X+(dx*2-1)*p.Scale,
		point.Y+(dy*2-1)*p.Scale,
		point.Z+(dz*2-1)*p.Scale,
	)
	return p.Pattern.ColorAt(jittered)
}

func isEven(f float64) bool {
	return math.Mod(f, 2) == 0
}

func blend(a, b core.Color, t float64) core.Color {
	return a.Add(b.Subtract(a).Multiply(t))
}
