package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

// Refractive indices of common media
const (
	Vacuum  = 1.0
	Air     = 1.000029
	Water   = 1.333
	Glass   = 1.52
	Diamond = 2.417
)

// Material describes how a surface responds to light. Materials are values;
// assigning one to a shape copies it. A Pattern, when present, is shared and
// must not be modified once rendering starts.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 (matte) to 1 (mirror)
	Transparency    float64 // 0 (opaque) to 1 (fully transparent)
	RefractiveIndex float64
	CastsShadow     bool
	ReceivesShadow  bool
	Pattern         Pattern // overrides Color when set
}

// DefaultMaterial returns the default white Phong material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		RefractiveIndex: Air,
		CastsShadow:     true,
		ReceivesShadow:  true,
	}
}

// NewMaterial creates an opaque material with the given Phong parameters
func NewMaterial(color core.Color, ambient, diffuse, specular, shininess float64) Material {
	m := DefaultMaterial()
	m.Color = color
	m.Ambient = ambient
	m.Diffuse = diffuse
	m.Specular = specular
	m.Shininess = shininess
	return m
}

// WithPattern returns a copy of m colored by pattern
func (m Material) WithPattern(pattern Pattern) Material {
	m.Pattern = pattern
	return m
}

// ColorAt returns the surface color at a point in object space
func (m Material) ColorAt(objectPoint core.Tuple) core.Color {
	if m.Pattern != nil {
		return m.Pattern.ColorAt(objectPoint)
	}
	return m.Color
}

// Lighting computes the Phong shading of a point lit by a single light.
// objectPoint is the shading point in the shape's object space and is only
// used to sample the pattern; point, eyev and normalv are in world space.
func (m Material) Lighting(light lights.PointLight, objectPoint, point, eyev, normalv core.Tuple, inShadow bool) core.Color {
	effectiveColor := m.ColorAt(objectPoint).MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv, _ := light.DirectionFrom(point)
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)
	return ambient.Add(diffuse).Add(specular)
}
