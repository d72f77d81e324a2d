package material

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
)

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()

	if m.Color != core.White {
		t.Errorf("Expected white color, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected Phong parameters: %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 {
		t.Errorf("Expected opaque non-reflective material, got reflective=%f transparency=%f", m.Reflective, m.Transparency)
	}
	if m.RefractiveIndex != Air {
		t.Errorf("Expected refractive index %f, got %f", Air, m.RefractiveIndex)
	}
	if !m.CastsShadow || !m.ReceivesShadow {
		t.Error("Default material should cast and receive shadows")
	}
	if m.Pattern != nil {
		t.Error("Default material should have no pattern")
	}
}

func TestMaterial_IsCopiedByValue(t *testing.T) {
	a := DefaultMaterial()
	b := a
	b.Ambient = 1.0

	if a.Ambient != 0.1 {
		t.Errorf("Modifying a copy changed the original: ambient=%f", a.Ambient)
	}
}

func TestMaterial_Lighting(t *testing.T) {
	m := DefaultMaterial()
	position := core.Point(0, 0, 0)
	normalv := core.Vector(0, 0, -1)
	s2 := math.Sqrt(2) / 2

	tests := []struct {
		name     string
		eyev     core.Tuple
		light    lights.PointLight
		inShadow bool
		expected core.Color
	}{
		{
			name:     "eye between light and surface",
			eyev:     core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 0, -10), core.White),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eyev:     core.Vector(0, s2, -s2),
			light:    lights.NewPointLight(core.Point(0, 0, -10), core.White),
			expected: core.NewColor(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eyev:     core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 10, -10), core.White),
			expected: core.NewColor(0.736396, 0.736396, 0.736396),
		},
		{
			name:     "eye in path of reflection",
			eyev:     core.Vector(0, -s2, -s2),
			light:    lights.NewPointLight(core.Point(0, 10, -10), core.White),
			expected: core.NewColor(1.636396, 1.636396, 1.636396),
		},
		{
			name:     "light behind surface",
			eyev:     core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 0, 10), core.White),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow",
			eyev:     core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 0, -10), core.White),
			inShadow: true,
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			name:     "colored light",
			eyev:     core.Vector(0, 0, -1),
			light:    lights.NewPointLight(core.Point(0, 0, -10), core.NewColor(1, 0.5, 0)),
			expected: core.NewColor(1.9, 0.95, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Lighting(tt.light, position, position, tt.eyev, normalv, tt.inShadow)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestMaterial_LightingWithPattern(t *testing.T) {
	m := DefaultMaterial().WithPattern(NewStripe(NewSolidColor(core.White), NewSolidColor(core.Black)))
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eyev := core.Vector(0, 0, -1)
	normalv := core.Vector(0, 0, -1)
	light := lights.NewPointLight(core.Point(0, 0, -10), core.White)

	c1 := m.Lighting(light, core.Point(0.9, 0, 0), core.Point(0.9, 0, 0), eyev, normalv, false)
	c2 := m.Lighting(light, core.Point(1.1, 0, 0), core.Point(1.1, 0, 0), eyev, normalv, false)

	if !c1.Equals(core.White) {
		t.Errorf("Expected white at x=0.9, got %v", c1)
	}
	if !c2.Equals(core.Black) {
		t.Errorf("Expected black at x=1.1, got %v", c2)
	}
}

func TestMaterial_LightingSamplesObjectPoint(t *testing.T) {
	// the pattern must be sampled in object space, not at the world point
	m := DefaultMaterial().WithPattern(NewStripe(NewSolidColor(core.White), NewSolidColor(core.Black)))
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	light := lights.NewPointLight(core.Point(0, 0, -10), core.White)
	result := m.Lighting(light, core.Point(0.5, 0, 0), core.Point(1.5, 0, 0), core.Vector(0, 0, -1), core.Vector(0, 0, -1), false)

	if !result.Equals(core.White) {
		t.Errorf("Expected white from object point x=0.5, got %v", result)
	}
}
