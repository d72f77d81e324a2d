package loaders

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

var materialKeys = []string{
	"color", "ambient", "diffuse", "specular", "shininess", "reflective", "transparency",
	"refractive_index", "casts_shadow", "receives_shadow", "pattern",
}

// parseMaterial overrides fields of the default material
func parseMaterial(path string, v interface{}) (material.Material, error) {
	mat := material.DefaultMaterial()
	m, err := asObject(path, v)
	if err != nil {
		return mat, err
	}
	if err := checkKeys(path, m, materialKeys...); err != nil {
		return mat, err
	}

	if cv, ok := m["color"]; ok {
		if mat.Color, err = asColor(field(path, "color"), cv); err != nil {
			return mat, err
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"ambient", &mat.Ambient},
		{"diffuse", &mat.Diffuse},
		{"specular", &mat.Specular},
		{"shininess", &mat.Shininess},
		{"reflective", &mat.Reflective},
		{"transparency", &mat.Transparency},
		{"refractive_index", &mat.RefractiveIndex},
	}
	for _, f := range floats {
		fv, ok := m[f.key]
		if !ok {
			continue
		}
		if *f.dst, err = asFloat(field(path, f.key), fv); err != nil {
			return mat, err
		}
	}
	if mat.RefractiveIndex <= 0 {
		return mat, fmt.Errorf("%s: refractive index must be positive", field(path, "refractive_index"))
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"casts_shadow", &mat.CastsShadow},
		{"receives_shadow", &mat.ReceivesShadow},
	}
	for _, b := range bools {
		bv, ok := m[b.key]
		if !ok {
			continue
		}
		if *b.dst, err = asBool(field(path, b.key), bv); err != nil {
			return mat, err
		}
	}

	if pv, ok := m["pattern"]; ok {
		if mat.Pattern, err = parsePattern(field(path, "pattern"), pv); err != nil {
			return mat, err
		}
	}

	return mat, nil
}

var patternKeys = []string{"type", "a", "b", "color", "transforms", "y_factor", "scale", "octaves", "persistence"}

// parsePattern reads either a color, taken as a solid pattern, or a pattern object
func parsePattern(path string, v interface{}) (material.Pattern, error) {
	if _, ok := v.(map[string]interface{}); !ok {
		c, err := asColor(path, v)
		if err != nil {
			return nil, err
		}
		return material.NewSolidColor(c), nil
	}

	m, _ := asObject(path, v)
	if err := checkKeys(path, m, patternKeys...); err != nil {
		return nil, err
	}
	kind, err := asString(field(path, "type"), m["type"])
	if err != nil {
		return nil, err
	}

	var pattern material.Pattern
	switch kind {
	case "solid":
		c, err := asColor(field(path, "color"), m["color"])
		if err != nil {
			return nil, err
		}
		pattern = material.NewSolidColor(c)
	case "stripes", "gradient", "rings", "checkers", "radial_gradient", "blended":
		a, err := parsePattern(field(path, "a"), m["a"])
		if err != nil {
			return nil, err
		}
		b, err := parsePattern(field(path, "b"), m["b"])
		if err != nil {
			return nil, err
		}
		pattern, err = newPairPattern(path, kind, a, b, m)
		if err != nil {
			return nil, err
		}
	case "perturbed":
		inner, err := parsePattern(field(path, "a"), m["a"])
		if err != nil {
			return nil, err
		}
		pattern, err = newPerturbed(path, inner, m)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s: unknown pattern type %q", field(path, "type"), kind)
	}

	if tv, ok := m["transforms"]; ok {
		transform, err := parseTransforms(field(path, "transforms"), tv, core.Identity4())
		if err != nil {
			return nil, err
		}
		if !transform.Invertible() {
			return nil, fmt.Errorf("%s: %w", field(path, "transforms"), core.ErrNotInvertible)
		}
		pattern.SetTransform(transform)
	}

	return pattern, nil
}

func newPairPattern(path, kind string, a, b material.Pattern, m map[string]interface{}) (material.Pattern, error) {
	switch kind {
	case "stripes":
		return material.NewStripe(a, b), nil
	case "gradient":
		return material.NewGradient(a, b), nil
	case "rings":
		return material.NewRing(a, b), nil
	case "checkers":
		return material.NewCheckers(a, b), nil
	case "blended":
		return material.NewBlended(a, b), nil
	}

	yFactor := 0.0
	if yv, ok := m["y_factor"]; ok {
		var err error
		if yFactor, err = asFloat(field(path, "y_factor"), yv); err != nil {
			return nil, err
		}
	}
	return material.NewRadialGradient(a, b, yFactor), nil
}

// Defaults for perturbed patterns
const (
	defaultPerturbScale       = 0.2
	defaultPerturbOctaves     = 3
	defaultPerturbPersistence = 0.8
)

func newPerturbed(path string, inner material.Pattern, m map[string]interface{}) (material.Pattern, error) {
	scale, octaves, persistence := defaultPerturbScale, defaultPerturbOctaves, defaultPerturbPersistence

	var err error
	if v, ok := m["scale"]; ok {
		if scale, err = asFloat(field(path, "scale"), v); err != nil {
			return nil, err
		}
	}
	if v, ok := m["octaves"]; ok {
		if octaves, err = asInt(field(path, "octaves"), v); err != nil {
			return nil, err
		}
		if octaves < 1 {
			return nil, fmt.Errorf("%s: need at least one octave", field(path, "octaves"))
		}
	}
	if v, ok := m["persistence"]; ok {
		if persistence, err = asFloat(field(path, "persistence"), v); err != nil {
			return nil, err
		}
	}
	return material.NewPerturbed(inner, scale, octaves, persistence), nil
}
