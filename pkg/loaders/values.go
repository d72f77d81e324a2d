package loaders

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"golang.org/x/image/colornames"
)

// Decoded JSON5 values are walked by hand so that every error can name the
// exact place in the document it came from, e.g. "bodies[3].transforms[1]".

func field(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func asObject(path string, v interface{}) (map[string]interface{}, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: expected object, got %s", path, describe(v))
	}
	return m, nil
}

func asArray(path string, v interface{}) ([]interface{}, error) {
	a, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: expected array, got %s", path, describe(v))
	}
	return a, nil
}

func asFloat(path string, v interface{}) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%s: expected number, got %s", path, describe(v))
	}
	return f, nil
}

func asInt(path string, v interface{}) (int, error) {
	f, err := asFloat(path, v)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%s: expected integer, got %v", path, f)
	}
	return int(f), nil
}

func asBool(path string, v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected boolean, got %s", path, describe(v))
	}
	return b, nil
}

func asString(path string, v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %s", path, describe(v))
	}
	return s, nil
}

func asFloats(path string, v interface{}, n int) ([]float64, error) {
	a, err := asArray(path, v)
	if err != nil {
		return nil, err
	}
	if len(a) != n {
		return nil, fmt.Errorf("%s: expected %d numbers, got %d", path, n, len(a))
	}
	out := make([]float64, n)
	for i, e := range a {
		if out[i], err = asFloat(index(path, i), e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func asPoint(path string, v interface{}) (core.Tuple, error) {
	f, err := asFloats(path, v, 3)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.Point(f[0], f[1], f[2]), nil
}

func asVector(path string, v interface{}) (core.Tuple, error) {
	f, err := asFloats(path, v, 3)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.Vector(f[0], f[1], f[2]), nil
}

// asColor accepts [r, g, b], a CSS/SVG color name or "#rrggbb"
func asColor(path string, v interface{}) (core.Color, error) {
	if s, ok := v.(string); ok {
		return parseColorString(path, s)
	}
	f, err := asFloats(path, v, 3)
	if err != nil {
		return core.Color{}, fmt.Errorf("%s: expected [r, g, b] or color name, got %s", path, describe(v))
	}
	return core.NewColor(f[0], f[1], f[2]), nil
}

func parseColorString(path, s string) (core.Color, error) {
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return core.Color{}, fmt.Errorf("%s: hex color %q must be #rrggbb", path, s)
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return core.Color{}, fmt.Errorf("%s: hex color %q: %v", path, s, err)
		}
		return core.NewColor(
			float64((n>>16)&0xff)/255,
			float64((n>>8)&0xff)/255,
			float64(n&0xff)/255,
		), nil
	}

	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return core.Color{}, fmt.Errorf("%s: unknown color name %q", path, s)
	}
	return core.NewColor(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), nil
}

// checkKeys rejects any key of m not listed in allowed
func checkKeys(path string, m map[string]interface{}, allowed ...string) error {
	var unknown []string
	for key := range m {
		found := false
		for _, a := range allowed {
			if key == a {
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%s: unknown field(s) %s", path, strings.Join(unknown, ", "))
	}
	return nil
}

func describe(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
