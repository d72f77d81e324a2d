package loaders

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// parseTransforms composes a list of single-key transform objects onto
// initial, in the order listed:
//
//	[{translate: [0, 1, 0]}, {rotate_y: 0.5}, {scale: [2, 2, 2]}]
func parseTransforms(path string, v interface{}, initial core.Matrix4) (core.Matrix4, error) {
	items, err := asArray(path, v)
	if err != nil {
		return core.Matrix4{}, err
	}

	combined := initial
	for i, item := range items {
		t, err := parseTransform(index(path, i), item)
		if err != nil {
			return core.Matrix4{}, err
		}
		combined = combined.Then(t)
	}
	return combined, nil
}

func parseTransform(path string, v interface{}) (core.Matrix4, error) {
	m, err := asObject(path, v)
	if err != nil {
		return core.Matrix4{}, err
	}
	if len(m) != 1 {
		return core.Matrix4{}, fmt.Errorf("%s: expected exactly one transform, got %d keys", path, len(m))
	}

	for key, arg := range m {
		argPath := field(path, key)
		switch key {
		case "translate", "scale":
			f, err := asFloats(argPath, arg, 3)
			if err != nil {
				return core.Matrix4{}, err
			}
			if key == "translate" {
				return core.Translation(f[0], f[1], f[2]), nil
			}
			return core.Scaling(f[0], f[1], f[2]), nil
		case "rotate_x", "rotate_y", "rotate_z":
			theta, err := asFloat(argPath, arg)
			if err != nil {
				return core.Matrix4{}, err
			}
			switch key {
			case "rotate_x":
				return core.RotationX(theta), nil
			case "rotate_y":
				return core.RotationY(theta), nil
			default:
				return core.RotationZ(theta), nil
			}
		case "shear":
			f, err := asFloats(argPath, arg, 6)
			if err != nil {
				return core.Matrix4{}, err
			}
			return core.Shearing(f[0], f[1], f[2], f[3], f[4], f[5]), nil
		default:
			return core.Matrix4{}, fmt.Errorf("%s: unknown transform %q", path, key)
		}
	}
	panic("unreachable")
}
