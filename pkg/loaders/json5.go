package loaders

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/lights"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// LoadScene reads a JSON5 scene file
func LoadScene(filename string) (*scene.Scene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ParseScene(file, name)
}

// ParseScene decodes a JSON5 scene document. name is used when the document
// has no "// Scene:" header comment.
func ParseScene(reader io.Reader, name string) (*scene.Scene, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	var doc interface{}
	if err := json5.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON5: %w", err)
	}
	root, err := asObject("scene", doc)
	if err != nil {
		return nil, err
	}
	if err := checkKeys("scene", root, "lights", "bodies", "cameras"); err != nil {
		return nil, err
	}

	title, description, err := scene.ReadSceneHeader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	if title == "" {
		title = name
	}
	s := &scene.Scene{
		Name:        title,
		Description: description,
		World:       scene.NewWorld(),
	}

	if v, ok := root["lights"]; ok {
		items, err := asArray("lights", v)
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			light, err := parseLight(index("lights", i), item)
			if err != nil {
				return nil, err
			}
			s.World.AddLight(light)
		}
	}

	if v, ok := root["bodies"]; ok {
		items, err := asArray("bodies", v)
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			if _, err := parseBody(index("bodies", i), item, s.World); err != nil {
				return nil, err
			}
		}
	}

	if v, ok := root["cameras"]; ok {
		items, err := asArray("cameras", v)
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			cam, err := parseCamera(index("cameras", i), item, i)
			if err != nil {
				return nil, err
			}
			s.Cameras = append(s.Cameras, cam)
		}
	}

	return s, nil
}

func parseLight(path string, v interface{}) (lights.PointLight, error) {
	m, err := asObject(path, v)
	if err != nil {
		return lights.PointLight{}, err
	}
	if err := checkKeys(path, m, "type", "position", "intensity"); err != nil {
		return lights.PointLight{}, err
	}

	kind, err := asString(field(path, "type"), m["type"])
	if err != nil {
		return lights.PointLight{}, err
	}
	if kind != "point_light" {
		return lights.PointLight{}, fmt.Errorf("%s: unsupported light type %q", field(path, "type"), kind)
	}

	position, err := asPoint(field(path, "position"), m["position"])
	if err != nil {
		return lights.PointLight{}, err
	}
	intensity := core.White
	if iv, ok := m["intensity"]; ok {
		if intensity, err = asColor(field(path, "intensity"), iv); err != nil {
			return lights.PointLight{}, err
		}
	}
	return lights.NewPointLight(position, intensity), nil
}

var bodyKeys = []string{
	"type", "material", "transforms", "minimum", "maximum", "closed_min", "closed_max", "children",
}

// parseBody adds the body and, for groups, all of its descendants to w
func parseBody(path string, v interface{}, w *scene.World) (geometry.ObjectIndex, error) {
	m, err := asObject(path, v)
	if err != nil {
		return geometry.NoObject, err
	}
	if err := checkKeys(path, m, bodyKeys...); err != nil {
		return geometry.NoObject, err
	}

	kind, err := asString(field(path, "type"), m["type"])
	if err != nil {
		return geometry.NoObject, err
	}

	shape, err := newShape(path, kind, m)
	if err != nil {
		return geometry.NoObject, err
	}

	if tv, ok := m["transforms"]; ok {
		transform, err := parseTransforms(field(path, "transforms"), tv, core.Identity4())
		if err != nil {
			return geometry.NoObject, err
		}
		if !transform.Invertible() {
			return geometry.NoObject, fmt.Errorf("%s: %w", field(path, "transforms"), core.ErrNotInvertible)
		}
		shape.SetTransform(transform)
	}

	if mv, ok := m["material"]; ok {
		if kind == "group" {
			return geometry.NoObject, fmt.Errorf("%s: groups have no material", field(path, "material"))
		}
		if shape.Material, err = parseMaterial(field(path, "material"), mv); err != nil {
			return geometry.NoObject, err
		}
	}

	idx := w.AddObject(shape)

	if cv, ok := m["children"]; ok {
		if kind != "group" {
			return geometry.NoObject, fmt.Errorf("%s: only groups have children", field(path, "children"))
		}
		children, err := asArray(field(path, "children"), cv)
		if err != nil {
			return geometry.NoObject, err
		}
		for i, child := range children {
			childPath := index(field(path, "children"), i)
			ci, err := parseBody(childPath, child, w)
			if err != nil {
				return geometry.NoObject, err
			}
			if err := w.AddChild(idx, ci); err != nil {
				return geometry.NoObject, fmt.Errorf("%s: %w", childPath, err)
			}
		}
	}

	return idx, nil
}

func newShape(path, kind string, m map[string]interface{}) (*geometry.Shape, error) {
	switch kind {
	case "sphere", "plane", "cube", "group":
		for _, key := range []string{"minimum", "maximum", "closed_min", "closed_max"} {
			if _, ok := m[key]; ok {
				return nil, fmt.Errorf("%s: %s does not take %q", path, kind, key)
			}
		}
	}

	switch kind {
	case "sphere":
		return geometry.NewSphere(), nil
	case "plane":
		return geometry.NewPlane(), nil
	case "cube":
		return geometry.NewCube(), nil
	case "group":
		return geometry.NewGroup(), nil
	case "cylinder", "cone":
		minimum, maximum, closedMin, closedMax, err := parseBounds(path, m)
		if err != nil {
			return nil, err
		}
		if kind == "cylinder" {
			return geometry.NewCylinder(minimum, maximum, closedMin, closedMax), nil
		}
		return geometry.NewCone(minimum, maximum, closedMin, closedMax), nil
	default:
		return nil, fmt.Errorf("%s: unknown body type %q", field(path, "type"), kind)
	}
}

// parseBounds reads the y extent and cap flags of a cylinder or cone. Missing
// bounds are infinite and missing caps are open.
func parseBounds(path string, m map[string]interface{}) (minimum, maximum float64, closedMin, closedMax bool, err error) {
	minimum, maximum = math.Inf(-1), math.Inf(1)
	if v, ok := m["minimum"]; ok {
		if minimum, err = asFloat(field(path, "minimum"), v); err != nil {
			return
		}
	}
	if v, ok := m["maximum"]; ok {
		if maximum, err = asFloat(field(path, "maximum"), v); err != nil {
			return
		}
	}
	if minimum > maximum {
		err = fmt.Errorf("%s: minimum %v is above maximum %v", path, minimum, maximum)
		return
	}
	if v, ok := m["closed_min"]; ok {
		if closedMin, err = asBool(field(path, "closed_min"), v); err != nil {
			return
		}
	}
	if v, ok := m["closed_max"]; ok {
		if closedMax, err = asBool(field(path, "closed_max"), v); err != nil {
			return
		}
	}
	return
}

var cameraKeys = []string{"name", "resolution", "field_of_view", "from", "to", "up", "transforms"}

func parseCamera(path string, v interface{}, i int) (scene.CameraConfig, error) {
	m, err := asObject(path, v)
	if err != nil {
		return scene.CameraConfig{}, err
	}
	if err := checkKeys(path, m, cameraKeys...); err != nil {
		return scene.CameraConfig{}, err
	}

	cfg := scene.DefaultCameraConfig()
	cfg.Name = fmt.Sprintf("camera%d", i)
	if nv, ok := m["name"]; ok {
		if cfg.Name, err = asString(field(path, "name"), nv); err != nil {
			return scene.CameraConfig{}, err
		}
	}

	if rv, ok := m["resolution"]; ok {
		if cfg.Width, cfg.Height, err = parseResolution(field(path, "resolution"), rv); err != nil {
			return scene.CameraConfig{}, err
		}
	}

	if fv, ok := m["field_of_view"]; ok {
		fov, err := asFloat(field(path, "field_of_view"), fv)
		if err != nil {
			return scene.CameraConfig{}, err
		}
		if !(fov > 0 && fov < math.Pi) {
			return scene.CameraConfig{}, fmt.Errorf("%s: %v is not in (0, pi)", field(path, "field_of_view"), fov)
		}
		cfg.FieldOfView = fov
	}

	from, to, up := defaultFrom, defaultTo, defaultUp
	if pv, ok := m["from"]; ok {
		if from, err = asPoint(field(path, "from"), pv); err != nil {
			return scene.CameraConfig{}, err
		}
	}
	if pv, ok := m["to"]; ok {
		if to, err = asPoint(field(path, "to"), pv); err != nil {
			return scene.CameraConfig{}, err
		}
	}
	if pv, ok := m["up"]; ok {
		if up, err = asVector(field(path, "up"), pv); err != nil {
			return scene.CameraConfig{}, err
		}
	}
	if from.Subtract(to).Length() < core.EPSILON {
		return scene.CameraConfig{}, fmt.Errorf("%s: from and to are the same point", path)
	}

	view := core.ViewTransform(from, to, up)
	if tv, ok := m["transforms"]; ok {
		if view, err = parseTransforms(field(path, "transforms"), tv, view); err != nil {
			return scene.CameraConfig{}, err
		}
	}
	if !view.Invertible() {
		return scene.CameraConfig{}, fmt.Errorf("%s: view transform: %w", path, core.ErrNotInvertible)
	}
	cfg.Transform = view

	return cfg, nil
}

var (
	defaultFrom = core.Point(0, 0, -10)
	defaultTo   = core.Point(0, 1, 0)
	defaultUp   = core.Vector(0, 1, 0)
)

// parseResolution accepts a preset name or {width, height}
func parseResolution(path string, v interface{}) (width, height int, err error) {
	if s, ok := v.(string); ok {
		res, err := renderer.ParseResolution(s)
		if err != nil {
			return 0, 0, fmt.Errorf("%s: %w", path, err)
		}
		return res.Width, res.Height, nil
	}

	m, err := asObject(path, v)
	if err != nil {
		return 0, 0, err
	}
	if err := checkKeys(path, m, "width", "height"); err != nil {
		return 0, 0, err
	}
	if width, err = asInt(field(path, "width"), m["width"]); err != nil {
		return 0, 0, err
	}
	if height, err = asInt(field(path, "height"), m["height"]); err != nil {
		return 0, 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%s: %dx%d must be positive", path, width, height)
	}
	return width, height, nil
}

// validateFilePath checks that filename looks like a scene file
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.ContainsRune(filename, 0) {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json5", ".json":
		return nil
	default:
		return fmt.Errorf("invalid file type: only .json5 and .json files are allowed")
	}
}
