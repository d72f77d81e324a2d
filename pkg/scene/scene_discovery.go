package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned by LoadBuiltin for names not in the registry
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier
	Name        string // Scene name
	Description string // Optional description
	Type        string // "builtin" or "json5"
	FilePath    string // Path to scene file (json5 type only)
}

type builtin struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtin{
	"default":    {"Three spheres on a floor between two walls", NewDefaultScene},
	"reflection": {"Reflective spheres on a checkered floor", NewReflectionScene},
	"refraction": {"Glass spheres and an air bubble", NewRefractionScene},
	"cubes":      {"Grids of reflective cubes in a cube room", NewCubeScene},
	"cylinders":  {"Open, half-open, closed and infinite cylinders", NewCylinderScene},
	"cones":      {"Truncated and capped cones", NewConeScene},
	"groups":     {"Nested groups forming a hexagon", NewGroupScene},
	"patterns":   {"Every pattern type on a row of spheres", NewPatternScene},
}

// Builtins lists the built-in scenes sorted by ID
func Builtins() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for id, b := range builtins {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			Name:        titleCase(id),
			Description: b.description,
			Type:        "builtin",
		})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// LoadBuiltin builds the built-in scene with the given ID
func LoadBuiltin(id string) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("scene %q: %w", id, ErrUnknownScene)
	}
	return b.build(), nil
}

// ListSceneFiles scans dir for .json5 scene files and returns their metadata.
// A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json5"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metadata for %s: %w", filePath, err)
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseSceneMetadata extracts metadata from the leading comment block of a
// scene file:
//
//	// Scene: Glass Marbles
//	// Description: three marbles on a mirror
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       "file:" + nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "json5",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, err
	}
	defer file.Close()

	name, description, err := ReadSceneHeader(file)
	if name != "" {
		info.Name = name
	}
	info.Description = description
	return info, err
}

// ReadSceneHeader returns the "Scene:" and "Description:" values from the
// comment block at the top of a scene document
func ReadSceneHeader(r io.Reader) (name, description string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "//") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "//"))
		if v, ok := strings.CutPrefix(content, "Scene:"); ok {
			name = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(content, "Description:"); ok {
			description = strings.TrimSpace(v)
		}
	}
	return name, description, scanner.Err()
}

// titleCase converts a filename-style string to title case
// e.g., "glass-marbles" -> "Glass Marbles"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
