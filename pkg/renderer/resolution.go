package renderer

import (
	"fmt"
	"sort"
	"strings"
)

// Resolution is an image size in pixels
type Resolution struct {
	Width  int
	Height int
}

// Common display resolutions
var (
	VGA  = Resolution{Width: 640, Height: 480}
	SVGA = Resolution{Width: 800, Height: 600}
	XGA  = Resolution{Width: 1024, Height: 768}
	SXGA = Resolution{Width: 1280, Height: 1024}
	FHD  = Resolution{Width: 1920, Height: 1080}
	QHD  = Resolution{Width: 2560, Height: 1440}
	UHD  = Resolution{Width: 3840, Height: 2160}
)

var resolutionPresets = map[string]Resolution{
	"vga":  VGA,
	"svga": SVGA,
	"xga":  XGA,
	"sxga": SXGA,
	"fhd":  FHD,
	"qhd":  QHD,
	"uhd":  UHD,
	"4k":   UHD,
}

// ParseResolution looks up a preset by name, case-insensitively
func ParseResolution(name string) (Resolution, error) {
	res, ok := resolutionPresets[strings.ToLower(name)]
	if !ok {
		return Resolution{}, fmt.Errorf("resolution %q (want one of %s): %w",
			name, strings.Join(ResolutionNames(), ", "), ErrInvalidResolution)
	}
	return res, nil
}

// ResolutionNames returns the preset names in sorted order
func ResolutionNames() []string {
	names := make([]string, 0, len(resolutionPresets))
	for name := range resolutionPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AspectRatio returns width / height
func (r Resolution) AspectRatio() float64 {
	return float64(r.Width) / float64(r.Height)
}

// Validate reports ErrInvalidResolution unless both dimensions are positive
func (r Resolution) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", r.Width, r.Height, ErrInvalidResolution)
	}
	return nil
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
