package canvas

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for output paths with an unsupported extension
var ErrUnknownFormat = errors.New("unknown image format")

// Format names an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the output format from a file extension. The stdout
// path "-" is written as PPM.
func FormatFromPath(path string) (Format, error) {
	if path == "-" {
		return FormatPPM, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Encode writes the canvas to w in the given format
func (c *Canvas) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPPM:
		return c.WritePPM(w)
	case FormatPNG:
		return png.Encode(w, c.ToImage())
	case FormatBMP:
		return bmp.Encode(w, c.ToImage())
	case FormatTIFF:
		return tiff.Encode(w, c.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// WriteFile encodes the canvas to path, choosing the format by extension.
// A path of "-" writes PPM to stdout.
func (c *Canvas) WriteFile(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if path == "-" {
		return c.Encode(os.Stdout, format)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if err := c.Encode(bw, format); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return file.Close()
}
