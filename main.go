package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/progress"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// scenesDir holds the bundled JSON5 scene files
const scenesDir = "scenes"

type options struct {
	input      string
	sceneName  string
	list       bool
	output     string
	resolution string
	hsize      int
	vsize      int
	draft      bool
	depth      int
	hdiv       int
	vdiv       int
	workers    int
	camera     string
	showTiles  bool
	quiet      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	defaults := renderer.DefaultRenderConfig()
	var opts options

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "", "JSON5 scene file to render ('-' reads stdin)")
	fs.StringVar(&opts.sceneName, "scene", "default", "Built-in scene, or file:<name> for a scene in scenes/")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")
	fs.StringVar(&opts.output, "output", "image.ppm", "Output file; extension picks ppm, png, bmp or tiff ('-' writes PPM to stdout)")
	fs.StringVar(&opts.resolution, "resolution", "", "Resolution preset: "+strings.Join(renderer.ResolutionNames(), ", "))
	fs.IntVar(&opts.hsize, "hsize", 0, "Image width in pixels (overrides the preset)")
	fs.IntVar(&opts.vsize, "vsize", 0, "Image height in pixels (overrides the preset)")
	fs.BoolVar(&opts.draft, "draft", false, "Render at a quarter of the size in each dimension")
	fs.IntVar(&opts.depth, "depth", defaults.Depth, "Maximum reflection/refraction depth")
	fs.IntVar(&opts.hdiv, "hdiv", defaults.XDivisions, "Horizontal tile divisions (1x1 renders single-threaded)")
	fs.IntVar(&opts.vdiv, "vdiv", defaults.YDivisions, "Vertical tile divisions")
	fs.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = use CPU count)")
	fs.StringVar(&opts.camera, "camera", "", "Named camera from the scene (default: first)")
	fs.BoolVar(&opts.showTiles, "show-tiles", false, "Draw the tile grid over the output image")
	fs.BoolVar(&opts.quiet, "quiet", false, "Disable logging and the progress display")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Recursive Raytracer")
		fmt.Fprintln(stderr, "Usage: raytracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Use -list to see the available scenes.")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, opts.validate()
}

func (o options) validate() error {
	switch {
	case o.hsize < 0 || o.vsize < 0:
		return fmt.Errorf("-hsize and -vsize must not be negative")
	case o.depth < 0:
		return fmt.Errorf("-depth must not be negative")
	case o.hdiv < 1 || o.vdiv < 1:
		return fmt.Errorf("-hdiv and -vdiv: %w", renderer.ErrInvalidDivisions)
	case o.workers < 0:
		return fmt.Errorf("-workers must not be negative")
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	if opts.list {
		return listScenes(stdout)
	}

	// Fail on a bad output path before spending time rendering
	format, err := canvas.FormatFromPath(opts.output)
	if err != nil {
		return err
	}

	// Keep stdout clean when the image itself goes there
	var logger core.Logger = renderer.NewDefaultLogger(stdout)
	if opts.output == "-" {
		logger = renderer.NewDefaultLogger(stderr)
	}
	if opts.quiet {
		logger = renderer.NopLogger{}
	}

	s, err := createScene(opts, stdin)
	if err != nil {
		return err
	}
	logger.Printf("Scene: %s (%d primitives, %d lights)\n", s.Name, s.GetPrimitiveCount(), len(s.World.Lights))

	camCfg, err := resolveCamera(s, opts)
	if err != nil {
		return err
	}
	camera, err := renderer.NewCameraFromConfig(camCfg)
	if err != nil {
		return err
	}

	config := renderer.DefaultRenderConfig()
	config.Depth = opts.depth
	config.XDivisions = opts.hdiv
	config.YDivisions = opts.vdiv
	config.NumWorkers = opts.workers
	config.ShowTiles = opts.showTiles

	rt := renderer.NewRaytracer(s.World, camera, config, logger)

	var display *progress.Display
	if !opts.quiet {
		display = progress.Start(camCfg.Width*camCfg.Height, stderr)
		rt.SetProgress(display.Add)
	}

	img, _, err := rt.Render()
	if display != nil {
		if derr := display.Finish(); derr != nil {
			logger.Printf("Warning: %v\n", derr)
		}
	}
	if err != nil {
		return err
	}

	if opts.output == "-" {
		return img.Encode(stdout, format)
	}
	if err := img.WriteFile(opts.output); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", opts.output)
	return nil
}

// createScene loads the scene named by -input or -scene
func createScene(opts options, stdin io.Reader) (*scene.Scene, error) {
	switch {
	case opts.input == "-":
		return loaders.ParseScene(stdin, "stdin")
	case opts.input != "":
		return loaders.LoadScene(opts.input)
	case strings.HasPrefix(opts.sceneName, "file:"):
		name := strings.TrimPrefix(opts.sceneName, "file:")
		return loaders.LoadScene(filepath.Join(scenesDir, name+".json5"))
	case strings.HasSuffix(opts.sceneName, ".json5"), strings.HasSuffix(opts.sceneName, ".json"):
		return loaders.LoadScene(opts.sceneName)
	default:
		return scene.LoadBuiltin(opts.sceneName)
	}
}

// resolveCamera picks the scene camera and applies size overrides: the preset
// replaces the camera's size, -hsize/-vsize replace the preset, and -draft
// divides the result by four.
func resolveCamera(s *scene.Scene, opts options) (scene.CameraConfig, error) {
	cfg, err := s.Camera(opts.camera)
	if err != nil {
		return cfg, err
	}

	if opts.resolution != "" {
		res, err := renderer.ParseResolution(opts.resolution)
		if err != nil {
			return cfg, err
		}
		cfg.Width, cfg.Height = res.Width, res.Height
	}
	if opts.hsize > 0 {
		cfg.Width = opts.hsize
	}
	if opts.vsize > 0 {
		cfg.Height = opts.vsize
	}
	if opts.draft {
		cfg.Width = max(1, cfg.Width/4)
		cfg.Height = max(1, cfg.Height/4)
	}
	return cfg, nil
}

func listScenes(w io.Writer) error {
	fmt.Fprintln(w, "Built-in scenes:")
	for _, info := range scene.Builtins() {
		fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
	}

	files, err := scene.ListSceneFiles(scenesDir)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		fmt.Fprintf(w, "\nScene files (%s/):\n", scenesDir)
		for _, info := range files {
			fmt.Fprintf(w, "  %-20s %s: %s\n", info.ID, info.Name, info.Description)
		}
	}
	return nil
}
