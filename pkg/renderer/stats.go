package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	RenderID    string        // Unique id of the render, also prefixed to its log lines
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	TotalPixels int           // Total number of pixels rendered
	Tiles       int           // Number of tiles the image was split into
	Workers     int           // Number of parallel workers (1 for the single-threaded path)
	Depth       int           // Reflection/refraction recursion budget
	Duration    time.Duration // Wall-clock render time
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}
