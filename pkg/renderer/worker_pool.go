package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Pixels int
	Worker int
}

// sharedCanvas is the output raster workers write their finished tiles into
type sharedCanvas struct {
	mu     sync.Mutex
	canvas *canvas.Canvas
}

func (s *sharedCanvas) blit(tile *canvas.Canvas, x0, y0 int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvas.Blit(tile, x0, y0)
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	renderer    *TileRenderer
	output      *sharedCanvas
	progress    *progressReporter
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Queues are buffered for maxTiles so submitting never blocks.
func NewWorkerPool(tr *TileRenderer, output *canvas.Canvas, progress ProgressFunc, maxTiles, numWorkers int) *WorkerPool {
	numWorkers = resolveWorkers(numWorkers)

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}

	shared := &sharedCanvas{canvas: output}
	reporter := newProgressReporter(progress)

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    tr,
			output:      shared,
			progress:    reporter,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// resolveWorkers maps a non-positive worker count to the CPU count
func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Render into a private tile canvas, then copy it out once
		tile := w.renderer.RenderTile(task.Tile, w.progress)
		w.output.blit(tile, task.Tile.Bounds.Min.X, task.Tile.Bounds.Min.Y)

		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Pixels: task.Tile.Bounds.Dx() * task.Tile.Bounds.Dy(),
			Worker: w.ID,
		}
	}
}
