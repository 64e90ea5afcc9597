package renderer

import (
	"runtime"
	"sync"
)

// RowTask asks a worker to render a single scanline
type RowTask struct {
	Y int
}

// RowResult contains the result from rendering a scanline
type RowResult struct {
	Y     int
	Stats RenderStats
}

// WorkerPool manages parallel scanline rendering. Each worker writes only
// to the rows it is handed, so the shared buffer needs no locking.
type WorkerPool struct {
	raytracer   *Raytracer
	buffer      []uint32
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(rt *Raytracer, buffer []uint32, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > rt.height {
		numWorkers = rt.height
	}

	return &WorkerPool{
		raytracer:   rt,
		buffer:      buffer,
		taskQueue:   make(chan RowTask, rt.height),
		resultQueue: make(chan RowResult, rt.height),
		numWorkers:  numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every scanline and blocks until the frame is complete
func (wp *WorkerPool) Run() RenderStats {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.work()
	}

	for y := 0; y < wp.raytracer.height; y++ {
		wp.taskQueue <- RowTask{Y: y}
	}
	close(wp.taskQueue)

	wp.wg.Wait()
	close(wp.resultQueue)

	stats := RenderStats{Workers: wp.numWorkers}
	for result := range wp.resultQueue {
		stats.add(result.Stats)
	}
	return stats
}

// work is the main worker loop
func (wp *WorkerPool) work() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.resultQueue <- RowResult{
			Y:     task.Y,
			Stats: wp.raytracer.renderRow(task.Y, wp.buffer),
		}
	}
}
