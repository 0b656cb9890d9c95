// Package threading provides the fixed worker pool the renderer uses to
// spread per-column work across CPUs without per-frame goroutine churn.
package threading

import (
	"runtime"
	"sync"
)

// WorkerPool manages a fixed set of worker goroutines fed from one queue.
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
}

// NewWorkerPool creates a pool with the given worker count; zero or negative
// selects one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit queues a job for execution.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until all queued jobs have finished.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts the pool down. Jobs already queued may be dropped, so callers
// Wait first during an orderly shutdown.
func (wp *WorkerPool) Stop() {
	close(wp.quit)
}

// NumWorkers returns the pool size.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// ParallelFor runs fn for every index in [start, end), chunked across the
// pool, and blocks until the whole range is done. Indices never overlap, so
// fn may write to disjoint regions of shared buffers without locking.
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	if start >= end {
		return
	}

	chunkSize := (end - start + wp.numWorkers - 1) / wp.numWorkers
	if chunkSize < 1 {
		chunkSize = 1
	}

	var wg sync.WaitGroup
	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := min(i+chunkSize, end)
		wg.Add(1)
		wp.Submit(func() {
			defer wg.Done()
			for j := chunkStart; j < chunkEnd; j++ {
				fn(j)
			}
		})
	}
	wg.Wait()
}
