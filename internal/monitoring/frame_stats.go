// Package monitoring tracks frame timing for the debug overlay.
package monitoring

import (
	"fmt"
	"sync/atomic"
	"time"
)

// smoothing weight for the exponential moving averages.
const emaAlpha = 0.1

// FrameStats tracks smoothed update and render durations. Writers store
// nanoseconds atomically so the overlay can read from the draw path while
// timings land from either phase of the loop.
type FrameStats struct {
	updateNanos atomic.Uint64 // EMA, nanoseconds
	renderNanos atomic.Uint64 // EMA, nanoseconds
	frameCount  atomic.Uint64
	startTime   time.Time
}

// NewFrameStats creates a frame statistics tracker.
func NewFrameStats() *FrameStats {
	return &FrameStats{startTime: time.Now()}
}

// PhaseTimer measures one phase of a frame.
type PhaseTimer struct {
	target    *atomic.Uint64
	startTime time.Time
}

// StartUpdate begins timing the update phase.
func (fs *FrameStats) StartUpdate() *PhaseTimer {
	fs.frameCount.Add(1)
	return &PhaseTimer{target: &fs.updateNanos, startTime: time.Now()}
}

// StartRender begins timing the render phase.
func (fs *FrameStats) StartRender() *PhaseTimer {
	return &PhaseTimer{target: &fs.renderNanos, startTime: time.Now()}
}

// End folds the elapsed time into the phase's moving average.
func (pt *PhaseTimer) End() {
	elapsed := uint64(time.Since(pt.startTime).Nanoseconds())
	prev := pt.target.Load()
	if prev == 0 {
		pt.target.Store(elapsed)
		return
	}
	next := uint64(float64(prev)*(1-emaAlpha) + float64(elapsed)*emaAlpha)
	pt.target.Store(next)
}

// Summary formats the smoothed timings for the debug overlay.
func (fs *FrameStats) Summary() string {
	update := time.Duration(fs.updateNanos.Load())
	render := time.Duration(fs.renderNanos.Load())
	elapsed := time.Since(fs.startTime).Seconds()
	fps := 0.0
	if elapsed > 0 {
		fps = float64(fs.frameCount.Load()) / elapsed
	}
	return fmt.Sprintf("fps %.1f  update %.2fms  render %.2fms",
		fps, float64(update.Microseconds())/1000, float64(render.Microseconds())/1000)
}
