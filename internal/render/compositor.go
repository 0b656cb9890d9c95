// Package render builds complete frames from the player state and the world
// grid: background first, then one perspective-projected wall strip per
// screen column. There is no z-buffer; within a column exactly one wall
// strip is ever drawn, so a single pass composites correctly.
package render

import (
	"gloom/internal/raycast"
	"gloom/internal/threading"
)

// Compositor owns the frame buffer and coordinates the per-column pipeline.
// All of its inputs (grid, atlas) are read-only, so columns render in
// parallel; each column writes a disjoint region of the frame.
type Compositor struct {
	caster      *raycast.Caster
	walls       *WallRenderer
	background  *Background
	pool        *threading.WorkerPool
	frame       *Frame
	columnWidth int
	numColumns  int
}

// NewCompositor wires the render pipeline for a fixed viewport size.
// columnWidth is how many screen pixels one ray covers.
func NewCompositor(caster *raycast.Caster, walls *WallRenderer, background *Background,
	pool *threading.WorkerPool, screenWidth, screenHeight, columnWidth int) *Compositor {

	if columnWidth < 1 {
		columnWidth = 1
	}
	return &Compositor{
		caster:      caster,
		walls:       walls,
		background:  background,
		pool:        pool,
		frame:       NewFrame(screenWidth, screenHeight),
		columnWidth: columnWidth,
		numColumns:  (screenWidth + columnWidth - 1) / columnWidth,
	}
}

// Render draws one full frame for the given camera state and returns the
// frame buffer. The buffer is reused across frames; callers must treat it as
// read-only and must not retain it past the next Render call.
func (c *Compositor) Render(px, py, angle float64) *Frame {
	c.pool.ParallelFor(0, c.numColumns, func(column int) {
		x := column * c.columnWidth
		width := c.columnWidth
		if x+width > c.frame.W {
			width = c.frame.W - x
		}

		c.background.DrawColumns(c.frame, angle, x, x+width)

		hit := c.caster.CastColumn(px, py, angle, column, c.numColumns)
		c.walls.DrawColumn(c.frame, x, width, hit)
	})
	return c.frame
}

// Frame returns the compositor's frame buffer without rendering, for
// presentation code that needs the dimensions up front.
func (c *Compositor) Frame() *Frame { return c.frame }
