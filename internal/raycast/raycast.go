// Package raycast walks rays across the world grid using DDA (digital
// differential analysis) and reports where they strike walls.
package raycast

import (
	"math"

	"gloom/internal/world"
)

// Side indicates which kind of grid line a ray crossed last before hitting
// a wall. It drives texture selection and side shading.
type Side int

const (
	// SideVertical means the ray crossed a vertical grid line (stepped in X).
	SideVertical Side = iota
	// SideHorizontal means the ray crossed a horizontal grid line (stepped in Y).
	SideHorizontal
)

// Hit is the result of casting one ray. It is recomputed every frame for
// every column and never stored.
type Hit struct {
	Distance float64    // perpendicular distance to the camera plane
	Cell     world.Cell // wall id that was struck
	Side     Side
	WallX    float64 // fractional hit position along the wall edge, in [0, 1)
}

// Caster casts rays against a fixed grid with a fixed field of view.
type Caster struct {
	grid *world.Grid
	fov  float64
}

// NewCaster creates a caster for the given grid and horizontal field of view
// in radians.
func NewCaster(grid *world.Grid, fov float64) *Caster {
	return &Caster{grid: grid, fov: fov}
}

// ColumnAngle returns the ray angle for a screen column, spacing rays evenly
// across the field of view.
func (c *Caster) ColumnAngle(viewAngle float64, column, numColumns int) float64 {
	if numColumns <= 1 {
		return viewAngle
	}
	return viewAngle - c.fov/2 + c.fov*float64(column)/float64(numColumns-1)
}

// CastColumn casts the ray belonging to one screen column.
func (c *Caster) CastColumn(px, py, viewAngle float64, column, numColumns int) Hit {
	return c.Cast(px, py, c.ColumnAngle(viewAngle, column, numColumns), viewAngle)
}

// Cast walks a single ray from (px, py) through the grid and returns the
// first wall it strikes. viewAngle is the camera facing direction, needed to
// convert raw ray length into perpendicular distance (the fisheye
// correction; without it straight walls render curved).
func (c *Caster) Cast(px, py, rayAngle, viewAngle float64) Hit {
	rayDirX := math.Cos(rayAngle)
	rayDirY := math.Sin(rayAngle)

	mapX := int(math.Floor(px))
	mapY := int(math.Floor(py))

	// Delta distances: ray length needed to cross one full cell along each
	// axis. Axis-aligned rays get an effectively infinite step so the DDA
	// below never divides by zero and simply never steps the dead axis.
	deltaDistX := 1e30
	if rayDirX != 0 {
		deltaDistX = math.Abs(1 / rayDirX)
	}
	deltaDistY := 1e30
	if rayDirY != 0 {
		deltaDistY = math.Abs(1 / rayDirY)
	}

	// Step directions and ray lengths to the first grid line on each axis.
	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (px - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - px) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (py - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - py) * deltaDistY
	}

	// Out-of-bounds cells are solid, so a hit is guaranteed within
	// width+height steps no matter where the ray starts.
	maxSteps := c.grid.Width() + c.grid.Height() + 2
	side := SideVertical

	for steps := 0; steps < maxSteps; steps++ {
		// Advance to whichever grid line crossing is nearer.
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = SideVertical
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = SideHorizontal
		}

		cell := c.grid.CellAt(mapX, mapY)
		if cell == world.CellEmpty {
			continue
		}
		return c.makeHit(px, py, rayDirX, rayDirY, rayAngle, viewAngle,
			mapX, mapY, stepX, stepY, side, cell)
	}

	// Unreachable while the boundary stays solid; report the sentinel at the
	// last crossing rather than inventing an error mid-frame.
	return c.makeHit(px, py, rayDirX, rayDirY, rayAngle, viewAngle,
		mapX, mapY, stepX, stepY, side, c.grid.Boundary())
}

// makeHit converts the final DDA state into a Hit: raw ray length to the
// crossed grid line, fisheye-corrected distance, and the fractional position
// of the hit along the wall edge.
func (c *Caster) makeHit(px, py, rayDirX, rayDirY, rayAngle, viewAngle float64,
	mapX, mapY, stepX, stepY int, side Side, cell world.Cell) Hit {

	var rayLength float64
	if side == SideVertical {
		rayLength = (float64(mapX) - px + (1-float64(stepX))/2) / rayDirX
	} else {
		rayLength = (float64(mapY) - py + (1-float64(stepY))/2) / rayDirY
	}

	var wallX float64
	if side == SideVertical {
		wallX = py + rayLength*rayDirY
	} else {
		wallX = px + rayLength*rayDirX
	}
	wallX -= math.Floor(wallX)

	// Mirror the coordinate on two of the four wall faces so textures always
	// read left-to-right when facing the wall.
	if side == SideVertical && rayDirX > 0 {
		wallX = 1 - wallX
	}
	if side == SideHorizontal && rayDirY < 0 {
		wallX = 1 - wallX
	}
	wallX -= math.Floor(wallX)

	return Hit{
		Distance: rayLength * math.Cos(rayAngle-viewAngle),
		Cell:     cell,
		Side:     side,
		WallX:    wallX,
	}
}
