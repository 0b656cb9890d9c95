package world

// Cell identifies the content of one grid cell. Zero is empty and walkable,
// any other value is a wall id that selects a texture.
type Cell int

// CellEmpty is the walkable cell value.
const CellEmpty Cell = 0

// boundaryCell is returned for every out-of-bounds query so rays and
// collision probes never escape the grid.
const boundaryCell Cell = 1

// Grid is the static 2D world map. It is read-only after construction; all
// renderer and collision code shares one instance without synchronization.
type Grid struct {
	width  int
	height int
	cells  [][]Cell

	// Spawn is the player start position in world units (cell centers).
	SpawnX float64
	SpawnY float64
}

// NewGrid builds a grid from a rectangular cell array. Rows shorter than the
// widest row are padded with the boundary sentinel.
func NewGrid(cells [][]Cell) *Grid {
	height := len(cells)
	width := 0
	for _, row := range cells {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]Cell, height)
	for y, row := range cells {
		padded[y] = make([]Cell, width)
		copy(padded[y], row)
		for x := len(row); x < width; x++ {
			padded[y][x] = boundaryCell
		}
	}

	g := &Grid{width: width, height: height, cells: padded}
	g.SpawnX, g.SpawnY = g.firstWalkableCenter()
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Boundary returns the sentinel cell used for out-of-bounds queries.
func (g *Grid) Boundary() Cell { return boundaryCell }

// CellAt returns the cell at the given coordinates. Out-of-bounds queries
// return the solid boundary sentinel rather than an error.
func (g *Grid) CellAt(col, row int) Cell {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return boundaryCell
	}
	return g.cells[row][col]
}

// IsWalkable reports whether the cell at the given coordinates is empty.
func (g *Grid) IsWalkable(col, row int) bool {
	return g.CellAt(col, row) == CellEmpty
}

// firstWalkableCenter scans for a walkable cell to use as the fallback spawn
// when the map file does not mark one.
func (g *Grid) firstWalkableCenter() (float64, float64) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == CellEmpty {
				return float64(x) + 0.5, float64(y) + 0.5
			}
		}
	}
	return 0.5, 0.5
}
