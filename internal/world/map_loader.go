package world

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Map files are plain text: one row of cells per line, '#' lines are
// comments. Recognized cell symbols:
//
//	'.' or '0'  empty floor
//	'1'..'9'    wall ids 1-9
//	'A'..'Z'    wall ids 10-35, except 'P'
//	'P'         player spawn, on an empty cell

// LoadGrid reads a map file and builds the world grid.
func LoadGrid(mapPath string) (*Grid, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	var cells [][]Cell
	spawnX, spawnY := -1.0, -1.0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row := make([]Cell, 0, len(line))
		for _, symbol := range line {
			cell, spawn, err := parseSymbol(symbol)
			if err != nil {
				return nil, fmt.Errorf("map %s row %d: %w", mapPath, len(cells), err)
			}
			if spawn {
				spawnX = float64(len(row)) + 0.5
				spawnY = float64(len(cells)) + 0.5
			}
			row = append(row, cell)
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("map file %s contains no map data", mapPath)
	}

	grid := NewGrid(cells)
	if spawnX >= 0 {
		grid.SpawnX, grid.SpawnY = spawnX, spawnY
	}
	return grid, nil
}

// parseSymbol maps one map character to a cell value. The second return is
// true when the symbol marks the player spawn.
func parseSymbol(symbol rune) (Cell, bool, error) {
	switch {
	case symbol == '.' || symbol == '0':
		return CellEmpty, false, nil
	case symbol == 'P':
		return CellEmpty, true, nil
	case symbol >= '1' && symbol <= '9':
		return Cell(symbol - '0'), false, nil
	case symbol >= 'A' && symbol <= 'O' || symbol >= 'Q' && symbol <= 'Z':
		return Cell(symbol-'A') + 10, false, nil
	default:
		return CellEmpty, false, fmt.Errorf("unknown map symbol %q", symbol)
	}
}
