// Package game2048 implements the rules of the 2048 puzzle: a fixed 4x4 grid,
// sliding and merging tiles, random tile spawning and terminal-state
// detection. It has no terminal or network dependencies so every surface
// (local TUI, SSH, browser) drives the same logic.
package game2048

// Size is the board dimension.
const Size = 4

// Grid is a row-major Size x Size board. Zero marks an empty cell, any other
// value is a tile holding a power of two. Grid is a value type: assigning it
// copies the whole board.
type Grid [Size][Size]int

// Cell addresses a single board position.
type Cell struct {
	Row int
	Col int
}

// NewGrid returns an empty grid.
func NewGrid() Grid {
	return Grid{}
}

// Equal reports whether both grids hold the same value in every cell.
func (g Grid) Equal(other Grid) bool {
	return g == other
}

// Flatten returns the cells in row-major order.
func (g Grid) Flatten() []int {
	cells := make([]int, 0, Size*Size)
	for r := range Size {
		cells = append(cells, g[r][:]...)
	}
	return cells
}

// EmptyCells returns the coordinates of all empty cells, row by row.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// TileCount returns the number of non-empty cells.
func (g Grid) TileCount() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// Direction is a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction name back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
