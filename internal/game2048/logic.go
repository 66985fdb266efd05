package game2048

// MoveResult is the outcome of sliding a grid in one direction.
type MoveResult struct {
	Grid       Grid
	ScoreDelta int // Sum of all tiles created by merges
}

// Rotate turns the grid clockwise by 90 degrees, times times.
// Cell (r, c) lands on (c, Size-1-r) at each step. Negative and large counts
// are reduced mod 4.
func Rotate(g Grid, times int) Grid {
	times = ((times % 4) + 4) % 4
	for range times {
		var rotated Grid
		for r := range Size {
			for c := range Size {
				rotated[c][Size-1-r] = g[r][c]
			}
		}
		g = rotated
	}
	return g
}

// rotationsFor returns how many clockwise turns bring dir onto "left".
// Three clockwise turns put the top of each column at the left end of a row,
// one turn puts the bottom there.
func rotationsFor(dir Direction) int {
	switch dir {
	case Up:
		return 3
	case Right:
		return 2
	case Down:
		return 1
	default:
		return 0
	}
}

// compressRow slides a row to the left and merges equal neighbours.
// A tile produced by a merge is never merged again in the same pass, so
// [2,2,4,0] becomes [4,4,0,0] and not [8,0,0,0].
func compressRow(row [Size]int) (result [Size]int, score int) {
	filtered := make([]int, 0, Size)
	for _, v := range row {
		if v != 0 {
			filtered = append(filtered, v)
		}
	}

	w := 0
	for i := 0; i < len(filtered); {
		if i+1 < len(filtered) && filtered[i] == filtered[i+1] {
			merged := filtered[i] * 2
			result[w] = merged
			score += merged
			i += 2
		} else {
			result[w] = filtered[i]
			i++
		}
		w++
	}

	return result, score
}

// Compress slides every row of g to the left, merging tiles.
// Returns the new grid and the score gained from merges.
func Compress(g Grid) (Grid, int) {
	var out Grid
	total := 0
	for r := range Size {
		row, score := compressRow(g[r])
		out[r] = row
		total += score
	}
	return out, total
}

// Move slides the grid in dir by rotating it so that dir points left,
// compressing, and rotating back. Whether anything moved is left to the
// caller: compare the result with the input grid.
func Move(g Grid, dir Direction) MoveResult {
	times := rotationsFor(dir)
	compressed, score := Compress(Rotate(g, times))
	return MoveResult{
		Grid:       Rotate(compressed, (4-times)%4),
		ScoreDelta: score,
	}
}

// CanMove reports whether any move is still possible: an empty cell exists
// or two horizontally or vertically adjacent cells hold the same tile.
func CanMove(g Grid) bool {
	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if v == 0 {
				return true
			}
			if c+1 < Size && g[r][c+1] == v {
				return true
			}
			if r+1 < Size && g[r+1][c] == v {
				return true
			}
		}
	}
	return false
}
