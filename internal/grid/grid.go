// Package grid holds the diagonal-Sudoku board state and its fixed
// constraint topology: 81 cells, 29 units (rows, columns, boxes, and the
// two main diagonals), and the peer set of every cell.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFormat reports malformed puzzle input: wrong length or an
	// invalid character.
	ErrFormat = errors.New("malformed grid")
)

// Grid maps every cell to its candidate set. It is a value type: Assign and
// the propagation rules produce fresh grids, so a backtracking branch owns
// its copy outright and a failed branch is simply discarded.
type Grid struct {
	cells [CellCount]Mask
}

// Parse builds a Grid from an 81-character string scanned row-major.
// '.' denotes an unknown cell and maps to the full candidate set; '1'-'9'
// denotes a clue and maps to the singleton set. Any other length or
// character fails with ErrFormat before solving starts.
func Parse(s string) (Grid, error) {
	var g Grid
	if len(s) != CellCount {
		return g, fmt.Errorf("%w: input must be exactly %d characters, got %d", ErrFormat, CellCount, len(s))
	}
	for pos := 0; pos < CellCount; pos++ {
		switch ch := s[pos]; {
		case ch == '.':
			g.cells[pos] = Full
		case ch >= '1' && ch <= '9':
			g.cells[pos] = MaskOf(int(ch - '0'))
		default:
			return Grid{}, fmt.Errorf("%w: invalid character %q at position %d", ErrFormat, ch, pos)
		}
	}
	return g, nil
}

// Empty returns a grid with every cell holding the full candidate set,
// the parse of 81 '.' characters.
func Empty() Grid {
	var g Grid
	for pos := 0; pos < CellCount; pos++ {
		g.cells[pos] = Full
	}
	return g
}

// Get returns the candidate set at pos.
func (g Grid) Get(pos int) Mask {
	return g.cells[pos]
}

// Assign returns a copy of g with the cell at pos replaced by the singleton
// {digit}. All other cells are untouched and no propagation happens.
func (g Grid) Assign(pos, digit int) Grid {
	g.cells[pos] = MaskOf(digit)
	return g
}

// Remove returns a copy of g with digit removed from the cell at pos.
// Removing a digit that is already absent is a no-op.
func (g Grid) Remove(pos, digit int) Grid {
	g.cells[pos] = g.cells[pos].Without(digit)
	return g
}

// Solved reports whether every cell is down to a single candidate.
func (g Grid) Solved() bool {
	for pos := 0; pos < CellCount; pos++ {
		if g.cells[pos].Count() != 1 {
			return false
		}
	}
	return true
}

// Contradiction reports whether any cell has run out of candidates.
func (g Grid) Contradiction() bool {
	for pos := 0; pos < CellCount; pos++ {
		if g.cells[pos] == 0 {
			return true
		}
	}
	return false
}

// SolvedCount returns the number of cells with exactly one candidate.
func (g Grid) SolvedCount() int {
	count := 0
	for pos := 0; pos < CellCount; pos++ {
		if g.cells[pos].Count() == 1 {
			count++
		}
	}
	return count
}

// Values returns the label-to-digit mapping of all solved cells.
// For a fully solved grid this covers all 81 labels.
func (g Grid) Values() map[string]int {
	values := make(map[string]int, CellCount)
	for pos := 0; pos < CellCount; pos++ {
		if d := g.cells[pos].Single(); d != 0 {
			values[Label(pos)] = d
		}
	}
	return values
}

// String returns the grid as an 81-character string, '.' for any cell not
// yet solved. Parse(g.String()) round-trips only for clue/solved cells.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for pos := 0; pos < CellCount; pos++ {
		if d := g.cells[pos].Single(); d != 0 {
			sb.WriteByte('0' + byte(d))
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Format returns a human-readable 2-D rendering showing each cell's
// remaining candidates, with box separators.
func (g Grid) Format() string {
	width := 1
	for pos := 0; pos < CellCount; pos++ {
		if n := g.cells[pos].Count(); n+1 > width {
			width = n + 1
		}
	}

	var sb strings.Builder
	seg := strings.Repeat("-", 3*width)
	line := seg + "+" + seg + "+" + seg + "\n"

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			sb.WriteString(center(g.cells[MakePos(row, col)].String(), width))
			if col == 2 || col == 5 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
		if row == 2 || row == 5 {
			sb.WriteString(line)
		}
	}
	return sb.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
