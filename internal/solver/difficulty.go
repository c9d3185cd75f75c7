package solver

import (
	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
)

// Difficulty returns an integer measure of how much guessing a puzzle
// needs: the total number of branch assignments explored across the whole
// search tree. 0 means propagation alone solves it.
func Difficulty(g grid.Grid) int {
	s := New(nil)
	return s.traceDifficulty(g)
}

// traceDifficulty walks every branch rather than stopping at the first
// solution, so the score reflects the full size of the guess tree.
func (s *Solver) traceDifficulty(g grid.Grid) int {
	g, ok := s.Reduce(g)
	if !ok || g.Solved() {
		return 0
	}

	pos, mask := mrvCell(g)
	score := 0
	for _, digit := range mask.Digits() {
		score += 1 + s.traceDifficulty(g.Assign(pos, digit))
	}
	return score
}
