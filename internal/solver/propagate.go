package solver

import (
	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
)

// Reduce applies eliminate, naked twins and only choice, in that fixed
// order, until a full pass leaves the solved-cell count unchanged. The
// rules are monotone (candidates only shrink) over a finite domain, so the
// loop always terminates; the fixed point is also confluent, but the fixed
// rule order keeps the recorded event sequence reproducible.
//
// Returns false as soon as any cell's candidate set empties.
func (s *Solver) Reduce(g grid.Grid) (grid.Grid, bool) {
	for {
		before := g.SolvedCount()

		var ok bool
		if g, ok = s.eliminate(g); !ok {
			return grid.Grid{}, false
		}
		if g, ok = s.nakedTwins(g); !ok {
			return grid.Grid{}, false
		}
		g = s.onlyChoice(g)

		if g.SolvedCount() == before {
			return g, true
		}
	}
}

// eliminate removes each solved cell's digit from all of its peers. The
// solved set is snapshotted up front; cells solved by this very pass are
// picked up on the next Reduce iteration.
func (s *Solver) eliminate(g grid.Grid) (grid.Grid, bool) {
	solved := make([]int, 0, grid.CellCount)
	for pos := 0; pos < grid.CellCount; pos++ {
		if g.Get(pos).Count() == 1 {
			solved = append(solved, pos)
		}
	}

	for _, pos := range solved {
		digit := g.Get(pos).Single()
		for _, peer := range grid.Peers(pos) {
			m := g.Get(peer)
			if !m.Has(digit) {
				continue
			}
			if m.Count() == 1 {
				// Two peers hold the same digit: contradiction.
				return grid.Grid{}, false
			}
			g = s.removeCandidate(g, peer, digit)
		}
	}
	return g, true
}

// nakedTwins finds, per unit, a candidate pair occurring at exactly two
// cells and strips both digits from every other cell of that unit. The twin
// cells themselves are untouched.
func (s *Solver) nakedTwins(g grid.Grid) (grid.Grid, bool) {
	for _, unit := range grid.UnitList() {
		for i, cell := range unit {
			pair := g.Get(cell)
			if pair.Count() != 2 {
				continue
			}

			occurrences := 0
			for _, other := range unit {
				if g.Get(other) == pair {
					occurrences++
				}
			}
			if occurrences != 2 {
				continue
			}

			// Process each twin pair once, at its first occurrence.
			seen := false
			for _, earlier := range unit[:i] {
				if g.Get(earlier) == pair {
					seen = true
					break
				}
			}
			if seen {
				continue
			}

			for _, other := range unit {
				if g.Get(other) == pair {
					continue
				}
				for _, digit := range pair.Digits() {
					m := g.Get(other)
					if !m.Has(digit) {
						continue
					}
					if m.Count() == 1 {
						return grid.Grid{}, false
					}
					g = s.removeCandidate(g, other, digit)
				}
			}
		}
	}
	return g, true
}

// onlyChoice assigns a digit to the sole cell of a unit that can still take
// it. Never empties a set; a digit with no place left surfaces as a
// contradiction in a later eliminate or in the search.
func (s *Solver) onlyChoice(g grid.Grid) grid.Grid {
	for _, unit := range grid.UnitList() {
		for digit := 1; digit <= 9; digit++ {
			place := -1
			count := 0
			for _, cell := range unit {
				if g.Get(cell).Has(digit) {
					place = cell
					count++
				}
			}
			if count == 1 && g.Get(place).Count() > 1 {
				g = s.assign(g, place, digit)
			}
		}
	}
	return g
}
