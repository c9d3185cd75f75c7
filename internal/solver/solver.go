// Package solver implements the diagonal-Sudoku solving engine:
// constraint propagation (eliminate, naked twins, only choice) run to a
// fixed point, interleaved with backtracking search over value grids.
package solver

import (
	"errors"
	"math/rand"
	"time"

	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
)

var (
	ErrUnsolvable = errors.New("puzzle has no solution")
)

// Recorder receives one event per cell resolution, whether the cell was
// solved by an explicit branch assignment or by propagation. The snapshot is
// the full grid immediately after the resolution. The solver only appends;
// it never reads the log back.
type Recorder interface {
	Record(cell string, digit int, snapshot grid.Grid)
}

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Options configures solving behavior.
type Options struct {
	// Recorder, when non-nil, logs every cell resolution. Recording does
	// not change solving behavior.
	Recorder Recorder

	// Randomize shuffles candidate order at branch points. Used by the
	// generator; leave off for deterministic, reproducible solves.
	Randomize bool

	// Seed for Randomize (0 = time-based).
	Seed int64
}

// Solver runs propagation and search. Single-threaded and synchronous;
// each branch owns its grid value, so backtracking needs no undo.
type Solver struct {
	rec   Recorder
	rng   *rand.Rand
	nodes int
}

// New creates a solver with the given options. nil means defaults.
func New(options *Options) *Solver {
	if options == nil {
		options = &Options{}
	}
	s := &Solver{rec: options.Recorder}
	if options.Randomize {
		seed := options.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	return s
}

// Solve returns a fully solved, constraint-consistent grid, or ErrUnsolvable.
// It never returns a partial or inconsistent result.
func (s *Solver) Solve(g grid.Grid) (grid.Grid, Stats, error) {
	start := time.Now()
	s.nodes = 0
	solved, ok := s.search(g)
	st := Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if !ok {
		return grid.Grid{}, st, ErrUnsolvable
	}
	return solved, st, nil
}

// search is depth-first: propagate, then branch on the MRV cell. Recursion
// depth is bounded by 81 since every branch solves at least one cell.
func (s *Solver) search(g grid.Grid) (grid.Grid, bool) {
	g, ok := s.Reduce(g)
	if !ok {
		return grid.Grid{}, false
	}
	if g.Solved() {
		return g, true
	}

	pos, mask := mrvCell(g)
	digits := mask.Digits()
	if s.rng != nil {
		s.rng.Shuffle(len(digits), func(i, j int) {
			digits[i], digits[j] = digits[j], digits[i]
		})
	}

	for _, digit := range digits {
		s.nodes++
		if solved, ok := s.search(s.assign(g, pos, digit)); ok {
			return solved, true
		}
	}
	return grid.Grid{}, false
}

// mrvCell finds the unsolved cell with the fewest candidates. Ties break on
// the smallest row-major position, i.e. the lexicographically smallest label.
func mrvCell(g grid.Grid) (int, grid.Mask) {
	best := -1
	bestMask := grid.Mask(0)
	bestCount := 10

	for pos := 0; pos < grid.CellCount; pos++ {
		m := g.Get(pos)
		if n := m.Count(); n > 1 && n < bestCount {
			best, bestMask, bestCount = pos, m, n
			if n == 2 {
				break
			}
		}
	}
	return best, bestMask
}

// CountSolutions explores every branch and counts distinct solutions, up to
// limit. The generator uses it with limit 2 to test uniqueness. Run it on a
// recorder-less solver; it replays many branches and would flood a log.
func (s *Solver) CountSolutions(g grid.Grid, limit int) int {
	return s.countSolutions(g, limit, 0)
}

func (s *Solver) countSolutions(g grid.Grid, limit, found int) int {
	g, ok := s.Reduce(g)
	if !ok {
		return found
	}
	if g.Solved() {
		return found + 1
	}

	pos, mask := mrvCell(g)
	for _, digit := range mask.Digits() {
		found = s.countSolutions(g.Assign(pos, digit), limit, found)
		if found >= limit {
			break
		}
	}
	return found
}

// assign sets pos to digit on a fresh grid, recording the resolution if the
// cell was not already solved.
func (s *Solver) assign(g grid.Grid, pos, digit int) grid.Grid {
	wasSolved := g.Get(pos).Count() == 1
	next := g.Assign(pos, digit)
	if s.rec != nil && !wasSolved {
		s.rec.Record(grid.Label(pos), digit, next)
	}
	return next
}

// removeCandidate drops digit from pos, recording when the removal leaves
// the cell solved. Callers must ensure the removal cannot empty the cell.
func (s *Solver) removeCandidate(g grid.Grid, pos, digit int) grid.Grid {
	before := g.Get(pos)
	next := g.Remove(pos, digit)
	if s.rec != nil && before.Has(digit) && before.Count() == 2 {
		s.rec.Record(grid.Label(pos), next.Get(pos).Single(), next)
	}
	return next
}
