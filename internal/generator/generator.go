// Package generator creates diagonal-Sudoku puzzles: a randomized complete
// solution is dug out cell by cell until only the requested clues remain,
// optionally keeping the solution unique at every step.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
	"github.com/clementtrebuchet/diagonal-sudoku/internal/solver"
)

const (
	MinValidClueCount = 17
	MaxValidClueCount = 80
	DefaultClueCount  = 32
)

var (
	ErrGenerationFailed = errors.New("failed to generate valid puzzle")
	ErrInvalidClueCount = errors.New("clue count must be between 17 and 80")
)

// Generator creates diagonal Sudoku puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultClueCount)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new puzzle.
// Returns the puzzle and its solution, or an error if generation fails.
func (g *Generator) Generate() (puzzle, solution grid.Grid, err error) {
	if g.options.ClueCount < MinValidClueCount || g.options.ClueCount > MaxValidClueCount {
		return grid.Grid{}, grid.Grid{}, ErrInvalidClueCount
	}

	start := time.Now()
	for {
		if time.Since(start) >= g.options.Timeout {
			return grid.Grid{}, grid.Grid{}, ErrGenerationFailed
		}

		solution, err = g.generateSolution()
		if err != nil {
			continue
		}

		var ok bool
		puzzle, ok = g.removeCells(solution)
		if !ok {
			continue
		}

		return puzzle, solution, nil
	}
}

// generateSolution produces a complete valid diagonal grid by solving the
// empty grid with randomized candidate order.
func (g *Generator) generateSolution() (grid.Grid, error) {
	s := solver.New(&solver.Options{
		Randomize: true,
		Seed:      g.rng.Int63(),
	})
	solution, _, err := s.Solve(grid.Empty())
	return solution, err
}

// removeCells digs clues out of a complete solution in random order until
// the target clue count is reached. With EnsureUnique, a dig that lets a
// second solution in is undone and another cell tried instead.
func (g *Generator) removeCells(solution grid.Grid) (grid.Grid, bool) {
	cells := []byte(solution.String())
	target := grid.CellCount - g.options.ClueCount

	removed := 0
	for _, pos := range g.rng.Perm(grid.CellCount) {
		if removed >= target {
			break
		}

		clue := cells[pos]
		cells[pos] = '.'
		removed++

		if g.options.EnsureUnique && !hasUniqueSolution(string(cells)) {
			cells[pos] = clue
			removed--
		}
	}
	if removed != target {
		return grid.Grid{}, false
	}

	puzzle, err := grid.Parse(string(cells))
	if err != nil {
		return grid.Grid{}, false
	}
	return puzzle, true
}

// hasUniqueSolution reports whether the puzzle has exactly one solution.
func hasUniqueSolution(puzzle string) bool {
	p, err := grid.Parse(puzzle)
	if err != nil {
		return false
	}
	return solver.New(nil).CountSolutions(p, 2) == 1
}

// GenerateWithClueCount is a convenience wrapper for one-off generation.
func GenerateWithClueCount(clueCount int) (grid.Grid, grid.Grid, error) {
	return New(DefaultOptions(clueCount)).Generate()
}
