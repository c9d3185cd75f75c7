package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
	"github.com/clementtrebuchet/diagonal-sudoku/internal/solver"
)

func TestGenerateProducesUniquePuzzle(t *testing.T) {
	opts := &Options{
		ClueCount:    40,
		Timeout:      30 * time.Second,
		Seed:         1,
		EnsureUnique: true,
	}

	puzzle, solution, err := New(opts).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	clues := len(puzzle.String()) - strings.Count(puzzle.String(), ".")
	if clues != opts.ClueCount {
		t.Errorf("puzzle has %d clues, want %d", clues, opts.ClueCount)
	}

	if !solution.Solved() {
		t.Fatal("solution is not fully solved")
	}
	for i, unit := range grid.UnitList() {
		var seen grid.Mask
		for _, pos := range unit {
			seen |= solution.Get(pos)
		}
		if seen != grid.Full {
			t.Fatalf("solution unit %d holds %s, want all of 1-9", i, seen)
		}
	}

	// Every puzzle clue agrees with the solution.
	for pos := 0; pos < grid.CellCount; pos++ {
		if d := puzzle.Get(pos).Single(); d != 0 && d != solution.Get(pos).Single() {
			t.Fatalf("clue %s=%d disagrees with solution %d",
				grid.Label(pos), d, solution.Get(pos).Single())
		}
	}

	if n := solver.New(nil).CountSolutions(puzzle, 2); n != 1 {
		t.Errorf("puzzle has %d solutions, want exactly 1", n)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	opts := func() *Options {
		return &Options{
			ClueCount:    45,
			Timeout:      30 * time.Second,
			Seed:         7,
			EnsureUnique: true,
		}
	}

	p1, s1, err := New(opts()).Generate()
	if err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	p2, s2, err := New(opts()).Generate()
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}

	if p1 != p2 || s1 != s2 {
		t.Error("same seed produced different puzzles")
	}
}

func TestGenerateRejectsBadClueCount(t *testing.T) {
	for _, n := range []int{0, 16, 81} {
		_, _, err := New(&Options{ClueCount: n, Timeout: time.Second}).Generate()
		if err == nil {
			t.Errorf("clue count %d accepted", n)
		}
	}
}

func TestDefaultOptionsClamps(t *testing.T) {
	if got := DefaultOptions(5).ClueCount; got != MinValidClueCount {
		t.Errorf("ClueCount = %d, want %d", got, MinValidClueCount)
	}
	if got := DefaultOptions(200).ClueCount; got != MaxValidClueCount {
		t.Errorf("ClueCount = %d, want %d", got, MaxValidClueCount)
	}
}
