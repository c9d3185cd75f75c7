package solver

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
)

type capturedEvent struct {
	cell  string
	digit int
	snap  grid.Grid
}

type captureRecorder struct {
	events []capturedEvent
}

func (c *captureRecorder) Record(cell string, digit int, snapshot grid.Grid) {
	c.events = append(c.events, capturedEvent{cell, digit, snapshot})
}

// checkSolved verifies a full diagonal-Sudoku solution: all 29 units hold
// each digit exactly once.
func checkSolved(t *testing.T, g grid.Grid) {
	t.Helper()
	if !g.Solved() {
		t.Fatalf("grid not fully solved: %s", g)
	}
	for i, unit := range grid.UnitList() {
		var seen grid.Mask
		for _, pos := range unit {
			seen |= g.Get(pos)
		}
		if seen != grid.Full {
			t.Fatalf("unit %d holds digits %s, want all of 1-9", i, seen)
		}
	}
}

func TestSolveDiagonalPuzzle(t *testing.T) {
	puzzles := []string{
		samplePuzzle,
		"4.....8.5.3..........7......2.....6.....8.4......1.......6.....5..2.....1.4......",
	}
	for _, p := range puzzles {
		solved, st, err := New(nil).Solve(mustParse(t, p))
		if err != nil {
			t.Fatalf("Solve(%s) failed: %v", p, err)
		}
		checkSolved(t, solved)

		// Clues survive into the solution.
		for pos, ch := range []byte(p) {
			if ch != '.' && solved.Get(pos).Single() != int(ch-'0') {
				t.Fatalf("clue %s=%c was changed to %d", grid.Label(pos), ch, solved.Get(pos).Single())
			}
		}
		t.Logf("solved %q in %v, nodes=%d", p[:9]+"...", st.Duration, st.Nodes)
	}
}

func TestSolveRespectsDiagonals(t *testing.T) {
	solved, _, err := New(nil).Solve(mustParse(t, samplePuzzle))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	var main, anti grid.Mask
	for i := 0; i < 9; i++ {
		main |= solved.Get(grid.MakePos(i, i))
		anti |= solved.Get(grid.MakePos(i, 8-i))
	}
	if main != grid.Full || anti != grid.Full {
		t.Fatalf("diagonals incomplete: main=%s anti=%s", main, anti)
	}
}

func TestSolveReportsUnsat(t *testing.T) {
	// Two 5s in row A.
	g := mustParse(t, "55"+strings.Repeat(".", 79))
	_, _, err := New(nil).Solve(g)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("got %v, want ErrUnsolvable", err)
	}
}

func TestSolveDeterministic(t *testing.T) {
	run := func() (grid.Grid, []capturedEvent) {
		rec := &captureRecorder{}
		solved, _, err := New(&Options{Recorder: rec}).Solve(mustParse(t, samplePuzzle))
		if err != nil {
			t.Fatalf("Solve failed: %v", err)
		}
		return solved, rec.events
	}

	solved1, events1 := run()
	solved2, events2 := run()

	if solved1 != solved2 {
		t.Error("two runs produced different solutions")
	}
	if !reflect.DeepEqual(events1, events2) {
		t.Errorf("two runs produced different event sequences (%d vs %d events)",
			len(events1), len(events2))
	}
}

func TestRecorderEventsConsistent(t *testing.T) {
	rec := &captureRecorder{}
	_, _, err := New(&Options{Recorder: rec}).Solve(mustParse(t, samplePuzzle))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(rec.events) == 0 {
		t.Fatal("no events recorded")
	}

	for i, ev := range rec.events {
		pos := grid.PosOf(ev.cell)
		if pos < 0 {
			t.Fatalf("event %d has invalid cell %q", i, ev.cell)
		}
		if ev.digit < 1 || ev.digit > 9 {
			t.Fatalf("event %d has invalid digit %d", i, ev.digit)
		}
		// The snapshot shows the cell solved to exactly that digit.
		if ev.snap.Get(pos).Single() != ev.digit {
			t.Fatalf("event %d snapshot has %s=%s, want singleton %d",
				i, ev.cell, ev.snap.Get(pos), ev.digit)
		}
	}
}

func TestSolveWithoutRecorderUnaffected(t *testing.T) {
	rec := &captureRecorder{}
	withRec, _, err1 := New(&Options{Recorder: rec}).Solve(mustParse(t, samplePuzzle))
	without, _, err2 := New(nil).Solve(mustParse(t, samplePuzzle))
	if err1 != nil || err2 != nil {
		t.Fatalf("Solve failed: %v / %v", err1, err2)
	}
	if withRec != without {
		t.Error("recording changed the solution")
	}
}

func TestRandomizedSolveFillsEmptyGrid(t *testing.T) {
	s := New(&Options{Randomize: true, Seed: 42})
	solved, _, err := s.Solve(grid.Empty())
	if err != nil {
		t.Fatalf("Solve of empty grid failed: %v", err)
	}
	checkSolved(t, solved)
}

func TestCountSolutions(t *testing.T) {
	if n := New(nil).CountSolutions(mustParse(t, samplePuzzle), 2); n != 1 {
		t.Errorf("sample puzzle has %d solutions, want 1", n)
	}
	if n := New(nil).CountSolutions(grid.Empty(), 2); n != 2 {
		t.Errorf("empty grid capped count = %d, want 2", n)
	}
}

func TestDifficulty(t *testing.T) {
	solved, _, err := New(nil).Solve(mustParse(t, samplePuzzle))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if d := Difficulty(solved); d != 0 {
		t.Errorf("difficulty of a solved grid = %d, want 0", d)
	}
	if d := Difficulty(mustParse(t, samplePuzzle)); d < 0 {
		t.Errorf("difficulty = %d, want >= 0", d)
	}
}
