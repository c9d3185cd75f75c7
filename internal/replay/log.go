// Package replay records the ordered sequence of cell resolutions produced
// by a solve and serves it to external replay/visualization tools.
package replay

import (
	"sync"

	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
)

// Event is one cell resolution: which cell, which digit, and the full
// candidate snapshot of the grid at that moment.
type Event struct {
	Seq   int               `json:"seq"`
	Cell  string            `json:"cell"`
	Digit int               `json:"digit"`
	Cells map[string]string `json:"cells"`
}

// Log is an append-only, ordered assignment record. It implements
// solver.Recorder. The solver appends single-threaded; the mutex makes
// concurrent reads by a replay server safe.
type Log struct {
	mu     sync.Mutex
	events []Event
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Record appends one resolution event with a full grid snapshot.
func (l *Log) Record(cell string, digit int, snapshot grid.Grid) {
	cells := make(map[string]string, grid.CellCount)
	for pos := 0; pos < grid.CellCount; pos++ {
		cells[grid.Label(pos)] = snapshot.Get(pos).String()
	}

	l.mu.Lock()
	l.events = append(l.events, Event{
		Seq:   len(l.events),
		Cell:  cell,
		Digit: digit,
		Cells: cells,
	})
	l.mu.Unlock()
}

// Events returns a copy of the recorded sequence in append order.
func (l *Log) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}
