package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
	"github.com/clementtrebuchet/diagonal-sudoku/internal/replay"
	"github.com/clementtrebuchet/diagonal-sudoku/internal/solver"
)

var (
	replayAddr     string
	replayInterval time.Duration
)

func init() {
	replayCmd := &cobra.Command{
		Use:   "replay <puzzle>",
		Short: "Solve a puzzle and serve the solve for replay",
		Long: `Solve a puzzle while recording every cell resolution, then serve
the recording over HTTP: GET /events returns the full log as JSON and
GET /ws streams it over a websocket, one event per interval, so an
external tool can animate the solve.

Examples:
  diagonal-sudoku replay @puzzle.txt
  diagonal-sudoku replay @puzzle.txt --addr :9000 --interval 100ms`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}

	replayCmd.Flags().StringVar(&replayAddr, "addr", ":8080", "Listen address for the replay server")
	replayCmd.Flags().DurationVar(&replayInterval, "interval", 200*time.Millisecond, "Playback interval between streamed events")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	input, err := readPuzzle(args[0])
	if err != nil {
		return err
	}

	g, err := grid.Parse(input)
	if err != nil {
		return err
	}

	rec := replay.NewLog()
	_, st, err := solver.New(&solver.Options{Recorder: rec}).Solve(g)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"nodes":    st.Nodes,
		"duration": st.Duration,
		"events":   rec.Len(),
	}).Info("puzzle solved, serving replay")

	return replay.NewServer(rec, input, replayInterval).ListenAndServe(replayAddr)
}
