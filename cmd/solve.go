package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
	"github.com/clementtrebuchet/diagonal-sudoku/internal/replay"
	"github.com/clementtrebuchet/diagonal-sudoku/internal/solver"
)

var (
	eventsFile string
	profileCPU bool
	quiet      bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <puzzle>",
		Short: "Solve a diagonal Sudoku puzzle",
		Long: `Solve an 81-character diagonal Sudoku puzzle. The puzzle may be
given inline, as @FILE to read a file, or as '-' to read stdin.

Examples:
  diagonal-sudoku solve 2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3
  diagonal-sudoku solve @puzzle.txt --events events.json
  diagonal-sudoku solve - < puzzle.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVar(&eventsFile, "events", "", "Write the assignment log to this JSON file")
	solveCmd.Flags().BoolVar(&profileCPU, "profile", false, "Write a CPU profile of the solve to the current directory")
	solveCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the 81-character solution")

	rootCmd.AddCommand(solveCmd)
}

// readPuzzle resolves a puzzle argument: inline string, @FILE, or '-'.
func readPuzzle(arg string) (string, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case strings.HasPrefix(arg, "@"):
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", fmt.Errorf("failed to read puzzle file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return arg, nil
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	if profileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	input, err := readPuzzle(args[0])
	if err != nil {
		return err
	}

	g, err := grid.Parse(input)
	if err != nil {
		return err
	}

	opts := &solver.Options{}
	var rec *replay.Log
	if eventsFile != "" {
		rec = replay.NewLog()
		opts.Recorder = rec
	}

	solved, st, err := solver.New(opts).Solve(g)
	if err != nil {
		return err
	}

	if quiet {
		fmt.Println(solved.String())
	} else {
		fmt.Println(solved.Format())
		fmt.Printf("Solved in %v, nodes=%d\n", st.Duration, st.Nodes)
	}

	if rec != nil {
		data, err := json.MarshalIndent(rec.Events(), "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(eventsFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write event log: %w", err)
		}
		log.WithFields(logrus.Fields{
			"file":   eventsFile,
			"events": rec.Len(),
		}).Info("assignment log written")
	}
	return nil
}
