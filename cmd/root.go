// Package cmd wires the command-line interface.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "diagonal-sudoku",
	Short: "Solve, replay and generate diagonal Sudoku puzzles",
	Long: `diagonal-sudoku works with the 9x9 Sudoku variant whose two main
diagonals must also contain each digit exactly once, on top of the usual
row, column and box constraints.

Puzzles are 81-character strings scanned row A through I, left to right,
with '.' for unknown cells:

  2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
