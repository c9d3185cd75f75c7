package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clementtrebuchet/diagonal-sudoku/internal/generator"
	"github.com/clementtrebuchet/diagonal-sudoku/internal/grid"
	"github.com/clementtrebuchet/diagonal-sudoku/internal/solver"
)

var (
	numPuzzles int
	clueCount  string
	genSeed    int64
	genTimeout time.Duration
	outputFile string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate diagonal Sudoku puzzles",
		Long: `Generate one or more diagonal Sudoku puzzles with a unique solution.

Examples:
  diagonal-sudoku gen --clues 40
  diagonal-sudoku gen -n 5 --clues 30
  diagonal-sudoku gen --clues 28:32 --output puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&clueCount, "clues", "c", fmt.Sprintf("%d", generator.DefaultClueCount), "Number of clues 17-80 or range like 28:32")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

// parseClueRange parses a clue count: a single number "32" or a range "28:32".
func parseClueRange(s string) (low, high int, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count: %w", err)
		}
		return val, val, nil
	case 2:
		low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count min: %w", err)
		}
		high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clue count max: %w", err)
		}
		if low > high {
			return 0, 0, fmt.Errorf("clue count min (%d) cannot be greater than max (%d)", low, high)
		}
		return low, high, nil
	}
	return 0, 0, fmt.Errorf("invalid clue count format: %s (use format like '32' or '28:32')", s)
}

func runGen(cmd *cobra.Command, args []string) error {
	minClues, maxClues, err := parseClueRange(clueCount)
	if err != nil {
		return err
	}
	for _, n := range []int{minClues, maxClues} {
		if n < generator.MinValidClueCount || n > generator.MaxValidClueCount {
			return fmt.Errorf("clue count (%d) must be between %d and %d", n, generator.MinValidClueCount, generator.MaxValidClueCount)
		}
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var puzzles, solutions []grid.Grid
	for i := 0; i < numPuzzles; i++ {
		clues := minClues
		if maxClues > minClues {
			clues = minClues + rng.Intn(maxClues-minClues+1)
		}

		opts := generator.DefaultOptions(clues)
		opts.Timeout = genTimeout
		opts.Seed = rng.Int63()

		puzzle, solution, err := generator.New(opts).Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if outputFile != "" {
			puzzles = append(puzzles, puzzle)
			solutions = append(solutions, solution)
			continue
		}

		fmt.Printf("Puzzle #%d (clues: %d, difficulty: %d):\n", i+1, clues, solver.Difficulty(puzzle))
		fmt.Println(puzzle.String())
		fmt.Println(puzzle.Format())
		fmt.Println("Solution:")
		fmt.Println(solution.Format())
		fmt.Println()
	}

	if outputFile != "" {
		filename := outputFile
		if filepath.Ext(filename) != ".html" {
			filename += ".html"
		}
		if err := writeHTML(filename, puzzles, solutions); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", numPuzzles, filename)
	}
	return nil
}

// writeHTML renders printable puzzle sheets, one puzzle per page, with the
// two diagonals shaded.
func writeHTML(filename string, puzzles, solutions []grid.Grid) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = fmt.Fprint(file, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Diagonal Sudoku Puzzles</title>
<style>
  body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; }
  .page { page-break-after: always; padding: 40px; }
  h1, h2 { text-align: center; color: #333; }
  table { border-collapse: collapse; margin: 20px auto; font-size: 24px; }
  td { width: 40px; height: 40px; text-align: center; border: 1px solid #333; }
  td.diag { background-color: #eef; }
  td.empty { color: #ccc; }
  tr:nth-child(3n) td { border-bottom: 2px solid #000; }
  td:nth-child(3n) { border-right: 2px solid #000; }
  tr:first-child td { border-top: 2px solid #000; }
  td:first-child { border-left: 2px solid #000; }
</style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	for i := range puzzles {
		_, err = fmt.Fprintf(file, `<div class="page">
<h1>Diagonal Sudoku #%d</h1>
<h2>Puzzle</h2>
%s
<h2>Solution</h2>
%s
</div>
`, i+1, gridToHTML(puzzles[i]), gridToHTML(solutions[i]))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(file, "</body>\n</html>\n")
	return err
}

// gridToHTML renders one grid as an HTML table, marking diagonal cells.
func gridToHTML(g grid.Grid) string {
	var sb strings.Builder
	sb.WriteString("<table>")

	cells := g.String()
	for row := 0; row < 9; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < 9; col++ {
			pos := grid.MakePos(row, col)

			var classes []string
			if grid.OnDiagonal(pos) {
				classes = append(classes, "diag")
			}
			content := string(cells[pos])
			if content == "." {
				classes = append(classes, "empty")
				content = "&middot;"
			}

			sb.WriteString(fmt.Sprintf("<td class=%q>%s</td>", strings.Join(classes, " "), content))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table>")
	return sb.String()
}
