package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hn770123/sudoku-b1/sudoku"
)

var (
	numPuzzles    int
	seed          int64
	withSolutions bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sudoku-gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles and print them to stdout.

Each puzzle is carved from a freshly generated solution; the difficulty label
reflects how many cells were removed.

Examples:
  sudoku-gen
  sudoku-gen -n 5
  sudoku-gen --seed 42 --solutions`,
		RunE: runGen,
	}

	rootCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = derive from clock)")
	rootCmd.Flags().BoolVar(&withSolutions, "solutions", false, "Print each solution after its puzzle")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	if numPuzzles < 1 {
		return fmt.Errorf("number of puzzles must be positive, got %d", numPuzzles)
	}

	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	for i := 0; i < numPuzzles; i++ {
		solution := sudoku.Generate(rng)
		puzzle, difficulty := sudoku.Carve(rng, solution)

		fmt.Printf("Puzzle #%d (%s):\n", i+1, difficulty)
		fmt.Println(puzzle.String())
		if withSolutions {
			fmt.Println("Solution:")
			fmt.Println(solution.String())
		}
	}
	return nil
}
