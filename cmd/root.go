package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "tui-sudoku",
	Short: "Generate, play, rate, and serve Sudoku puzzles",
	Long: `tui-sudoku is a Sudoku toolbox built around a single puzzle engine.

Play interactively in the terminal, batch-generate printable puzzle
books, analyze the difficulty of existing puzzles, or serve puzzles
over HTTP and websockets.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
