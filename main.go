package main

import (
	"os"

	"github.com/chunghha/tui-sudoku/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
