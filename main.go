package main

import "github.com/clementtrebuchet/diagonal-sudoku/cmd"

func main() {
	cmd.Execute()
}
