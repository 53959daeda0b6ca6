package main

import (
	"fmt"
	"os"

	"gitboot/cmd"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	root := cmd.NewRootCmd()
	root.SetArgs(args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
