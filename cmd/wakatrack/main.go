package main

import (
	"fmt"
	"os"

	"wakatime-tracker/internal/cli"
)

func main() {
	root := cli.NewRootCommand(buildApp)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
