package main

import (
	"fmt"
	"os"

	"piet/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "<ERROR>:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
