package main

import (
	"fmt"
	"os"

	"github.com/plus3/blockfall/internal/cli"
)

func main() {
	opts := &cli.RootOptions{}
	root := cli.NewRootCommand(opts)
	root.AddCommand(newPlayCommand(opts))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
