package main

import (
	"fmt"
	"os"

	"shopdrive/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shopdrive:", err)
		os.Exit(1)
	}
}
