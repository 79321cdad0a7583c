package main

import (
	"fmt"
	"os"

	"github.com/CodeSmile-0000011110110111/de.codesmile.testtools/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
