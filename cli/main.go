package main

import (
	"os"

	"github.com/nolman/fragment/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
