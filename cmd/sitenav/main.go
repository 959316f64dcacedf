package main

import (
	"os"

	"github.com/mossline/sitenav/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
