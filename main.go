package main

import (
	"os"

	"github.com/rajat/learnhub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
