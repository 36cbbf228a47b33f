package main

import (
	"os"

	"github.com/sukenderreddy/resume-word-suggestor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
