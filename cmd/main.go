package main

import (
	"os"

	"github.com/soundprediction/remedigraph/cmd/remedigraph"
)

func main() {
	if err := remedigraph.Execute(); err != nil {
		os.Exit(1)
	}
}
