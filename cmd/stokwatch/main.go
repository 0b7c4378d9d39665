// Package main is the entry point for the stokwatch daemon.
package main

import (
	"os"

	"github.com/stokwatch/stokwatch/cmd/stokwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
