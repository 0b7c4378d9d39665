// Package main is the entry point for the swctl CLI client.
package main

import (
	"github.com/stokwatch/stokwatch/cmd/swctl/cmd"
)

func main() {
	cmd.Execute()
}
