// Package main is the entry point for the bozo CLI.
package main

import (
	"os"

	"github.com/digitalbricklayer/bozo/cmd/bozo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
