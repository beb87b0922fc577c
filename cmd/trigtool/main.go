// Package main is trigtool, a command line companion to the unit circle:
// reference table, angle evaluation, snapping and PNG export.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
