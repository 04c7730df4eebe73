// Package main is the entry point for the notegest CLI.
package main

import (
	"os"

	"github.com/dgallion1/notegest/cmd/notegest/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
