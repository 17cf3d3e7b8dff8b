package main

import (
	"os"

	"github.com/blocklua-lang/blocklua/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
