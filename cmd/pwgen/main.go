package main

import (
	"os"

	"pwgen/cmd/pwgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
