package main

import (
	"os"

	"holidaze/cmd/holidaze/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
