package main

import (
	"os"

	"gtfsvalidator/cmd/gtfsvalidator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
