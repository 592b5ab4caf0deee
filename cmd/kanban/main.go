package main

import (
	"os"

	"kanbanlists/cmd/kanban/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
