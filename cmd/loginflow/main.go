package main

import (
	"os"

	"loginflow/cmd/loginflow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
