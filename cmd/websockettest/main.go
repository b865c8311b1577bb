package main

import (
	"os"

	"monitorscreen/cmd/websockettest/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
