package main

import (
	"os"

	"activation-engine/cmd/api/commands"
)

var version = "dev"

func main() {
	if err := commands.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
