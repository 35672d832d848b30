package main

import (
	"os"

	"github.com/manicmap/mapdat-go/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
