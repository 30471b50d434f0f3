package main

import (
	"os"

	"github.com/hydralog/go-water-monitor/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
