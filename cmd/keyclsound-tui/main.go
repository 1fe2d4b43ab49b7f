package main

import (
	"fmt"
	"os"

	"github.com/optionallybluestudios/keycl/internal/config"
	"github.com/optionallybluestudios/keycl/internal/tui"
)

func main() {
	settings, err := config.Load(config.DefaultSettingsPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
