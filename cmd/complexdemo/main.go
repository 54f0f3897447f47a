package main

import (
	"log/slog"
	"os"

	"github.com/mmynk/complexnum/cmd/complexdemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		slog.Error("Demo failed", "error", err)
		os.Exit(1)
	}
}
