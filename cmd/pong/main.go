package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/silbinarywolf/toy-pong/internal/app"
)

// main runs the game, it expects to be started from the directory that
// holds the resources folder
func main() {
	app.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	if err := app.StartApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
