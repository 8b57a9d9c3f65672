package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/venuesite/internal/app"
	"github.com/dmitrymomot/venuesite/pkg/logger"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		slog.Error("venue site stopped", logger.Error(err))
		os.Exit(1)
	}
}
