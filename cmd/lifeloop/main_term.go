//go:build !ebiten

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"lifeloop/internal/term"
)

func main() {
	cfg, loop := setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.Run(ctx, loop, cfg.FPS, cfg.RandSeed); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
