//go:build ebiten

package main

import (
	"errors"
	"log"

	"lifeloop/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, loop := setup()

	game := app.New(loop, cfg.Width, cfg.Height, cfg.RandSeed)

	ebiten.SetWindowTitle("lifeloop - " + loop.Scheduler().Sim().Name())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
