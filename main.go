package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"worlike/game"
)

func main() {
	cfg := game.DefaultConfig()

	g, err := game.NewGame(cfg, time.Now().UnixNano())
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth(), cfg.ScreenHeight())
	ebiten.SetWindowTitle("Worlike")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("game loop: %v", err)
	}
}
