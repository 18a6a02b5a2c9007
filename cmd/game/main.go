package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quarrelgames/tankduel/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Tank Duel")
	ebiten.SetWindowSize(900, 900)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
