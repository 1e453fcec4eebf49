package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

func main() {
	log.SetPrefix("particle-field: ")

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(config.WindowWidth, config.WindowHeight)
	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
