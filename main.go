package main

import (
	"log"

	"gloom/internal/config"
	"gloom/internal/game"
	"gloom/internal/texture"
	"gloom/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Load the world grid; a broken map is fatal before the loop starts.
	grid, err := world.LoadGrid(cfg.World.MapFile)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	// Load wall and sky textures
	atlas, err := texture.LoadAtlas(cfg.Textures.Dir, cfg.Textures.Size,
		cfg.Textures.Sky, cfg.Textures.Walls)
	if err != nil {
		log.Fatalf("Failed to load textures: %v", err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.New(cfg, grid, atlas)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
