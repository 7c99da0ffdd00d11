//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"tilescape/internal/app"
	"tilescape/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := cfg.ResolvedSeed()
	world, err := app.NewWorld(*cfg, seed)
	if err != nil {
		log.Fatalf("world: %v", err)
	}
	counts := world.Terrain().Counts()
	log.Printf("layout %s seed %d: %d tiles, %d decorations, %d water", cfg.Layout, seed, world.Terrain().Len(), len(world.Terrain().Decorations()), counts[terrain.Water])

	game := app.New(world, cfg.Width, cfg.Height)

	ebiten.SetWindowTitle("tilescape: " + cfg.Layout)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
