//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"terrain-bg/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindPreview(flag.CommandLine)
	flag.Parse()

	req, err := cfg.Request(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(req, cfg.Zoom, cfg.HUDWidth, cfg.Regenerate, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("terrain-bg preview")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
