//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cgol/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	session, err := app.NewSession(*cfg)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}
	log.Printf("seed %d", cfg.Seed)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(session.FPS())

	if err := ebiten.RunGame(app.New(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
