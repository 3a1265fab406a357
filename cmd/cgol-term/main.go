package main

import (
	"flag"
	"log"

	"cgol/internal/app"
	"cgol/internal/core"
	"cgol/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.CellSize = 1
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := term.Open()
	if err != nil {
		log.Fatal(err)
	}
	cfg.Width, cfg.Height = screen.Size()

	session, err := app.NewSession(*cfg)
	if err != nil {
		screen.Close()
		log.Fatalf("start session: %v", err)
	}
	session.Run(screen, screen, core.SleepPacer{})
	screen.Close()
}
