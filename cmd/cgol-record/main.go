package main

import (
	"flag"
	"image"
	"log"
	"os"

	"cgol/internal/app"
	"cgol/internal/core"
	"cgol/internal/record"
	"cgol/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 600, "number of frames to render")
	out := flag.String("out", "cgol.avi", "output MJPEG AVI file")
	chartPath := flag.String("chart", "", "optional PNG population chart")
	aliens := flag.Bool("aliens", false, "inject aliens on the first frame")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	session, err := app.NewSession(*cfg)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	video, err := record.NewVideo(*out, cfg.Width, cfg.Height, session.FPS())
	if err != nil {
		log.Fatal(err)
	}
	var pop record.Population
	engine := session.Engine()
	surface := render.NewImageSurface(cfg.Width, cfg.Height, func(img *image.RGBA) {
		video.AddFrame(img)
		pop.Add(engine.Generation(), engine.Population())
	})

	first := []app.Event{app.KeyPress(app.KeySpace)}
	if *aliens {
		first = append(first, app.KeyPress(app.KeyA))
	}
	batches := make([][]app.Event, max(*frames-1, 0))
	if len(batches) > 0 {
		batches[0] = first
	}
	session.Run(app.NewScript(batches...), surface, core.NopPacer{})

	if err := video.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s (seed %d)", video.Frames(), *out, cfg.Seed)

	if *chartPath == "" {
		return
	}
	f, err := os.Create(*chartPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := pop.WriteChart(f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote population chart to %s", *chartPath)
}
