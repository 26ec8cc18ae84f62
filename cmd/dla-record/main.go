package main

import (
	"flag"
	"log"

	"ellipse-dla/internal/app"
	"ellipse-dla/internal/dla"
	"ellipse-dla/internal/record"
	"ellipse-dla/internal/render"
)

func main() {
	out := flag.String("out", "growth.avi", "output AVI path")
	triggers := flag.Int("triggers", 30, "growth triggers to record")
	fps := flag.Int("fps", 24, "video frame rate")
	quality := flag.Int("quality", 90, "JPEG quality (1-100)")
	seed := flag.Int64("seed", 0, "seed override (0 keeps the configured seed)")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg := dla.FromMap(overrides.Map())
	if *seed != 0 {
		cfg.Seed = *seed
	}
	gen, err := dla.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	opts := render.DefaultOptions()
	opts.PixelSize = cfg.PixelSize
	size := gen.Size()
	w, h := size.W*opts.PixelSize, size.H*opts.PixelSize
	rec, err := record.Create(*out, w, h, *fps, *quality)
	if err != nil {
		log.Fatal(err)
	}

	canvas, err := render.Canvas(gen.Cells(), size.W, size.H, opts)
	if err != nil {
		log.Fatal(err)
	}
	var frameErr error
	addFrame := func() {
		if frameErr != nil {
			return
		}
		if err := render.Paint(canvas, gen.Cells(), size.W, size.H, opts); err != nil {
			frameErr = err
			return
		}
		frameErr = rec.AddFrame(canvas)
	}
	addFrame()
	gen.OnCommit(func(dla.Branch) { addFrame() })

	for t := 0; t < *triggers && frameErr == nil; t++ {
		if err := gen.Grow(); err != nil {
			log.Printf("trigger %d: %v", t+1, err)
			break
		}
		if (t+1)%10 == 0 {
			log.Printf("trigger %d/%d, %d frames", t+1, *triggers, rec.Frames())
		}
	}
	if frameErr != nil {
		log.Printf("recording stopped: %v", frameErr)
	}
	if err := rec.Close(); err != nil {
		log.Fatalf("close %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d frames)", *out, rec.Frames())
}
