package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ellipse-dla/internal/app"
	"ellipse-dla/internal/core"
	"ellipse-dla/internal/dla"
	"ellipse-dla/internal/render"
	"ellipse-dla/internal/stats"
)

type runResult struct {
	seed  int64
	stats dla.Stats
	img   *image.RGBA
	path  string
}

func main() {
	runs := flag.Int("runs", 8, "number of independent structures to grow")
	baseSeed := flag.Int64("seed", 1337, "seed of the first run; later runs add their index")
	triggers := flag.Int("triggers", 20, "growth triggers per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	outDir := flag.String("out", "out", "directory for PNG output (empty disables it)")
	sheetCols := flag.Int("sheet", 4, "contact sheet columns (0 disables the sheet)")
	tint := flag.String("tint", "gray", "structure color as hex rgb, or gray")
	samples := flag.Int("samples", 20000, "perimeter samples for the uniformity check (0 skips it)")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	palette, err := render.ParseTint(*tint)
	if err != nil {
		log.Fatal(err)
	}
	base := dla.FromMap(overrides.Map())
	probe, err := dla.NewWithConfig(base)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}

	printParams(probe.Parameters())
	if *samples > 0 {
		checkSampler(probe.Sampler(), *samples)
	}

	fmt.Printf("Growing %d structures (%d workers, %d triggers each)\n", *runs, *workers, *triggers)

	results := make([]runResult, *runs)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i := 0; i < *runs; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Seed = *baseSeed + int64(i)
			res, err := growOne(cfg, *triggers, *outDir, palette)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.Seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("batch stopped: %v", err)
	}

	var lengths []int
	var tiles []*image.RGBA
	for _, res := range results {
		lengths = append(lengths, res.stats.BranchLengths...)
		tiles = append(tiles, res.img)
		t := res.stats.Total
		fmt.Printf("seed %d: attempts %d commits %d escaped %d self %d short %d %s\n",
			res.seed, t.Attempts, t.Commits, t.Escaped, t.SelfIntersection, t.TooShort, res.path)
	}
	s := stats.Summarize(lengths)
	fmt.Printf("branch length: n=%d mean=%.2f sd=%.2f min=%.0f max=%.0f\n", s.Count, s.Mean, s.StdDev, s.Min, s.Max)

	if *outDir != "" && *sheetCols > 0 && len(tiles) > 0 {
		path := filepath.Join(*outDir, "sheet.png")
		if err := render.SavePNG(path, render.Sheet(tiles, *sheetCols, 0.5)); err != nil {
			log.Fatalf("sheet: %v", err)
		}
		log.Printf("wrote %s", path)
	}
}

func growOne(cfg dla.Config, triggers int, outDir string, palette render.Palette) (runResult, error) {
	gen, err := dla.NewWithConfig(cfg)
	if err != nil {
		return runResult{}, err
	}
	for t := 0; t < triggers; t++ {
		if err := gen.Grow(); err != nil {
			return runResult{}, fmt.Errorf("trigger %d: %w", t+1, err)
		}
	}
	opts := render.DefaultOptions()
	opts.PixelSize = cfg.PixelSize
	opts.Palette = palette
	size := gen.Size()
	img, err := render.Canvas(gen.Cells(), size.W, size.H, opts)
	if err != nil {
		return runResult{}, err
	}
	res := runResult{seed: cfg.Seed, stats: gen.Stats(), img: img}
	if outDir == "" {
		return res, nil
	}
	res.path = filepath.Join(outDir, fmt.Sprintf("dla-%d.png", cfg.Seed))
	caption := fmt.Sprintf("seed %d  triggers %d  attempts %d", cfg.Seed, triggers, res.stats.Total.Attempts)
	if err := render.SavePNG(res.path, render.Caption(img, caption, color.White)); err != nil {
		return runResult{}, err
	}
	return res, nil
}

func checkSampler(s *dla.PerimeterSampler, n int) {
	xs := make([]float64, n)
	ys := make([]float64, n)
	rejected := 0
	for i := 0; i < n; i++ {
		xs[i], ys[i] = s.SampleUnit()
		rejected += s.Rejections()
	}
	u, err := stats.AngularUniformity(xs, ys, 16)
	if err != nil {
		log.Printf("sampler check: %v", err)
		return
	}
	fmt.Printf("sampler: %d samples, %.3f rejections/sample, chi2=%.2f p=%.3f\n",
		n, float64(rejected)/float64(n), u.ChiSq, u.PValue)
}

func printParams(snap core.ParameterSnapshot) {
	for _, group := range snap.Groups {
		fmt.Printf("[%s]\n", group.Name)
		for _, p := range group.Params {
			fmt.Printf("  %-20s %s\n", p.Label, p.Value)
		}
	}
}
