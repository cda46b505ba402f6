// sdrpack — Strip Discretization and Rasterized packing
//
// A command-line tool that reads a JSON strip-packing instance (items plus
// a fixed strip height) and writes the packed placements as JSON.
//
// Build:
//
//	go build -o sdrpack ./cmd/sdrpack
//
// Usage:
//
//	sdrpack -in instance.json -out result.json -resolution 1.0
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/piwi3910/sdrpack/internal/engine"
	"github.com/piwi3910/sdrpack/internal/instance"
	"github.com/piwi3910/sdrpack/internal/model"
	"github.com/piwi3910/sdrpack/internal/telemetry"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sdrpack", flag.ContinueOnError)
	inPath := fs.String("in", "", "path to a JSON instance file (default: stdin)")
	outPath := fs.String("out", "", "path to write the JSON result to (default: stdout)")
	resolution := fs.Float64("resolution", 1.0, "column width used for discretization")
	centerPolygons := fs.Bool("center", false, "rotate polygons about their centroid instead of a vertex")
	maxStripWidth := fs.Float64("max-width", 0, "cap on strip width growth; 0 means unbounded")
	verbose := fs.Bool("verbose", false, "log placement and strip-growth events")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		telemetry.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	in := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			return fmt.Errorf("sdrpack: open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	inst, err := instance.Load(in)
	if err != nil {
		return fmt.Errorf("sdrpack: load instance: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.Resolution = *resolution
	cfg.CenterPolygons = *centerPolygons
	cfg.MaxStripWidth = *maxStripWidth

	opt := engine.New(cfg)
	result, err := opt.Optimize(inst.Items, inst.StripHeight)
	if err != nil {
		return fmt.Errorf("sdrpack: optimize: %w", err)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("sdrpack: open output: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("sdrpack: write result: %w", err)
	}
	return nil
}
