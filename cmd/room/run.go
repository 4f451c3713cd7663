package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"arctic-room/internal/monitoring"
	"arctic-room/internal/render"
	"arctic-room/internal/room"
)

const roomFile = "room.bin"

type options struct {
	Results        string
	Generate       bool
	Hex            bool
	Checkpoints    bool
	Theme          string
	Dark           bool
	FloorsAndWalls bool
	HexScale       float64
}

func defaultOptions() options {
	return options{
		Results:        "results",
		Generate:       true,
		Hex:            true,
		Checkpoints:    true,
		Theme:          render.DefaultTheme,
		FloorsAndWalls: true,
		HexScale:       24,
	}
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Results, "results", o.Results, "output directory")
	fs.BoolVar(&o.Generate, "generate", o.Generate, "generate the room (forced when no saved room exists)")
	fs.BoolVar(&o.Hex, "hex", o.Hex, "render the saved room as an isometric hex")
	fs.BoolVar(&o.Checkpoints, "checkpoints", o.Checkpoints, "write room_iterx_*.png snapshots")
	fs.StringVar(&o.Theme, "theme", o.Theme, fmt.Sprintf("hex colour theme %v", render.Themes()))
	fs.BoolVar(&o.Dark, "dark", o.Dark, "dark hex background")
	fs.BoolVar(&o.FloorsAndWalls, "floors", o.FloorsAndWalls, "draw the floor and walls of the hex")
	fs.Float64Var(&o.HexScale, "hex-scale", o.HexScale, "hex pixels per half lozenge")
}

func run(ctx context.Context, w io.Writer, cfg room.Config, opts options) error {
	removed, err := render.PrepareResultsDir(opts.Results)
	if err != nil {
		return err
	}
	if removed > 0 {
		monitoring.Logf("removed %d stale checkpoint images from %s", removed, opts.Results)
	}

	roomPath := filepath.Join(opts.Results, roomFile)
	if !opts.Generate {
		if _, err := os.Stat(roomPath); errors.Is(err, os.ErrNotExist) {
			monitoring.Logf("%s not found, generating", roomPath)
			opts.Generate = true
		}
	}
	printParameters(w, cfg, opts)

	if opts.Generate {
		if err := generate(ctx, w, cfg, opts, roomPath); err != nil {
			return err
		}
	}
	if opts.Hex {
		if err := renderHex(w, cfg, opts, roomPath); err != nil {
			return err
		}
	}
	return nil
}

func generate(ctx context.Context, w io.Writer, cfg room.Config, opts options, roomPath string) error {
	s, err := room.NewSession(cfg)
	if err != nil {
		return err
	}
	budget := s.Budget()
	progress := monitoring.NewProgress(w, "Room", budget.Total, nil)
	every := gcd(cfg.LogEvery, cfg.CheckpointEvery)
	heights := render.HeightPalette(room.HeightRamp())

	observe := func(snap room.Snapshot) error {
		i := snap.Iteration
		final := i == budget.Total
		if i == 0 || final || (cfg.LogEvery > 0 && i%cfg.LogEvery == 0) {
			progress.Update(i)
		}
		if !opts.Checkpoints {
			return nil
		}
		if i == 0 || final || (cfg.CheckpointEvery > 0 && i%cfg.CheckpointEvery == 0) {
			frame := render.Frame{
				N:         cfg.N,
				Heights:   snap.Field.Cells(),
				Addable:   snap.Addable.Cells(),
				Removable: snap.Removable.Cells(),
				Title:     snap.Headline(progress.Elapsed()),
			}
			if _, err := render.SaveCheckpoint(opts.Results, i, budget.Total, frame, heights); err != nil {
				return err
			}
		}
		return nil
	}
	if err := s.Run(ctx, every, observe); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	final := s.Snapshot()
	if err := room.SaveField(roomPath, final.Field); err != nil {
		return err
	}
	progress.Summary("Fitness", room.Measure(final.Field).String())
	monitoring.Logf("seed %d, room saved to %s", s.Seed(), roomPath)
	return nil
}

func renderHex(w io.Writer, cfg room.Config, opts options, roomPath string) error {
	field, err := room.LoadField(roomPath)
	if err != nil {
		return err
	}
	theme, err := render.ThemeByName(opts.Theme)
	if err != nil {
		return err
	}
	progress := monitoring.NewProgress(w, "Hex", field.N(), nil)
	progress.Update(0)
	img, err := render.RenderHex(field, render.HexOptions{
		Theme:          theme,
		Scale:          opts.HexScale,
		FloorsAndWalls: opts.FloorsAndWalls,
		Dark:           opts.Dark,
		Progress:       func(done, _ int) { progress.Update(done) },
	})
	if err != nil {
		return err
	}
	name := render.HexFilename(field.N(), string(cfg.Pattern), cfg.Budget().Flips, opts.FloorsAndWalls, opts.Theme)
	return render.WritePNG(filepath.Join(opts.Results, name), img)
}

func printParameters(w io.Writer, cfg room.Config, opts options) {
	b := cfg.Budget()
	params := map[string]string{
		"n":                fmt.Sprint(cfg.N),
		"pattern":          string(cfg.Pattern),
		"flips":            fmt.Sprint(b.Flips),
		"warmup":           fmt.Sprint(b.Warmup),
		"total":            fmt.Sprint(b.Total),
		"use_seed":         fmt.Sprint(cfg.UseSeed),
		"seed":             fmt.Sprint(cfg.Seed),
		"checkpoint_every": fmt.Sprint(cfg.CheckpointEvery),
		"log_every":        fmt.Sprint(cfg.LogEvery),
		"results":          opts.Results,
		"generate":         fmt.Sprint(opts.Generate),
		"hex":              fmt.Sprint(opts.Hex),
		"theme":            opts.Theme,
		"dark":             fmt.Sprint(opts.Dark),
		"floors":           fmt.Sprint(opts.FloorsAndWalls),
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, params[k])
	}
	fmt.Fprintln(w, strings.Repeat("-", 64))
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
