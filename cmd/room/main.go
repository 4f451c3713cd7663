package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"arctic-room/internal/render"
	"arctic-room/internal/room"
)

func main() {
	cfg := room.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	opts := defaultOptions()
	opts.bind(flag.CommandLine)
	configPath := flag.String("config", "", "JSON room config (overrides room flags)")
	flag.Parse()

	if *configPath != "" {
		loaded, err := room.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if opts.Hex {
		if _, err := render.ThemeByName(opts.Theme); err != nil {
			log.Fatalf("invalid theme: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, cfg, opts); err != nil {
		log.Fatalf("room: %v", err)
	}
}
