//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"arctic-room/internal/app"
	"arctic-room/internal/room"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	viewCfg := app.NewConfig()
	viewCfg.Bind(flag.CommandLine)
	roomCfg := room.DefaultConfig()
	roomCfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "JSON room config (overrides room flags)")
	flag.Parse()

	if *configPath != "" {
		loaded, err := room.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		roomCfg = loaded
	}

	sim, err := room.NewSim(roomCfg)
	if err != nil {
		log.Fatalf("room: %v", err)
	}

	game := app.New(sim, viewCfg.Scale, sim.Session().Seed(), viewCfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("arctic-room | %s N=%d", roomCfg.Pattern, roomCfg.N))
	ebiten.SetTPS(viewCfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
