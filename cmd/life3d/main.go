//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"conway-3d/internal/app"
	"conway-3d/internal/buildinfo"
	"conway-3d/internal/sims/life3d"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Version {
		fmt.Println(buildinfo.Long("life3d"))
		return
	}

	simCfg, err := cfg.Sim()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	world := life3d.NewWithConfig(simCfg)
	world.Reset(0)

	game := app.New(world, cfg.Scale, cfg.HUDWidth, cfg.SavePath)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("conway-3d — %s (%s)", world.Name(), buildinfo.Short()))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
