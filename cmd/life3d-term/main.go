package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"conway-3d/internal/app"
	"conway-3d/internal/buildinfo"
	"conway-3d/internal/sims/life3d"
	"conway-3d/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindSim(flag.CommandLine)
	flag.Parse()

	if cfg.Version {
		fmt.Println(buildinfo.Long("life3d-term"))
		return
	}

	simCfg, err := cfg.Sim()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	world := life3d.NewWithConfig(simCfg)
	world.Reset(0)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.NewView(screen, world, cfg.SavePath).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
