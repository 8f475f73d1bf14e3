package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"conway-3d/internal/buildinfo"
	"conway-3d/internal/sims/life3d"
	"conway-3d/pkg/core"
	"conway-3d/pkg/voxel"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 100, "generations to simulate per seed")
	runs := flag.Int("runs", 16, "number of seeds to evaluate")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	seed := flag.Int64("seed", 1337, "base seed the per-run seeds are derived from")
	configPath := flag.String("config", "", "YAML file with the base configuration")
	version := flag.Bool("version", false, "print version and exit")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable), e.g. grid_size=24")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Long("life3d-sweep"))
		return
	}

	base := life3d.DefaultConfig()
	if *configPath != "" {
		loaded, err := life3d.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		base = loaded
	}
	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("override %q: want key=value", o)
		}
		kv[parts[0]] = parts[1]
	}
	base = life3d.ApplyOverrides(base, kv)

	rng := core.NewRNG(*seed)
	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := life3d.Sweep(ctx, base, seeds, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	fmt.Printf("grid %d, %d steps, %d runs (seed target %d cells)\n", base.GridSize, *steps, len(results), voxel.TargetCount(base.GridSize))
	fmt.Printf("%-20s %8s %8s %8s %8s %8s\n", "seed", "initial", "final", "peak", "peak@", "extinct")
	extinct := 0
	for _, r := range results {
		ext := "-"
		if r.ExtinctAt >= 0 {
			ext = fmt.Sprint(r.ExtinctAt)
			extinct++
		}
		fmt.Printf("%-20d %8d %8d %8d %8d %8s\n", r.Seed, r.Initial, r.Final, r.Peak, r.PeakGen, ext)
	}
	fmt.Printf("\n%d/%d runs went extinct\n", extinct, len(results))
}
