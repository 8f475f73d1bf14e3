package life3d

import (
	"context"
	"errors"
	"testing"

	"conway-3d/pkg/voxel"
)

func TestRunSummarisesPopulation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 10
	cfg.Cells = []voxel.Coord{{X: 5, Y: 5, Z: 5}}

	res, err := Run(context.Background(), cfg, 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Initial != 1 || res.Final != 0 {
		t.Fatalf("unexpected populations %+v", res)
	}
	if res.ExtinctAt != 1 || res.Steps != 1 {
		t.Fatalf("isolated cell should go extinct after one step, got %+v", res)
	}
}

func TestSweepMatchesSequentialRuns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 8
	seeds := []int64{1, 2, 3, 4, 5}

	results, err := Sweep(context.Background(), cfg, seeds, 6, 3)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(results) != len(seeds) {
		t.Fatalf("got %d results, want %d", len(results), len(seeds))
	}
	for i, seed := range seeds {
		c := cfg
		c.Seed = seed
		want, err := Run(context.Background(), c, 6)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if results[i] != want {
			t.Fatalf("seed %d: sweep %+v, sequential %+v", seed, results[i], want)
		}
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, DefaultConfig(), []int64{1, 2}, 5, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
