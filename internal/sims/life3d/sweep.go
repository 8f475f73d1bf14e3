package life3d

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SweepResult summarises one seeded run.
type SweepResult struct {
	Seed int64

	Initial int
	Final   int
	Peak    int
	PeakGen int

	// ExtinctAt is the generation the population first reached zero, or -1.
	ExtinctAt int
	Steps     int
}

// Run simulates cfg for up to steps generations and summarises the
// population curve. It stops early on extinction or context cancellation.
func Run(ctx context.Context, cfg Config, steps int) (SweepResult, error) {
	w := NewWithConfig(cfg)
	w.Reset(0)

	res := SweepResult{
		Seed:      w.cfg.Seed,
		Initial:   w.Population(),
		Peak:      w.Population(),
		ExtinctAt: -1,
	}
	if res.Initial == 0 {
		res.ExtinctAt = 0
	}
	for i := 0; i < steps && res.ExtinctAt < 0; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		w.Step()
		res.Steps = w.Generation()
		pop := w.Population()
		if pop > res.Peak {
			res.Peak = pop
			res.PeakGen = w.Generation()
		}
		if pop == 0 {
			res.ExtinctAt = w.Generation()
		}
	}
	res.Final = w.Population()
	return res, nil
}

// Sweep runs base once per seed on at most workers goroutines. Results keep
// the order of seeds. Each run owns its World, so runs never share state.
func Sweep(ctx context.Context, base Config, seeds []int64, steps, workers int) ([]SweepResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]SweepResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			cfg := base
			cfg.Seed = seed
			cfg.Cells = nil
			res, err := Run(ctx, cfg, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
