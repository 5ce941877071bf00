package sim

import (
	"context"
	"fmt"
)

// runSequential executes one trial per seed on the calling goroutine
// and sums the counters. Trials are short and pure-computational, so
// cancellation is cooperative at trial boundaries only.
func runSequential(ctx context.Context, cfg *Config, demand, traffic DistributionTable, seeds []uint32, startingStock uint64) (TrialCounters, error) {
	runner := newTrialRunner(cfg, demand, traffic, make([]uint64, cfg.LeadTime))
	var total TrialCounters
	for i, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return TrialCounters{}, fmt.Errorf("run cancelled before trial %d: %w", i, err)
		}
		counters, err := runner.run(seed, startingStock)
		if err != nil {
			return TrialCounters{}, fmt.Errorf("trial %d: %w", i, err)
		}
		total.add(counters)
	}
	return total, nil
}
