package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// MaxLaneTruckSlots bounds the per-lane truck buffer in batched mode.
// Each lane carries its scratch in a statically sized array so the hot
// loop never allocates; a lead time above this bound is rejected before
// any lane is dispatched. Sequential mode has no such bound.
const MaxLaneTruckSlots = 10

// laneBound is the half-open trial index range [start, end) owned by
// one lane.
type laneBound struct {
	start, end int
}

// laneBounds partitions trials into contiguous chunks of trials/lanes
// each; the first trials%lanes lanes take one extra trial. Lanes beyond
// the trial count come back empty. The partition is deterministic, and
// contiguity preserves the sequential per-trial seed assignment.
func laneBounds(trials, lanes int) []laneBound {
	bounds := make([]laneBound, lanes)
	chunk := trials / lanes
	extra := trials % lanes
	start := 0
	for i := range bounds {
		size := chunk
		if i < extra {
			size++
		}
		bounds[i] = laneBound{start: start, end: start + size}
		start += size
	}
	return bounds
}

// runBatched fans the seed slice out over lanes that share no mutable
// state: each lane owns its seeds, its scratch array and its partial
// counters, so no locks are needed. The host blocks until every lane
// finishes and then reduces single-threaded; no partial result is
// observable before the whole batch completes.
func runBatched(ctx context.Context, cfg *Config, demand, traffic DistributionTable, seeds []uint32, startingStock uint64, lanes int) (TrialCounters, error) {
	if cfg.LeadTime > MaxLaneTruckSlots {
		return TrialCounters{}, fmt.Errorf("%w: lead time %d exceeds the per-lane truck buffer bound %d in batched mode",
			ErrInvalidConfiguration, cfg.LeadTime, MaxLaneTruckSlots)
	}
	if lanes < 1 {
		return TrialCounters{}, fmt.Errorf("%w: lane count %d must be >= 1", ErrInvalidConfiguration, lanes)
	}

	bounds := laneBounds(len(seeds), lanes)
	logrus.Debugf("dispatching %d trials over %d lanes (chunk %d, remainder %d)",
		len(seeds), lanes, len(seeds)/lanes, len(seeds)%lanes)

	partials := make([]TrialCounters, lanes)
	errs := make([]error, lanes)
	var wg sync.WaitGroup
	for lane, b := range bounds {
		wg.Add(1)
		go func(lane int, b laneBound) {
			defer wg.Done()
			var scratch [MaxLaneTruckSlots]uint64
			runner := newTrialRunner(cfg, demand, traffic, scratch[:cfg.LeadTime])
			var total TrialCounters
			for i := b.start; i < b.end; i++ {
				if err := ctx.Err(); err != nil {
					errs[lane] = fmt.Errorf("lane %d cancelled before trial %d: %w", lane, i, err)
					return
				}
				counters, err := runner.run(seeds[i], startingStock)
				if err != nil {
					errs[lane] = fmt.Errorf("lane %d trial %d: %w", lane, i, err)
					return
				}
				total.add(counters)
			}
			partials[lane] = total
		}(lane, b)
	}
	wg.Wait()

	var total TrialCounters
	for lane := range partials {
		if errs[lane] != nil {
			return TrialCounters{}, errs[lane]
		}
		total.add(partials[lane])
	}
	return total, nil
}
