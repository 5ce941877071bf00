package sim

// trialRunner executes single trials of the day-loop state machine. It
// owns a truck buffer and a generator exclusively; the config and the
// distribution tables it references are shared read-only. A runner is
// reused across the trials of one lane or one sequential run, resetting
// its scratch state at each trial start.
type trialRunner struct {
	cfg     *Config
	demand  DistributionTable // per-customer purchase quantity
	traffic DistributionTable // customers per day
	trucks  []uint64          // circular pending-delivery buffer, len == cfg.LeadTime
	gen     Xorshift32
}

// newTrialRunner wires a runner over caller-provided truck scratch.
// scratch must have length cfg.LeadTime; lanes pass a slice of their
// statically sized arrays so no allocation happens inside lane loops.
func newTrialRunner(cfg *Config, demand, traffic DistributionTable, scratch []uint64) *trialRunner {
	return &trialRunner{
		cfg:     cfg,
		demand:  demand,
		traffic: traffic,
		trucks:  scratch,
	}
}

// run executes one full trial from a fresh non-zero seed and returns
// its finished counters.
//
// Per day: the truck slot day%leadTime delivers and is consumed, the
// day's customers are served sequentially (sequential draws keep the
// generator stream deterministic per trial), and the end-of-day reorder
// check schedules ceil(shortfall/orderQuantity) order multiples for
// arrival exactly leadTime days out. The arrival slot
// (day+leadTime)%leadTime equals day%leadTime, the slot consumed this
// morning, so the written quantity is next read exactly leadTime days
// from now.
func (r *trialRunner) run(seed uint32, startingStock uint64) (TrialCounters, error) {
	if seed == 0 {
		return TrialCounters{}, ErrDegenerateSeed
	}
	r.gen.state = seed
	for i := range r.trucks {
		r.trucks[i] = 0
	}

	var c TrialCounters
	stock := startingStock
	leadTime := r.cfg.LeadTime
	for day := 0; day < r.cfg.Horizon; day++ {
		slot := day % leadTime
		stock += r.trucks[slot]
		r.trucks[slot] = 0

		customers := r.traffic.Sample(&r.gen)
		for n := uint64(0); n < customers; n++ {
			request := r.demand.Sample(&r.gen)
			if stock >= request {
				c.SuccessfulTransactions++
				c.SuccessfulSales += request
				stock -= request
			} else {
				c.FailedTransactions++
				c.FailedSales += request
			}
		}

		if stock < r.cfg.SafetyStock {
			shortfall := r.cfg.SafetyStock - stock
			orders := (shortfall + r.cfg.OrderQuantity - 1) / r.cfg.OrderQuantity
			r.trucks[slot] = orders * r.cfg.OrderQuantity
		}
	}
	return c, nil
}
