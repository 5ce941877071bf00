package sim

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Mode selects how a run schedules its trials.
type Mode string

const (
	// ModeSequential runs trials one after another on the calling
	// goroutine.
	ModeSequential Mode = "sequential"

	// ModeBatched fans trials out over fixed, lock-free lanes and
	// reduces their partial counters; lead time is bounded by
	// MaxLaneTruckSlots in this mode.
	ModeBatched Mode = "batched"
)

// Simulator is a configured simulation instance: a validated Config
// plus the two distribution tables pre-drawn from it. A Simulator is
// immutable after construction and safe for concurrent Runs; multiple
// independently configured simulators coexist because the tables are
// owned per instance, never process-global.
type Simulator struct {
	cfg     Config
	key     SimulationKey
	demand  DistributionTable
	traffic DistributionTable
}

// NewSimulator validates cfg (after defaulting) and builds the demand
// and traffic tables. Table construction draws from a math/rand stream
// derived from the master seed, so equal configs yield equal tables.
func NewSimulator(cfg Config) (*Simulator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := NewSimulationKey(cfg.Seed)
	tableRNG := rand.New(rand.NewSource(subsystemSeed(key, subsystemTables)))
	demand, err := BuildZipfTable(cfg.DemandShape, cfg.TableSize, tableRNG)
	if err != nil {
		return nil, fmt.Errorf("demand table: %w", err)
	}
	traffic, err := BuildZipfTable(cfg.TrafficShape, cfg.TableSize, tableRNG)
	if err != nil {
		return nil, fmt.Errorf("traffic table: %w", err)
	}

	logrus.Debugf("configured simulator: lead_time=%d safety_stock=%d order_quantity=%d shapes=(%.2f, %.2f) table_size=%d",
		cfg.LeadTime, cfg.SafetyStock, cfg.OrderQuantity, cfg.DemandShape, cfg.TrafficShape, cfg.TableSize)

	return &Simulator{cfg: cfg, key: key, demand: demand, traffic: traffic}, nil
}

// Config returns the effective (defaulted) configuration.
func (s *Simulator) Config() Config {
	return s.cfg
}

// RunSpec describes one run request against a configured Simulator.
type RunSpec struct {
	StartingStock uint64
	Trials        int  // >= 0; zero trials produce empty counters
	Mode          Mode // defaults to ModeSequential
	Lanes         int  // batched mode lane count; 0 = GOMAXPROCS
}

// Run executes spec.Trials independent trials and returns their summed
// counters. Both modes consume the identical per-trial seed assignment
// derived from the simulator's master seed, so, trial for trial, the
// batched result equals the sequential one. Validation failures are
// reported before any trial work is dispatched; a run either completes
// fully or fails atomically.
func (s *Simulator) Run(ctx context.Context, spec RunSpec) (*AggregateResult, error) {
	if spec.Trials < 0 {
		return nil, fmt.Errorf("%w: trial count %d must be >= 0", ErrInvalidConfiguration, spec.Trials)
	}
	mode := spec.Mode
	if mode == "" {
		mode = ModeSequential
	}

	seeds := TrialSeeds(s.key, spec.Trials)

	var total TrialCounters
	var err error
	switch mode {
	case ModeSequential:
		total, err = runSequential(ctx, &s.cfg, s.demand, s.traffic, seeds, spec.StartingStock)
	case ModeBatched:
		lanes := spec.Lanes
		if lanes == 0 {
			lanes = runtime.GOMAXPROCS(0)
		}
		if lanes > spec.Trials && spec.Trials > 0 {
			lanes = spec.Trials
		}
		if spec.Trials == 0 {
			lanes = 1
		}
		total, err = runBatched(ctx, &s.cfg, s.demand, s.traffic, seeds, spec.StartingStock, lanes)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfiguration, mode)
	}
	if err != nil {
		return nil, err
	}
	return &AggregateResult{TrialCounters: total, Trials: spec.Trials}, nil
}
