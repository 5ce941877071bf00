// Package sim provides the core Monte Carlo engine for single-item
// inventory simulation under stochastic demand.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - trial.go: the 365-day single-trial state machine (stock, truck buffer, reorders)
//   - table.go: precomputed Zipf distribution tables and modulo-indexed sampling
//   - simulator.go: the configure/run surface tying tables, trials and modes together
//
// # Architecture
//
// A Simulator is configured once (validation + distribution table
// construction) and can then execute any number of runs. A run executes
// trialCount independent trials, either sequentially on the calling
// goroutine (batch.go) or fanned out over fixed lanes that share no
// mutable state (lanes.go). Both modes consume the same per-trial seed
// assignment derived in rng.go, so their aggregate results are
// value-for-value identical given the same master seed.
//
// Trials draw all randomness from a per-trial Xorshift32 stream; the
// distribution tables and the configuration are shared read-only across
// trials and lanes.
package sim
