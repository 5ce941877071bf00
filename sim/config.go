package sim

import "fmt"

// Default shape parameters of the two demand processes, matching the
// classic single-item scenario this engine was built around.
const (
	DefaultDemandShape  = 2.75
	DefaultTrafficShape = 4.0
)

// DefaultHorizon is the simulated horizon in days for one trial.
const DefaultHorizon = 365

// Config groups the replenishment policy and demand-process parameters
// of a Simulator. It is immutable once handed to NewSimulator and is
// shared read-only by every trial and lane.
type Config struct {
	SafetyStock   uint64  // reorder trigger threshold (units)
	LeadTime      int     // days between order placement and arrival (>= 1)
	OrderQuantity uint64  // orders are placed in integer multiples of this (>= 1)
	DemandShape   float64 // Zipf shape of per-customer purchase quantity (> 1, default 2.75)
	TrafficShape  float64 // Zipf shape of per-day customer count (> 1, default 4.0)
	TableSize     int     // pre-drawn samples per distribution table (default 64Ki)
	Horizon       int     // simulated days per trial (default 365)
	Seed          int64   // master seed for table construction and trial streams
}

// withDefaults returns a copy with zero-valued optional fields filled in.
func (c Config) withDefaults() Config {
	if c.DemandShape == 0 {
		c.DemandShape = DefaultDemandShape
	}
	if c.TrafficShape == 0 {
		c.TrafficShape = DefaultTrafficShape
	}
	if c.TableSize == 0 {
		c.TableSize = DefaultTableSize
	}
	if c.Horizon == 0 {
		c.Horizon = DefaultHorizon
	}
	return c
}

// Validate checks the configuration after defaulting. All violations
// report ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.LeadTime < 1 {
		return fmt.Errorf("%w: lead time %d must be >= 1", ErrInvalidConfiguration, c.LeadTime)
	}
	if c.OrderQuantity < 1 {
		return fmt.Errorf("%w: order quantity must be >= 1", ErrInvalidConfiguration)
	}
	if c.DemandShape <= 1 {
		return fmt.Errorf("%w: demand shape %v must be > 1", ErrInvalidConfiguration, c.DemandShape)
	}
	if c.TrafficShape <= 1 {
		return fmt.Errorf("%w: traffic shape %v must be > 1", ErrInvalidConfiguration, c.TrafficShape)
	}
	if c.TableSize <= 0 {
		return fmt.Errorf("%w: table size %d must be > 0", ErrInvalidConfiguration, c.TableSize)
	}
	if c.Horizon < 1 {
		return fmt.Errorf("%w: horizon %d must be >= 1", ErrInvalidConfiguration, c.Horizon)
	}
	return nil
}
