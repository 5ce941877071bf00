package cmd

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

var (
	// CLI flags for simulator configuration
	seed          int64   // Master seed for table construction and trial streams
	logLevel      string  // Log verbosity level
	safetyStock   uint64  // Reorder trigger threshold (units)
	leadTime      int     // Days between order placement and arrival
	orderQuantity uint64  // Order multiple (units)
	demandShape   float64 // Zipf shape of per-customer purchase quantity
	trafficShape  float64 // Zipf shape of per-day customer count
	tableSize     int     // Pre-drawn samples per distribution table
	horizon       int     // Simulated days per trial

	// CLI flags for the run request
	startingStock uint64 // Stock on hand at day zero
	trials        int    // Number of independent trials
	mode          string // Execution mode (sequential, batched)
	lanes         int    // Lane count in batched mode (0 = GOMAXPROCS)
	scenarioFile  string // Optional YAML scenario overriding the flags above
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "inventory-sim",
	Short: "Monte Carlo simulator for single-item inventory dynamics",
}

// runCmd executes the simulation using parameters from CLI flags or a
// scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the inventory simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			SafetyStock:   safetyStock,
			LeadTime:      leadTime,
			OrderQuantity: orderQuantity,
			DemandShape:   demandShape,
			TrafficShape:  trafficShape,
			TableSize:     tableSize,
			Horizon:       horizon,
			Seed:          seed,
		}
		spec := sim.RunSpec{
			StartingStock: startingStock,
			Trials:        trials,
			Mode:          sim.Mode(mode),
			Lanes:         lanes,
		}
		if scenarioFile != "" {
			scenario, err := sim.LoadScenario(scenarioFile)
			if err != nil {
				logrus.Fatalf("Unable to load scenario: %v", err)
			}
			cfg = scenario.Config()
			spec = scenario.RunSpec()
		}

		logrus.Infof("Starting simulation: %d trials, mode=%s, horizon=%d days, seed=%d",
			spec.Trials, spec.Mode, cfg.Horizon, cfg.Seed)

		simulator, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Configuration rejected: %v", err)
		}

		startTime := time.Now()
		result, err := simulator.Run(context.Background(), spec)
		if err != nil {
			logrus.Fatalf("Run failed: %v", err)
		}
		result.Print(time.Since(startTime))

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for tables and trial streams")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Replenishment policy configs
	runCmd.Flags().Uint64Var(&safetyStock, "safety-stock", 10, "Reorder trigger threshold in units")
	runCmd.Flags().IntVar(&leadTime, "lead-time", 3, "Days between order placement and arrival")
	runCmd.Flags().Uint64Var(&orderQuantity, "order-quantity", 7, "Order multiple in units")

	// Demand process configs
	runCmd.Flags().Float64Var(&demandShape, "demand-shape", sim.DefaultDemandShape, "Zipf shape of per-customer purchase quantity")
	runCmd.Flags().Float64Var(&trafficShape, "traffic-shape", sim.DefaultTrafficShape, "Zipf shape of per-day customer count")
	runCmd.Flags().IntVar(&tableSize, "table-size", sim.DefaultTableSize, "Pre-drawn samples per distribution table")
	runCmd.Flags().IntVar(&horizon, "horizon", sim.DefaultHorizon, "Simulated days per trial")

	// Run request configs
	runCmd.Flags().Uint64Var(&startingStock, "starting-stock", 10, "Stock on hand at day zero")
	runCmd.Flags().IntVar(&trials, "trials", 10000, "Number of independent trials")
	runCmd.Flags().StringVar(&mode, "mode", string(sim.ModeSequential), "Execution mode (sequential, batched)")
	runCmd.Flags().IntVar(&lanes, "lanes", 0, "Lane count in batched mode (0 = GOMAXPROCS)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file overriding the policy and run flags")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
