package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	sim "github.com/inventory-sim/inventory-sim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_FlagDefaults(t *testing.T) {
	// GIVEN the run subcommand's registered flags
	tests := []struct {
		flag string
		want string
	}{
		{"seed", "42"},
		{"log", "error"},
		{"safety-stock", "10"},
		{"lead-time", "3"},
		{"order-quantity", "7"},
		{"demand-shape", "2.75"},
		{"traffic-shape", "4"},
		{"horizon", "365"},
		{"trials", "10000"},
		{"mode", "sequential"},
		{"lanes", "0"},
	}

	for _, tt := range tests {
		f := runCmd.Flags().Lookup(tt.flag)
		require.NotNil(t, f, "flag --%s not registered", tt.flag)
		assert.Equal(t, tt.want, f.DefValue, "flag --%s default", tt.flag)
	}
}

func TestResultPrint_CountersOnStdout(t *testing.T) {
	// GIVEN an aggregate result from a small run
	s, err := sim.NewSimulator(sim.Config{
		SafetyStock:   2,
		LeadTime:      3,
		OrderQuantity: 2,
		TableSize:     1 << 10,
		Seed:          1,
	})
	require.NoError(t, err)
	result, err := s.Run(context.Background(), sim.RunSpec{StartingStock: 10, Trials: 20})
	require.NoError(t, err)

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// WHEN the result is printed
	result.Print(time.Second)

	// Restore stdout and read captured output
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	// THEN the counters and rates MUST appear on stdout
	assert.Contains(t, output, "Simulation Results")
	assert.Contains(t, output, "Successful Transactions")
	assert.Contains(t, output, "Transaction Fill Rate")
}
