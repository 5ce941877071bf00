package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneBounds(t *testing.T) {
	tests := []struct {
		name   string
		trials int
		lanes  int
		want   []laneBound
	}{
		{
			name:   "even split",
			trials: 9,
			lanes:  3,
			want:   []laneBound{{0, 3}, {3, 6}, {6, 9}},
		},
		{
			name:   "remainder spread over leading lanes",
			trials: 10,
			lanes:  3,
			want:   []laneBound{{0, 4}, {4, 7}, {7, 10}},
		},
		{
			name:   "single lane",
			trials: 5,
			lanes:  1,
			want:   []laneBound{{0, 5}},
		},
		{
			name:   "more lanes than trials",
			trials: 2,
			lanes:  4,
			want:   []laneBound{{0, 1}, {1, 2}, {2, 2}, {2, 2}},
		},
		{
			name:   "zero trials",
			trials: 0,
			lanes:  2,
			want:   []laneBound{{0, 0}, {0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := laneBounds(tt.trials, tt.lanes)
			assert.Equal(t, tt.want, got)

			// Chunks must cover [0, trials) contiguously.
			prev := 0
			for _, b := range got {
				require.Equal(t, prev, b.start)
				require.LessOrEqual(t, b.start, b.end)
				prev = b.end
			}
			require.Equal(t, tt.trials, prev)
		})
	}
}

func TestRunBatched_MatchesSequential(t *testing.T) {
	// Given the identical per-trial seed assignment, the batched
	// reduction must be value-for-value equal to the sequential sum.
	cfg := (Config{SafetyStock: 6, LeadTime: 3, OrderQuantity: 4, Seed: 21}).withDefaults()
	demand, traffic := buildTestTables(t, cfg)
	seeds := TrialSeeds(NewSimulationKey(cfg.Seed), 200)

	sequential, err := runSequential(context.Background(), &cfg, demand, traffic, seeds, 25)
	require.NoError(t, err)

	for _, lanes := range []int{1, 2, 7, 64, 200} {
		batched, err := runBatched(context.Background(), &cfg, demand, traffic, seeds, 25, lanes)
		require.NoError(t, err)
		assert.Equal(t, sequential, batched, "lanes=%d", lanes)
	}
}

func TestRunBatched_LeadTimeBoundRejectedBeforeDispatch(t *testing.T) {
	// Lanes carry statically sized truck scratch; a lead time above the
	// bound is a configuration error, not a buffer overrun. Sequential
	// mode has no such bound.
	cfg := (Config{SafetyStock: 6, LeadTime: MaxLaneTruckSlots + 1, OrderQuantity: 4}).withDefaults()
	demand, traffic := buildTestTables(t, cfg)
	seeds := TrialSeeds(NewSimulationKey(1), 10)

	_, err := runBatched(context.Background(), &cfg, demand, traffic, seeds, 25, 2)
	require.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = runSequential(context.Background(), &cfg, demand, traffic, seeds, 25)
	require.NoError(t, err)
}

func TestRunBatched_LeadTimeAtBoundAccepted(t *testing.T) {
	cfg := (Config{SafetyStock: 6, LeadTime: MaxLaneTruckSlots, OrderQuantity: 4}).withDefaults()
	demand, traffic := buildTestTables(t, cfg)
	seeds := TrialSeeds(NewSimulationKey(1), 20)

	sequential, err := runSequential(context.Background(), &cfg, demand, traffic, seeds, 25)
	require.NoError(t, err)
	batched, err := runBatched(context.Background(), &cfg, demand, traffic, seeds, 25, 4)
	require.NoError(t, err)
	assert.Equal(t, sequential, batched)
}

func TestRunBatched_InvalidLaneCount(t *testing.T) {
	cfg := (Config{SafetyStock: 6, LeadTime: 3, OrderQuantity: 4}).withDefaults()
	demand, traffic := buildTestTables(t, cfg)

	_, err := runBatched(context.Background(), &cfg, demand, traffic, nil, 25, 0)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestRunBatched_CancelledBeforeTrials(t *testing.T) {
	cfg := (Config{SafetyStock: 6, LeadTime: 3, OrderQuantity: 4}).withDefaults()
	demand, traffic := buildTestTables(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runBatched(ctx, &cfg, demand, traffic,
		TrialSeeds(NewSimulationKey(1), 50), 25, 4)
	require.ErrorIs(t, err, context.Canceled)
}
