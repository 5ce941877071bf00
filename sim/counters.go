package sim

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// TrialCounters accumulates the four outcome counters of one trial over
// its full horizon. Counters are uint64 so that sale sums cannot
// overflow even for extreme table contents and long horizons.
type TrialCounters struct {
	SuccessfulTransactions uint64 // customers served in full
	SuccessfulSales        uint64 // units sold
	FailedTransactions     uint64 // customers turned away
	FailedSales            uint64 // units of demand lost
}

// add accumulates another trial's counters element-wise.
func (c *TrialCounters) add(o TrialCounters) {
	c.SuccessfulTransactions += o.SuccessfulTransactions
	c.SuccessfulSales += o.SuccessfulSales
	c.FailedTransactions += o.FailedTransactions
	c.FailedSales += o.FailedSales
}

// AggregateResult is the element-wise sum of TrialCounters across all
// trials of a run. The two fill rates are derived on demand and are
// fallible: a zero denominator reports ErrDivisionUndefined instead of
// propagating NaN.
type AggregateResult struct {
	TrialCounters
	Trials int // number of trials summed in
}

// TransactionFillRate returns the fraction of transactions satisfied
// from stock.
func (r *AggregateResult) TransactionFillRate() (float64, error) {
	total := r.SuccessfulTransactions + r.FailedTransactions
	if total == 0 {
		return 0, fmt.Errorf("%w: no transactions recorded over %d trials", ErrDivisionUndefined, r.Trials)
	}
	return float64(r.SuccessfulTransactions) / float64(total), nil
}

// SalesFillRate returns the fraction of demanded units satisfied from
// stock.
func (r *AggregateResult) SalesFillRate() (float64, error) {
	total := r.SuccessfulSales + r.FailedSales
	if total == 0 {
		return 0, fmt.Errorf("%w: no sales volume recorded over %d trials", ErrDivisionUndefined, r.Trials)
	}
	return float64(r.SuccessfulSales) / float64(total), nil
}

// TransactionFillRateInterval returns a Wilson score interval for the
// transaction fill rate at the given confidence level, treating each
// transaction as an independent Bernoulli outcome.
func (r *AggregateResult) TransactionFillRateInterval(confidence float64) (lo, hi float64, err error) {
	p, err := r.TransactionFillRate()
	if err != nil {
		return 0, 0, err
	}
	n := float64(r.SuccessfulTransactions + r.FailedTransactions)
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - (1-confidence)/2)
	z2 := z * z
	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	half := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom
	return center - half, center + half, nil
}

// Print displays the aggregated counters and derived rates at the end
// of a run.
func (r *AggregateResult) Print(elapsed time.Duration) {
	fmt.Println("=== Simulation Results ===")
	fmt.Printf("Trials                   : %d\n", r.Trials)
	fmt.Printf("Successful Transactions  : %d\n", r.SuccessfulTransactions)
	fmt.Printf("Successful Sales         : %d units\n", r.SuccessfulSales)
	fmt.Printf("Failed Transactions      : %d\n", r.FailedTransactions)
	fmt.Printf("Failed Sales             : %d units\n", r.FailedSales)
	if tfr, err := r.TransactionFillRate(); err == nil {
		fmt.Printf("Transaction Fill Rate    : %.4f\n", tfr)
		if lo, hi, err := r.TransactionFillRateInterval(0.95); err == nil {
			fmt.Printf("  95%% Wilson interval    : [%.4f, %.4f]\n", lo, hi)
		}
	}
	if sfr, err := r.SalesFillRate(); err == nil {
		fmt.Printf("Sales Fill Rate          : %.4f\n", sfr)
	}
	fmt.Printf("Wall Time                : %v\n", elapsed)
}
