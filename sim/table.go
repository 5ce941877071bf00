package sim

import (
	"fmt"
	"math/rand"
)

// zipfElements is the support size of the Zipf distributions: demand
// and traffic values always fall in [1, zipfElements].
const zipfElements = 1000

// DefaultTableSize is the number of pre-drawn samples per distribution
// table. Larger tables approximate the Zipf law more closely at the
// cost of memory; 64Ki keeps the modulo bias of a 32-bit draw below
// measurement noise.
const DefaultTableSize = 1 << 16

// DistributionTable is an immutable sequence of pre-drawn samples from
// a heavy-tailed discrete distribution. Sampling at run time reduces to
// one generator step and one table lookup, so trials never pay the
// cost of exact Zipf inversion.
//
// Tables are built once at configure time and shared read-only by all
// trials and lanes of a Simulator; they are never mutated afterwards
// and never process-global, so independently configured simulators
// coexist safely.
type DistributionTable []uint32

// BuildZipfTable pre-draws size samples from Zipf(shape) over
// [1, zipfElements]. The shape must exceed 1 and size must be positive;
// both are configuration errors otherwise.
func BuildZipfTable(shape float64, size int, rng *rand.Rand) (DistributionTable, error) {
	if shape <= 1 {
		return nil, fmt.Errorf("%w: zipf shape %v must be > 1", ErrInvalidConfiguration, shape)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: distribution table size %d must be > 0", ErrInvalidConfiguration, size)
	}
	// rand.Zipf draws k in [0, imax] with P(k) ∝ (1+k)^-shape; shifting
	// by one yields the classic Zipf support [1, zipfElements].
	z := rand.NewZipf(rng, shape, 1, zipfElements-1)
	table := make(DistributionTable, size)
	for i := range table {
		table[i] = uint32(z.Uint64()) + 1
	}
	return table, nil
}

// Sample consumes exactly one generator step and returns the table
// entry at the modulo-reduced index. The returned value is always an
// element of the table.
func (t DistributionTable) Sample(g *Xorshift32) uint64 {
	return uint64(t[g.Next()%uint32(len(t))])
}
