package predictor

import (
	"sort"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// Alternative-set strategy names, in the order the sets are produced.
const (
	StrategyConservative = "conservative"
	StrategyAggressive   = "aggressive"
	StrategyBalanced     = "balanced"
)

const (
	// topCandidatePool is how many top-scored numbers feed the conservative
	// and balanced pools.
	topCandidatePool = 20
	// conservativeMinFreq filters the conservative pool to well-established
	// numbers by all-time weighted frequency.
	conservativeMinFreq = 10.0
	// aggressivePoolCap bounds the due-then-cold aggressive pool.
	aggressivePoolCap = 15
)

// Alternatives produces up to 3 additional candidate sets from the scored
// ranking, each under a named strategy:
//
//	conservative — top-20 candidates with all-time weighted frequency > 10
//	aggressive   — due numbers then cold numbers, capped to 15 (ignores the
//	               top-20 pool entirely)
//	balanced     — the unfiltered top-20 pool
//
// Each strategy samples 6 numbers uniformly without replacement from its
// pool; a pool smaller than 6 yields no set for that slot, so fewer than 3
// sets may come back. Every returned set is sorted ascending.
func Alternatives(ranked []int, snap *analysis.Snapshot, rng RandomSource) []models.AlternativeSet {
	top := ranked
	if len(top) > topCandidatePool {
		top = top[:topCandidatePool]
	}

	var conservative []int
	for _, n := range top {
		if snap.AllTimeFreq[n] > conservativeMinFreq {
			conservative = append(conservative, n)
		}
	}

	// a number can be both due and cold; keep its first occurrence only
	var aggressive []int
	inAggressive := make(map[int]bool)
	for _, n := range append(append([]int(nil), snap.Due...), snap.Cold...) {
		if !inAggressive[n] {
			inAggressive[n] = true
			aggressive = append(aggressive, n)
		}
	}
	if len(aggressive) > aggressivePoolCap {
		aggressive = aggressive[:aggressivePoolCap]
	}

	pools := []struct {
		strategy string
		pool     []int
	}{
		{StrategyConservative, conservative},
		{StrategyAggressive, aggressive},
		{StrategyBalanced, top},
	}

	var alts []models.AlternativeSet
	for _, p := range pools {
		set := sampleUniform(p.pool, models.MainNumbers, rng)
		if set == nil {
			continue
		}
		sort.Ints(set)
		alts = append(alts, models.AlternativeSet{Strategy: p.strategy, Numbers: set})
	}
	return alts
}

// sampleUniform draws count numbers uniformly without replacement, or nil
// when the pool is too small.
func sampleUniform(pool []int, count int, rng RandomSource) []int {
	if len(pool) < count {
		return nil
	}
	remaining := append([]int(nil), pool...)
	picked := make([]int, 0, count)
	for len(picked) < count {
		idx := int(rng.Float64() * float64(len(remaining)))
		if idx >= len(remaining) {
			idx = len(remaining) - 1
		}
		picked = append(picked, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picked
}
