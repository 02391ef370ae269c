package predictor

import (
	"math"
	"sort"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// bonusPoolSize and bonusPickSize bound the bonus-ball candidate pool: the
// pick is uniform over the top bonusPickSize of the top bonusPoolSize ranked
// bonus numbers.
const (
	bonusPoolSize = 10
	bonusPickSize = 5
)

// SelectNumbers picks 6 distinct numbers biased toward high score, subject
// to the optimal sum range as a soft constraint. Each attempt samples 6
// numbers without replacement, weighting the i-th ranked *remaining*
// candidate by decay^i so higher-ranked candidates dominate while every
// candidate keeps a nonzero chance. Sampling repeats up to attempts times
// until a set's sum lands inside sumRange; exhausting the budget falls back
// to the deterministic top-6 by score. The returned set is always exactly 6
// distinct in-domain numbers, sorted ascending; sum-constraint satisfaction
// is best-effort.
func SelectNumbers(ranked []int, sumRange models.SumRange, attempts int, decay float64, rng RandomSource) []int {
	if attempts < 1 {
		attempts = 1
	}
	if decay <= 0 || decay >= 1 {
		decay = 0.8
	}

	for attempt := 0; attempt < attempts; attempt++ {
		set := sampleByRank(ranked, models.MainNumbers, decay, rng)
		if len(set) < models.MainNumbers {
			break // candidate pool too small for sampling to ever succeed
		}
		sum := 0
		for _, n := range set {
			sum += n
		}
		if sumRange.Contains(sum) {
			sort.Ints(set)
			return set
		}
	}

	// deterministic fallback: top 6 by score, sum constraint ignored
	top := make([]int, 0, models.MainNumbers)
	top = append(top, ranked[:min(models.MainNumbers, len(ranked))]...)
	sort.Ints(top)
	return top
}

// sampleByRank draws count numbers without replacement. The sampling weight
// of a candidate is decay^i where i is its rank position among the
// *remaining* candidates, re-indexed after every pick.
func sampleByRank(ranked []int, count int, decay float64, rng RandomSource) []int {
	remaining := append([]int(nil), ranked...)
	picked := make([]int, 0, count)

	for len(picked) < count && len(remaining) > 0 {
		total := 0.0
		for i := range remaining {
			total += math.Pow(decay, float64(i))
		}

		r := rng.Float64() * total
		idx := len(remaining) - 1
		cum := 0.0
		for i := range remaining {
			cum += math.Pow(decay, float64(i))
			if r < cum {
				idx = i
				break
			}
		}

		picked = append(picked, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picked
}

// SelectUniform is the degenerate fallback for an empty candidate pool: 6
// distinct numbers drawn uniformly from the whole domain. Still driven by
// the injected random source so seeded runs stay reproducible.
func SelectUniform(maxNumber int, rng RandomSource) []int {
	domain := make([]int, maxNumber)
	for i := range domain {
		domain[i] = i + 1
	}
	picked := make([]int, 0, models.MainNumbers)
	for len(picked) < models.MainNumbers && len(domain) > 0 {
		idx := int(rng.Float64() * float64(len(domain)))
		if idx >= len(domain) {
			idx = len(domain) - 1
		}
		picked = append(picked, domain[idx])
		domain = append(domain[:idx], domain[idx+1:]...)
	}
	sort.Ints(picked)
	return picked
}

// SelectBonus picks the bonus ball from the recency-weighted bonus-column
// frequencies: candidates are ranked by weighted frequency descending (ties
// by number ascending), and the pick is uniform over the top 5 of the top 10.
// A history with no bonus data falls back to a uniform in-domain pick.
func SelectBonus(snap *analysis.Snapshot, rng RandomSource) int {
	type candidate struct {
		num  int
		freq float64
	}
	var candidates []candidate
	for n := 1; n <= snap.Opts.MaxNumber; n++ {
		if snap.BonusFreq[n] > 0 {
			candidates = append(candidates, candidate{num: n, freq: snap.BonusFreq[n]})
		}
	}

	if len(candidates) == 0 {
		idx := int(rng.Float64() * float64(snap.Opts.MaxNumber))
		if idx >= snap.Opts.MaxNumber {
			idx = snap.Opts.MaxNumber - 1
		}
		return idx + 1
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].freq != candidates[j].freq {
			return candidates[i].freq > candidates[j].freq
		}
		return candidates[i].num < candidates[j].num
	})

	if len(candidates) > bonusPoolSize {
		candidates = candidates[:bonusPoolSize]
	}
	pool := bonusPickSize
	if pool > len(candidates) {
		pool = len(candidates)
	}
	idx := int(rng.Float64() * float64(pool))
	if idx >= pool {
		idx = pool - 1
	}
	return candidates[idx].num
}
