package predictor

import (
	"sort"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// Multiplicative score adjustments, applied in this fixed order. All three
// can apply to the same number.
const (
	avoidMultiplier = 0.3
	dueMultiplier   = 1.5
	hotMultiplier   = 1.2
)

// ScoreNumbers fuses the snapshot statistics into one non-negative score per
// number, indexed by number (index 0 unused). The base score combines three
// weighted terms:
//
//	frequency: allTimeFreq[n] / max(allTimeFreq) x weights.Frequency x 100
//	recency:   min(recentCount[n] x 25, 100) x weights.Recency
//	gap:       min(currentGap[n]/expectedGap[n] x 50, 100) x weights.Gaps
//
// The gap ratio is 0 when the expected gap is zero or undefined. The
// patterns, distribution and correlation weights are accepted but not yet
// folded in; they are a reserved extension point.
//
// The base score is then multiplied by 0.3 for avoid numbers, 1.5 for due
// numbers and 1.2 for hot numbers, in that order. Scores are never
// normalized to a fixed total.
func ScoreNumbers(snap *analysis.Snapshot, weights models.PredictionWeights) []float64 {
	maxNumber := snap.Opts.MaxNumber
	scores := make([]float64, maxNumber+1)

	maxFreq := snap.AllTimeFreq.Max()

	inDue := memberSet(snap.Due)
	inHot := memberSet(snap.Hot)
	inAvoid := memberSet(snap.Avoid)

	for n := 1; n <= maxNumber; n++ {
		score := 0.0

		if maxFreq > 0 {
			score += (snap.AllTimeFreq[n] / maxFreq) * weights.Frequency * 100
		}

		recencyTerm := snap.RecentCounts[n] * 25
		if recencyTerm > 100 {
			recencyTerm = 100
		}
		score += recencyTerm * weights.Recency

		if snap.ExpectedGap[n] > 0 {
			gapTerm := (float64(snap.CurrentGap[n]) / snap.ExpectedGap[n]) * 50
			if gapTerm > 100 {
				gapTerm = 100
			}
			score += gapTerm * weights.Gaps
		}

		if inAvoid[n] {
			score *= avoidMultiplier
		}
		if inDue[n] {
			score *= dueMultiplier
		}
		if inHot[n] {
			score *= hotMultiplier
		}

		scores[n] = score
	}
	return scores
}

// RankNumbers returns the domain numbers ordered by score descending, with
// ties broken by number ascending for determinism.
func RankNumbers(scores []float64) []int {
	ranked := make([]int, 0, len(scores)-1)
	for n := 1; n < len(scores); n++ {
		ranked = append(ranked, n)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

func memberSet(nums []int) map[int]bool {
	set := make(map[int]bool, len(nums))
	for _, n := range nums {
		set[n] = true
	}
	return set
}
