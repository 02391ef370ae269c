package predictor

import (
	"fmt"
	"strings"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// Confidence adjustment per selected number in each classification set, plus
// the penalty per unit of distance from the target sum.
const (
	confidenceBase    = 50.0
	duePerNumber      = 8.0
	hotPerNumber      = 5.0
	coldPerNumber     = 3.0
	avoidPerNumber    = -15.0
	sumDistancePerOne = 0.5
)

// Confidence derives the heuristic confidence scalar for a selected set:
// start at 50, add 8 per due number, 5 per hot number and 3 per cold number
// selected, subtract 15 per avoid number, subtract 0.5 per unit the set's
// sum misses the target by, then clamp to [10, 95].
func Confidence(selected []int, snap *analysis.Snapshot) float64 {
	inDue := memberSet(snap.Due)
	inHot := memberSet(snap.Hot)
	inCold := memberSet(snap.Cold)
	inAvoid := memberSet(snap.Avoid)

	confidence := confidenceBase
	sum := 0
	for _, n := range selected {
		sum += n
		if inDue[n] {
			confidence += duePerNumber
		}
		if inHot[n] {
			confidence += hotPerNumber
		}
		if inCold[n] {
			confidence += coldPerNumber
		}
		if inAvoid[n] {
			confidence += avoidPerNumber
		}
	}

	distance := sum - snap.SumRange.Target
	if distance < 0 {
		distance = -distance
	}
	confidence -= sumDistancePerOne * float64(distance)

	if confidence < models.MinConfidence {
		confidence = models.MinConfidence
	}
	if confidence > models.MaxConfidence {
		confidence = models.MaxConfidence
	}
	return confidence
}

// Reasoning builds the ordered narrative for a selected set. The sentence
// order is fixed: recency policy, due/hot/cold inclusions (each only when
// non-empty), selected sum versus the optimal range, detected patterns (only
// when non-empty), and the low/mid/high band distribution of the selection.
func Reasoning(selected []int, snap *analysis.Snapshot) []string {
	var reasons []string

	reasons = append(reasons, fmt.Sprintf(
		"Weighted the %d most recent draws at 2x to emphasize current trends",
		snap.Opts.RecencyWindow))

	if included := intersect(selected, snap.Due); len(included) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Included due numbers %s, overdue versus their expected gap", joinNumbers(included)))
	}
	if included := intersect(selected, snap.Hot); len(included) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Included hot numbers %s, drawn frequently in the recent window", joinNumbers(included)))
	}
	if included := intersect(selected, snap.Cold); len(included) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Included cold numbers %s, absent from the recent window", joinNumbers(included)))
	}

	sum := 0
	for _, n := range selected {
		sum += n
	}
	reasons = append(reasons, fmt.Sprintf(
		"Selected sum %d against the optimal range %d-%d",
		sum, snap.SumRange.Min, snap.SumRange.Max))

	if len(snap.Patterns) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Detected patterns: %s", strings.Join(snap.Patterns, "; ")))
	}

	low, mid, high := bandCounts(selected, snap.Opts.MaxNumber)
	third := snap.Opts.MaxNumber / 3
	reasons = append(reasons, fmt.Sprintf(
		"Distribution: %d low (1-%d), %d mid (%d-%d), %d high (%d-%d)",
		low, third, mid, third+1, 2*third, high, 2*third+1, snap.Opts.MaxNumber))

	return reasons
}

// bandCounts splits the selection into the low/mid/high thirds of the domain.
func bandCounts(selected []int, maxNumber int) (low, mid, high int) {
	third := maxNumber / 3
	for _, n := range selected {
		switch {
		case n <= third:
			low++
		case n <= 2*third:
			mid++
		default:
			high++
		}
	}
	return low, mid, high
}

// intersect returns the selected numbers that belong to set, in selection
// order.
func intersect(selected []int, set []int) []int {
	in := memberSet(set)
	var out []int
	for _, n := range selected {
		if in[n] {
			out = append(out, n)
		}
	}
	return out
}

func joinNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}
