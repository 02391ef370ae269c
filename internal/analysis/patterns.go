package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

const (
	trendWindow = 10 // draws per trend comparison window
	cycleWindow = 30 // sums considered for cycle detection
	minCycleLen = 3
	maxCycleLen = 10
	// cycleTolerance is the maximum sum difference for two offsets to count
	// as repeating.
	cycleTolerance = 10

	// multiConsecutiveThreshold flags histories where draws with 2+
	// consecutive pairs occur unusually often.
	multiConsecutiveThreshold = 0.3
)

// sumDistribution computes mean/variance/stddev/min/max of the weighted
// multiset of per-draw sums. Recency weighting is realized by repeating the
// sum of each recent draw, not by scaling it, so the variance reflects the
// same duplication the frequency tables use.
func sumDistribution(draws []models.Draw, opts Options) SumStats {
	if len(draws) == 0 {
		return SumStats{}
	}

	var sums []int
	for i, d := range draws {
		s := d.Sum()
		sums = append(sums, s)
		if i < opts.RecencyWindow {
			sums = append(sums, s)
		}
	}

	min, max := sums[0], sums[0]
	var total float64
	for _, s := range sums {
		total += float64(s)
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	mean := total / float64(len(sums))

	var acc float64
	for _, s := range sums {
		d := float64(s) - mean
		acc += d * d
	}
	variance := acc / float64(len(sums))

	return SumStats{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      min,
		Max:      max,
	}
}

// optimalSumRange is the rounded mean ± one standard deviation band.
func optimalSumRange(stats SumStats) models.SumRange {
	return models.SumRange{
		Min:    int(math.Round(stats.Mean - stats.StdDev)),
		Max:    int(math.Round(stats.Mean + stats.StdDev)),
		Target: int(math.Round(stats.Mean)),
	}
}

// positionStats computes mean and variance per sorted slot (1st smallest
// through 6th smallest) across the unweighted draw set.
func positionStats(draws []models.Draw) [models.MainNumbers]PositionStats {
	var stats [models.MainNumbers]PositionStats
	if len(draws) == 0 {
		return stats
	}

	var sums [models.MainNumbers]float64
	sorted := make([][models.MainNumbers]int, len(draws))
	for i, d := range draws {
		nums := d.Numbers
		sort.Ints(nums[:])
		sorted[i] = nums
		for p, n := range nums {
			sums[p] += float64(n)
		}
	}

	total := float64(len(draws))
	for p := 0; p < models.MainNumbers; p++ {
		mean := sums[p] / total
		var acc float64
		for i := range sorted {
			d := float64(sorted[i][p]) - mean
			acc += d * d
		}
		stats[p] = PositionStats{Mean: mean, Variance: acc / total}
	}
	return stats
}

// countConsecutivePairs counts adjacent pairs differing by exactly 1 in the
// sorted main numbers of a draw.
func countConsecutivePairs(d models.Draw) int {
	nums := d.Numbers
	sort.Ints(nums[:])
	pairs := 0
	for i := 1; i < len(nums); i++ {
		if nums[i]-nums[i-1] == 1 {
			pairs++
		}
	}
	return pairs
}

// consecutiveHistogram buckets draws by their consecutive-pair count (0..5)
// and normalizes to frequency (count / total draws).
func consecutiveHistogram(draws []models.Draw) [models.MainNumbers]float64 {
	var hist [models.MainNumbers]float64
	if len(draws) == 0 {
		return hist
	}
	for _, d := range draws {
		pairs := countConsecutivePairs(d)
		if pairs >= models.MainNumbers {
			pairs = models.MainNumbers - 1
		}
		hist[pairs]++
	}
	for i := range hist {
		hist[i] /= float64(len(draws))
	}
	return hist
}

// rangeBuckets accumulates recency-weighted counts per decade band
// (1-10, 11-20, ...). Used only for the pattern narrative.
func rangeBuckets(draws []models.Draw, opts Options) []float64 {
	buckets := make([]float64, (opts.MaxNumber+9)/10)
	for i, d := range draws {
		w := baseWeight
		if i < opts.RecencyWindow {
			w = recencyWeight
		}
		for _, n := range d.Numbers {
			if n >= 1 && n <= opts.MaxNumber {
				buckets[(n-1)/10] += w
			}
		}
	}
	return buckets
}

// analyzeTrend compares the average sum of the newest trendWindow draws to
// the window before it. Volatility is the population standard deviation of
// the newest-window sums. Partial windows use whatever history exists; Delta
// stays zero until both windows have data.
func analyzeTrend(draws []models.Draw) Trend {
	if len(draws) == 0 {
		return Trend{}
	}

	recentEnd := trendWindow
	if recentEnd > len(draws) {
		recentEnd = len(draws)
	}
	priorEnd := 2 * trendWindow
	if priorEnd > len(draws) {
		priorEnd = len(draws)
	}

	var recentSums []float64
	for _, d := range draws[:recentEnd] {
		recentSums = append(recentSums, float64(d.Sum()))
	}
	var priorSums []float64
	if len(draws) > trendWindow {
		for _, d := range draws[trendWindow:priorEnd] {
			priorSums = append(priorSums, float64(d.Sum()))
		}
	}

	var t Trend
	t.RecentAvg = average(recentSums)
	t.PriorAvg = average(priorSums)
	if len(priorSums) > 0 {
		t.Delta = t.RecentAvg - t.PriorAvg
	}

	var acc float64
	for _, s := range recentSums {
		d := s - t.RecentAvg
		acc += d * d
	}
	t.Volatility = math.Sqrt(acc / float64(len(recentSums)))

	return t
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var total float64
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}

// detectCycles looks for repeating sum cycles over the newest cycleWindow
// draws. A candidate length L is detected when every sum at chronological
// offset i stays within cycleTolerance of the sum at offset i+L. Lengths are
// only tested once the window holds at least 2L sums, so a near-empty window
// cannot vacuously "detect" every length. Informational only; detected
// lengths are not fed into scoring.
func detectCycles(draws []models.Draw) []int {
	window := cycleWindow
	if window > len(draws) {
		window = len(draws)
	}

	// chronological order: oldest of the window first
	sums := make([]int, window)
	for j := 0; j < window; j++ {
		sums[j] = draws[window-1-j].Sum()
	}

	var detected []int
	for length := minCycleLen; length <= maxCycleLen; length++ {
		if len(sums) < 2*length {
			continue
		}
		ok := true
		for i := 0; i+length < len(sums); i++ {
			diff := sums[i] - sums[i+length]
			if diff < 0 {
				diff = -diff
			}
			if diff > cycleTolerance {
				ok = false
				break
			}
		}
		if ok {
			detected = append(detected, length)
		}
	}
	return detected
}

// describePatterns derives the human-readable pattern narrative: a high/low
// bias statement when the newest draws lean heavily to one half of the
// domain, and an elevated-consecutive statement when draws with two or more
// consecutive pairs occur unusually often.
func describePatterns(draws []models.Draw, consecutive [models.MainNumbers]float64, opts Options) []string {
	var patterns []string
	if len(draws) == 0 {
		return patterns
	}

	window := trendWindow
	if window > len(draws) {
		window = len(draws)
	}
	mid := opts.MaxNumber / 2
	highTotal := 0
	for _, d := range draws[:window] {
		for _, n := range d.Numbers {
			if n > mid {
				highTotal++
			}
		}
	}
	avgHigh := float64(highTotal) / float64(window)
	if avgHigh > 4 {
		patterns = append(patterns, fmt.Sprintf("bias toward high numbers (above %d) in recent draws", mid))
	} else if avgHigh < 2 {
		patterns = append(patterns, fmt.Sprintf("bias toward low numbers (at or below %d) in recent draws", mid))
	}

	multiFreq := 0.0
	for k := 2; k < models.MainNumbers; k++ {
		multiFreq += consecutive[k]
	}
	if multiFreq > multiConsecutiveThreshold {
		patterns = append(patterns, "elevated frequency of multiple consecutive number pairs")
	}

	return patterns
}
