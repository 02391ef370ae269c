package analysis

import (
	"sort"

	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// dueRatioThreshold flags a number as due when its current gap exceeds this
// multiple of its expected gap.
const dueRatioThreshold = 1.5

// maxDueNumbers caps the due set, ranked by currentGap/expectedGap descending.
const maxDueNumbers = 10

// gapTables scans the history chronologically and records, for every number,
// the index-distances between successive appearances. A gap closed by an
// appearance inside the recency window is appended twice (duplicated, not
// scaled), so averages shift toward recent behavior while the raw gap values
// remain visible for variance inspection. The trailing current gap (draws
// since last seen) is appended under the same duplication rule.
//
// Numbers that never appeared keep an empty gap sequence and a current gap of
// zero; their last appearance is undefined, so the due analyzer skips them.
func gapTables(draws []models.Draw, opts Options) (gaps [][]int, current []int, seen []bool) {
	n := len(draws)
	gaps = make([][]int, opts.MaxNumber+1)
	current = make([]int, opts.MaxNumber+1)
	seen = make([]bool, opts.MaxNumber+1)

	// lastSeen holds chronological positions: 0 = oldest draw, n-1 = newest.
	lastSeen := make([]int, opts.MaxNumber+1)
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	for i := n - 1; i >= 0; i-- {
		chron := n - 1 - i
		inRecent := i < opts.RecencyWindow
		for _, num := range draws[i].Numbers {
			if num < 1 || num > opts.MaxNumber {
				continue
			}
			if lastSeen[num] >= 0 {
				g := chron - lastSeen[num]
				gaps[num] = append(gaps[num], g)
				if inRecent {
					gaps[num] = append(gaps[num], g)
				}
			}
			lastSeen[num] = chron
			seen[num] = true
		}
	}

	for num := 1; num <= opts.MaxNumber; num++ {
		if lastSeen[num] < 0 {
			continue
		}
		cur := (n - 1) - lastSeen[num]
		current[num] = cur
		gaps[num] = append(gaps[num], cur)
		// last appearance at chronological position p sits at storage index
		// n-1-p; inside the recency window when that index is < R
		if (n - 1 - lastSeen[num]) < opts.RecencyWindow {
			gaps[num] = append(gaps[num], cur)
		}
	}

	return gaps, current, seen
}

// expectedGaps derives each number's statistically expected gap from its
// all-time weighted frequency. The total weighted draw count mirrors the
// frequency weighting: (total-R) + 2R when the history exceeds the recency
// window, 2*total otherwise. Numbers with zero frequency get an expected gap
// of zero, which the scorer and due analyzer treat as "undefined".
func expectedGaps(total int, freq FrequencyTable, opts Options) []float64 {
	expected := make([]float64, opts.MaxNumber+1)

	var weightedTotal float64
	if total > opts.RecencyWindow {
		weightedTotal = float64(total-opts.RecencyWindow) + recencyWeight*float64(opts.RecencyWindow)
	} else {
		weightedTotal = recencyWeight * float64(total)
	}

	for num := 1; num <= opts.MaxNumber; num++ {
		if freq[num] > 0 {
			expected[num] = weightedTotal / freq[num]
		}
	}
	return expected
}

// dueNumbers returns the numbers whose current gap exceeds the due threshold,
// ranked by the overdue ratio descending (ties broken by number ascending for
// determinism) and capped to maxDueNumbers. Never-seen numbers are excluded.
func dueNumbers(current []int, expected []float64, seen []bool) []int {
	type candidate struct {
		num   int
		ratio float64
	}
	var candidates []candidate

	for num := 1; num < len(current); num++ {
		if !seen[num] || expected[num] <= 0 {
			continue
		}
		ratio := float64(current[num]) / expected[num]
		if ratio > dueRatioThreshold {
			candidates = append(candidates, candidate{num: num, ratio: ratio})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].ratio != candidates[j].ratio {
			return candidates[i].ratio > candidates[j].ratio
		}
		return candidates[i].num < candidates[j].num
	})

	if len(candidates) > maxDueNumbers {
		candidates = candidates[:maxDueNumbers]
	}
	due := make([]int, len(candidates))
	for i, c := range candidates {
		due[i] = c.num
	}
	return due
}
