package analysis

import "github.com/lotto-oracle/lotto-oracle/internal/models"

// recencyWeight is the frequency weight of draws inside the recency window;
// draws beyond it contribute baseWeight.
const (
	recencyWeight = 2.0
	baseWeight    = 1.0
)

// weightedFrequencies builds the all-time frequency table. Each of a draw's 6
// main numbers contributes recencyWeight when the draw lies within the
// newest RecencyWindow draws, baseWeight otherwise. Aggregation is
// permutation-invariant within the same recency band; only the index
// position relative to the window matters.
func weightedFrequencies(draws []models.Draw, opts Options) FrequencyTable {
	table := make(FrequencyTable, opts.MaxNumber+1)
	for i, d := range draws {
		w := baseWeight
		if i < opts.RecencyWindow {
			w = recencyWeight
		}
		for _, n := range d.Numbers {
			if n >= 1 && n <= opts.MaxNumber {
				table[n] += w
			}
		}
	}
	return table
}

// bonusFrequencies applies the same recency weighting to the bonus column.
func bonusFrequencies(draws []models.Draw, opts Options) FrequencyTable {
	table := make(FrequencyTable, opts.MaxNumber+1)
	for i, d := range draws {
		w := baseWeight
		if i < opts.RecencyWindow {
			w = recencyWeight
		}
		if d.Bonus >= 1 && d.Bonus <= opts.MaxNumber {
			table[d.Bonus] += w
		}
	}
	return table
}

// recentCounts builds a plain occurrence-count table over the newest window
// draws. Short histories clamp the window to what is available.
func recentCounts(draws []models.Draw, window, maxNumber int) FrequencyTable {
	table := make(FrequencyTable, maxNumber+1)
	if window > len(draws) {
		window = len(draws)
	}
	for i := 0; i < window; i++ {
		for _, n := range draws[i].Numbers {
			if n >= 1 && n <= maxNumber {
				table[n]++
			}
		}
	}
	return table
}
