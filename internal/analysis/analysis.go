// Package analysis computes the statistical profile of a draw history.
//
// A single call to Analyze produces an immutable Snapshot holding every
// statistic the prediction engine consumes:
//
//	weighted frequency tables  — each draw contributes weight 2.0 inside the
//	                             recency window (default: 100 newest draws)
//	                             and 1.0 outside it
//	gap tables                 — draw-index distances between successive
//	                             appearances of each number, with gaps closed
//	                             inside the recency window duplicated rather
//	                             than scaled, so averages shift while raw gap
//	                             magnitudes stay inspectable
//	hot/cold/due/avoid sets    — short-window classifications of each number
//	sum distribution           — weighted per-draw sums with the mean ± one
//	                             standard deviation band used as the soft
//	                             selection constraint
//	patterns                   — positional statistics, consecutive-pair
//	                             histogram, decade buckets, short-term trend,
//	                             cycle detection and narrative strings
//
// Histories are newest-first: index 0 is the most recent draw, and the
// recency window covers indices [0, R). All windowed computations clamp to
// the available history, so short or empty histories never fail: tables come
// back zero-filled and the classification sets empty.
package analysis

import "github.com/lotto-oracle/lotto-oracle/internal/models"

// Options configures the number domain and the analysis windows. All windows
// are counts of draws, applied from the newest end of the history.
type Options struct {
	MaxNumber     int // domain upper bound N; numbers live in [1, N]
	RecencyWindow int // draws receiving 2x frequency weight (R)
	HotWindow     int // window for hot-number counts
	ColdWindow    int // window for cold-number and recency-term counts
	AvoidWindow   int // window for overdrawn-number counts
}

// DefaultOptions returns the standard 6/49 configuration.
func DefaultOptions() Options {
	return Options{
		MaxNumber:     49,
		RecencyWindow: 100,
		HotWindow:     15,
		ColdWindow:    20,
		AvoidWindow:   10,
	}
}

// FrequencyTable maps a number to its accumulated weight. Index 0 is unused;
// the table is sized MaxNumber+1 so numbers index it directly.
type FrequencyTable []float64

// Max returns the largest weight in the table.
func (t FrequencyTable) Max() float64 {
	max := 0.0
	for _, w := range t {
		if w > max {
			max = w
		}
	}
	return max
}

// SumStats summarizes the weighted distribution of per-draw sums.
type SumStats struct {
	Mean     float64
	Variance float64
	StdDev   float64
	Min      int
	Max      int
}

// PositionStats holds the mean and variance of one sorted slot (1st smallest
// through 6th smallest) across the unweighted draw set.
type PositionStats struct {
	Mean     float64
	Variance float64
}

// Trend compares the average sum of the 10 newest draws against the 10
// before them. Volatility is the standard deviation of the newest-10 sums.
// Delta is zero when either window is empty.
type Trend struct {
	RecentAvg  float64
	PriorAvg   float64
	Delta      float64
	Volatility float64
}

// Snapshot is the immutable aggregate of all statistics for one scoring run.
// It is created once per prediction request and never mutated afterwards.
type Snapshot struct {
	DrawCount int
	Opts      Options

	AllTimeFreq  FrequencyTable // 2x-recency weighted, full history
	BonusFreq    FrequencyTable // same weighting, bonus column only
	HotCounts    FrequencyTable // plain counts over HotWindow draws
	RecentCounts FrequencyTable // plain counts over ColdWindow draws
	AvoidCounts  FrequencyTable // plain counts over AvoidWindow draws

	Gaps        [][]int   // per number: gap sequence incl. trailing current gap
	CurrentGap  []int     // per number: draws since last seen (0 if never seen)
	ExpectedGap []float64 // per number: weighted draw count / weighted frequency
	everSeen    []bool

	Hot   []int // top 12 by HotWindow counts
	Cold  []int // zero counts in ColdWindow, ascending, capped to 15
	Due   []int // current gap > 1.5x expected, by ratio descending, capped to 10
	Avoid []int // >= 3 occurrences in AvoidWindow, capped to 8

	SumStats     SumStats
	SumRange     models.SumRange // mean ± stddev, rounded
	Positions    [models.MainNumbers]PositionStats
	Consecutive  [models.MainNumbers]float64 // frequency of draws with exactly k consecutive pairs
	RangeBuckets []float64                   // weighted counts per decade band
	Trend        Trend
	Cycles       []int    // detected repeating cycle lengths over last 30 sums
	Patterns     []string // human-readable pattern narrative
}

// Analyze computes the full snapshot for a newest-first draw history. The
// history slice is read only; an empty history yields a zero-filled snapshot.
func Analyze(draws []models.Draw, opts Options) *Snapshot {
	if opts.MaxNumber < models.MainNumbers {
		opts = DefaultOptions()
	}

	s := &Snapshot{
		DrawCount: len(draws),
		Opts:      opts,
	}

	s.AllTimeFreq = weightedFrequencies(draws, opts)
	s.BonusFreq = bonusFrequencies(draws, opts)
	s.HotCounts = recentCounts(draws, opts.HotWindow, opts.MaxNumber)
	s.RecentCounts = recentCounts(draws, opts.ColdWindow, opts.MaxNumber)
	s.AvoidCounts = recentCounts(draws, opts.AvoidWindow, opts.MaxNumber)

	s.Gaps, s.CurrentGap, s.everSeen = gapTables(draws, opts)
	s.ExpectedGap = expectedGaps(len(draws), s.AllTimeFreq, opts)

	s.Hot = hotNumbers(s.HotCounts)
	s.Cold = coldNumbers(s.RecentCounts, len(draws))
	s.Avoid = avoidNumbers(s.AvoidCounts)
	s.Due = dueNumbers(s.CurrentGap, s.ExpectedGap, s.everSeen)

	s.SumStats = sumDistribution(draws, opts)
	s.SumRange = optimalSumRange(s.SumStats)
	s.Positions = positionStats(draws)
	s.Consecutive = consecutiveHistogram(draws)
	s.RangeBuckets = rangeBuckets(draws, opts)
	s.Trend = analyzeTrend(draws)
	s.Cycles = detectCycles(draws)
	s.Patterns = describePatterns(draws, s.Consecutive, opts)

	return s
}

// Seen reports whether a number has ever appeared in the history. Numbers
// never seen have an undefined last appearance and are never flagged due.
func (s *Snapshot) Seen(n int) bool {
	if n < 1 || n >= len(s.everSeen) {
		return false
	}
	return s.everSeen[n]
}
