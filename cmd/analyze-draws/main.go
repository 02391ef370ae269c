// Command analyze-draws prints the full statistical profile of a stored draw
// history without generating a prediction. Useful for inspecting what the
// engine will see before tuning weights or windows.
package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
	"github.com/lotto-oracle/lotto-oracle/internal/config"
	"github.com/lotto-oracle/lotto-oracle/internal/history"
	"github.com/lotto-oracle/lotto-oracle/internal/logger"
)

var (
	configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")
	topN       = flag.Int("top", 10, "How many entries to show in frequency rankings")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	store, err := history.Open(cfg.Storage.DBPath, cfg.Lottery.MaxNumber)
	if err != nil {
		logger.Fatal("Failed to open draw history: %v", err)
	}
	defer store.Close()

	draws, err := store.All()
	if err != nil {
		logger.Fatal("Failed to load draw history: %v", err)
	}

	snap := analysis.Analyze(draws, analysis.Options{
		MaxNumber:     cfg.Lottery.MaxNumber,
		RecencyWindow: cfg.Lottery.RecencyWindow,
		HotWindow:     cfg.Lottery.HotWindow,
		ColdWindow:    cfg.Lottery.ColdWindow,
		AvoidWindow:   cfg.Lottery.AvoidWindow,
	})

	fmt.Printf("DRAW HISTORY ANALYSIS (%d draws, domain 1-%d)\n", snap.DrawCount, snap.Opts.MaxNumber)
	fmt.Println(strings.Repeat("-", 60))

	printFrequencies(snap)
	printClassifications(snap)
	printSumProfile(snap)
	printPositions(snap)
	printShape(snap)
	printTrend(snap)
}

// printFrequencies shows the top weighted frequencies and the gap outliers
func printFrequencies(snap *analysis.Snapshot) {
	fmt.Println("\nWEIGHTED FREQUENCIES (recent draws count 2x):")
	for rank, n := range topByWeight(snap.AllTimeFreq, *topN) {
		fmt.Printf("  %2d. number %2d: weight %.0f, current gap %d, expected gap %.1f\n",
			rank+1, n, snap.AllTimeFreq[n], snap.CurrentGap[n], snap.ExpectedGap[n])
	}

	fmt.Println("\nBONUS FREQUENCIES:")
	for rank, n := range topByWeight(snap.BonusFreq, *topN) {
		fmt.Printf("  %2d. number %2d: weight %.0f\n", rank+1, n, snap.BonusFreq[n])
	}
}

func printClassifications(snap *analysis.Snapshot) {
	fmt.Println("\nCLASSIFICATIONS:")
	fmt.Printf("  Hot   (top counts, last %d draws):  %v\n", snap.Opts.HotWindow, snap.Hot)
	fmt.Printf("  Cold  (absent from last %d draws):  %v\n", snap.Opts.ColdWindow, snap.Cold)
	fmt.Printf("  Due   (gap above 1.5x expected):    %v\n", snap.Due)
	fmt.Printf("  Avoid (overdrawn in last %d draws): %v\n", snap.Opts.AvoidWindow, snap.Avoid)
}

func printSumProfile(snap *analysis.Snapshot) {
	fmt.Println("\nSUM PROFILE:")
	fmt.Printf("  Mean: %.1f  StdDev: %.1f  Observed: %d-%d\n",
		snap.SumStats.Mean, snap.SumStats.StdDev, snap.SumStats.Min, snap.SumStats.Max)
	fmt.Printf("  Optimal range: %d-%d (target %d)\n",
		snap.SumRange.Min, snap.SumRange.Max, snap.SumRange.Target)
}

func printPositions(snap *analysis.Snapshot) {
	fmt.Println("\nPOSITIONAL STATS (sorted slots):")
	for i, pos := range snap.Positions {
		fmt.Printf("  slot %d: mean %.1f, variance %.1f\n", i+1, pos.Mean, pos.Variance)
	}
}

func printShape(snap *analysis.Snapshot) {
	fmt.Println("\nCONSECUTIVE PAIRS (share of draws by pair count):")
	for k, freq := range snap.Consecutive {
		if freq > 0 {
			fmt.Printf("  %d pairs: %.1f%%\n", k, freq*100)
		}
	}

	fmt.Println("\nDECADE BUCKETS (weighted):")
	for i, weight := range snap.RangeBuckets {
		lo := i*10 + 1
		hi := min(i*10+10, snap.Opts.MaxNumber)
		fmt.Printf("  %2d-%2d: %.0f\n", lo, hi, weight)
	}
}

func printTrend(snap *analysis.Snapshot) {
	fmt.Println("\nTREND:")
	fmt.Printf("  Recent avg sum: %.1f  Prior avg sum: %.1f  Delta: %+.1f  Volatility: %.1f\n",
		snap.Trend.RecentAvg, snap.Trend.PriorAvg, snap.Trend.Delta, snap.Trend.Volatility)

	if len(snap.Cycles) > 0 {
		fmt.Printf("  Detected sum cycles (draw lengths): %v\n", snap.Cycles)
	}
	if len(snap.Patterns) > 0 {
		fmt.Println("\nPATTERNS:")
		for _, p := range snap.Patterns {
			fmt.Printf("  - %s\n", p)
		}
	}
}

// topByWeight returns up to n numbers ordered by table weight descending,
// skipping zero-weight entries. Ties break by number ascending.
func topByWeight(table analysis.FrequencyTable, n int) []int {
	var nums []int
	for i := 1; i < len(table); i++ {
		if table[i] > 0 {
			nums = append(nums, i)
		}
	}
	sort.Slice(nums, func(i, j int) bool {
		if table[nums[i]] != table[nums[j]] {
			return table[nums[i]] > table[nums[j]]
		}
		return nums[i] < nums[j]
	})
	if len(nums) > n {
		nums = nums[:n]
	}
	return nums
}
