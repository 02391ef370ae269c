package predictor

import (
	"testing"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
)

func altSnapshot() *analysis.Snapshot {
	freq := make(analysis.FrequencyTable, 50)
	for n := 1; n <= 20; n++ {
		freq[n] = 30 // comfortably above the conservative threshold
	}
	return &analysis.Snapshot{
		Opts:        analysis.DefaultOptions(),
		AllTimeFreq: freq,
		Due:         []int{31, 32, 33, 34},
		Cold:        []int{35, 36, 37, 38, 39, 40},
	}
}

func TestAlternatives(t *testing.T) {
	snap := altSnapshot()
	alts := Alternatives(fullRanking(49), snap, NewSeededRNG(5))

	if len(alts) != 3 {
		t.Fatalf("got %d alternative sets, want 3", len(alts))
	}
	wantStrategies := []string{StrategyConservative, StrategyAggressive, StrategyBalanced}
	for i, alt := range alts {
		if alt.Strategy != wantStrategies[i] {
			t.Errorf("alternatives[%d].Strategy = %q, want %q", i, alt.Strategy, wantStrategies[i])
		}
		assertValidSet(t, alt.Numbers, 49)
	}

	// the aggressive pool is due then cold numbers only
	aggressive := map[int]bool{31: true, 32: true, 33: true, 34: true, 35: true, 36: true, 37: true, 38: true, 39: true, 40: true}
	for _, n := range alts[1].Numbers {
		if !aggressive[n] {
			t.Errorf("aggressive set contains %d, outside the due and cold pools", n)
		}
	}
}

func TestAlternatives_SkipsUndersizedPools(t *testing.T) {
	snap := altSnapshot()
	// overlapping due and cold collapse to a 4-number pool after dedup
	snap.Due = []int{31, 32, 33}
	snap.Cold = []int{31, 32, 33, 34}

	alts := Alternatives(fullRanking(49), snap, NewSeededRNG(5))
	for _, alt := range alts {
		if alt.Strategy == StrategyAggressive {
			t.Fatalf("aggressive set produced from a %d-number pool", 4)
		}
		assertValidSet(t, alt.Numbers, 49)
	}
	if len(alts) != 2 {
		t.Errorf("got %d alternative sets, want 2", len(alts))
	}
}

func TestAlternatives_ConservativeFiltersRareNumbers(t *testing.T) {
	snap := altSnapshot()
	for n := range snap.AllTimeFreq {
		snap.AllTimeFreq[n] = 5 // nothing established enough
	}

	alts := Alternatives(fullRanking(49), snap, NewSeededRNG(5))
	for _, alt := range alts {
		if alt.Strategy == StrategyConservative {
			t.Fatal("conservative set produced with no number above the frequency threshold")
		}
	}
	if len(alts) != 2 {
		t.Errorf("got %d alternative sets, want 2 (aggressive and balanced)", len(alts))
	}
}

func TestAlternatives_EmptyRanking(t *testing.T) {
	snap := analysis.Analyze(nil, analysis.DefaultOptions())
	if alts := Alternatives(nil, snap, NewSeededRNG(5)); len(alts) != 0 {
		t.Errorf("got %d alternative sets for an empty ranking, want 0", len(alts))
	}
}
