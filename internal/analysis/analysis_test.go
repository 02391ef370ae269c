package analysis

import (
	"testing"

	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// draw builds a valid test draw from 6 main numbers.
func draw(n1, n2, n3, n4, n5, n6 int) models.Draw {
	return models.Draw{Date: "2024-01-01", Numbers: [6]int{n1, n2, n3, n4, n5, n6}, Bonus: 7}
}

// repeatDraws returns count copies of the same draw, newest-first.
func repeatDraws(d models.Draw, count int) []models.Draw {
	draws := make([]models.Draw, count)
	for i := range draws {
		draws[i] = d
	}
	return draws
}

func TestWeightedFrequencies_RecencyDoubling(t *testing.T) {
	// 150 identical draws: the newest 100 weigh 2.0, the older 50 weigh 1.0,
	// so each drawn number accumulates 2*100 + 1*50 = 250.
	draws := repeatDraws(draw(1, 2, 3, 4, 5, 6), 150)
	s := Analyze(draws, DefaultOptions())

	for n := 1; n <= 6; n++ {
		if s.AllTimeFreq[n] != 250 {
			t.Errorf("AllTimeFreq[%d] = %f, expected 250", n, s.AllTimeFreq[n])
		}
	}
	if s.AllTimeFreq[49] != 0 {
		t.Errorf("AllTimeFreq[49] = %f, expected 0", s.AllTimeFreq[49])
	}

	// Bonus column gets the same weighting
	if s.BonusFreq[7] != 250 {
		t.Errorf("BonusFreq[7] = %f, expected 250", s.BonusFreq[7])
	}

	// Numbers never drawn are cold (zero occurrences in the cold window)
	if s.RecentCounts[49] != 0 {
		t.Errorf("RecentCounts[49] = %f, expected 0", s.RecentCounts[49])
	}
	if len(s.Cold) == 0 || s.Cold[0] != 7 {
		t.Errorf("Expected cold set to start at 7, got %v", s.Cold)
	}
	if len(s.Cold) != 15 {
		t.Errorf("Expected cold set capped to 15, got %d", len(s.Cold))
	}
}

func TestWeightedFrequencies_RecencyOrientation(t *testing.T) {
	// Histories are newest-first: index 0 is the most recent draw and the
	// recency window covers the newest R entries. With R=2 on a 4-draw
	// history, the number present only in the 2 newest draws must outweigh
	// a number present only in the 2 oldest draws.
	opts := DefaultOptions()
	opts.RecencyWindow = 2
	draws := []models.Draw{
		draw(10, 20, 30, 40, 45, 49), // newest
		draw(10, 20, 30, 40, 45, 49),
		draw(11, 21, 31, 41, 46, 48),
		draw(11, 21, 31, 41, 46, 48), // oldest
	}

	s := Analyze(draws, opts)
	if s.AllTimeFreq[10] != 4 { // 2 draws x weight 2.0
		t.Errorf("AllTimeFreq[10] = %f, expected 4", s.AllTimeFreq[10])
	}
	if s.AllTimeFreq[11] != 2 { // 2 draws x weight 1.0
		t.Errorf("AllTimeFreq[11] = %f, expected 2", s.AllTimeFreq[11])
	}
}

func TestRecentCounts_ClampToHistory(t *testing.T) {
	draws := []models.Draw{draw(1, 2, 3, 4, 5, 6)}
	s := Analyze(draws, DefaultOptions())

	// windows larger than the history clamp instead of failing
	if s.HotCounts[1] != 1 {
		t.Errorf("HotCounts[1] = %f, expected 1", s.HotCounts[1])
	}
	if s.AvoidCounts[6] != 1 {
		t.Errorf("AvoidCounts[6] = %f, expected 1", s.AvoidCounts[6])
	}
}

func TestGapTables(t *testing.T) {
	opts := DefaultOptions()

	// Number 9 appears only in the 4 oldest of 40 draws (chronological
	// positions 0..3). All 40 draws fall inside the recency window, so the
	// weighted draw count is 2*40=80 and freq[9] = 4*2 = 8, giving an
	// expected gap of 10. Current gap = 39-3 = 36 > 1.5*10, so 9 is due.
	filler := draw(10, 20, 30, 40, 45, 49)
	with9 := draw(9, 20, 30, 40, 45, 49)
	var draws []models.Draw
	for i := 0; i < 36; i++ {
		draws = append(draws, filler)
	}
	for i := 0; i < 4; i++ {
		draws = append(draws, with9)
	}

	s := Analyze(draws, opts)

	if s.AllTimeFreq[9] != 8 {
		t.Errorf("AllTimeFreq[9] = %f, expected 8", s.AllTimeFreq[9])
	}
	if s.ExpectedGap[9] != 10 {
		t.Errorf("ExpectedGap[9] = %f, expected 10", s.ExpectedGap[9])
	}
	if s.CurrentGap[9] != 36 {
		t.Errorf("CurrentGap[9] = %d, expected 36", s.CurrentGap[9])
	}

	// consecutive appearances at chronological 0..3 yield gaps of 1, each
	// duplicated (recency window), plus the duplicated current gap
	wantGaps := []int{1, 1, 1, 1, 1, 1, 36, 36}
	if len(s.Gaps[9]) != len(wantGaps) {
		t.Fatalf("Gaps[9] = %v, expected %v", s.Gaps[9], wantGaps)
	}
	for i, g := range wantGaps {
		if s.Gaps[9][i] != g {
			t.Errorf("Gaps[9][%d] = %d, expected %d", i, s.Gaps[9][i], g)
		}
	}

	if len(s.Due) != 1 || s.Due[0] != 9 {
		t.Errorf("Due = %v, expected [9]", s.Due)
	}

	// numbers present in every draw have no current gap
	if s.CurrentGap[20] != 0 {
		t.Errorf("CurrentGap[20] = %d, expected 0", s.CurrentGap[20])
	}
}

func TestGapTables_NeverSeen(t *testing.T) {
	draws := repeatDraws(draw(1, 2, 3, 4, 5, 6), 50)
	s := Analyze(draws, DefaultOptions())

	// never-seen numbers: empty gap sequence, zero current gap, never due
	if len(s.Gaps[49]) != 0 {
		t.Errorf("Gaps[49] = %v, expected empty", s.Gaps[49])
	}
	if s.CurrentGap[49] != 0 {
		t.Errorf("CurrentGap[49] = %d, expected 0", s.CurrentGap[49])
	}
	if s.Seen(49) {
		t.Error("Seen(49) = true, expected false")
	}
	for _, n := range s.Due {
		if n == 49 {
			t.Error("never-seen number 49 must not be flagged due")
		}
	}
}

func TestHotColdAvoidSets(t *testing.T) {
	// Newest 10 draws repeat {1,2,3,4,5,6}; the 30 draws before them use
	// {40,41,42,43,44,45}. With a 10-draw avoid window, 1..6 appear 10
	// times each and are overdrawn; 40..45 disappear from the 20-draw
	// cold window only partially (they occupy draws 10..39).
	recent := repeatDraws(draw(1, 2, 3, 4, 5, 6), 10)
	older := repeatDraws(draw(40, 41, 42, 43, 44, 45), 30)
	draws := append(recent, older...)

	s := Analyze(draws, DefaultOptions())

	// hot: counted over the newest 15 draws; 1..6 appear 10x, 40..45 5x
	if len(s.Hot) != 12 {
		t.Fatalf("Hot = %v, expected 12 numbers", s.Hot)
	}
	for i, want := range []int{1, 2, 3, 4, 5, 6, 40, 41, 42, 43, 44, 45} {
		if s.Hot[i] != want {
			t.Errorf("Hot[%d] = %d, expected %d", i, s.Hot[i], want)
		}
	}

	// avoid: >= 3 occurrences inside the newest 10 draws
	if len(s.Avoid) != 6 {
		t.Fatalf("Avoid = %v, expected 6 numbers", s.Avoid)
	}
	for i, want := range []int{1, 2, 3, 4, 5, 6} {
		if s.Avoid[i] != want {
			t.Errorf("Avoid[%d] = %d, expected %d", i, s.Avoid[i], want)
		}
	}

	// cold: zero occurrences in the newest 20 draws, ascending, cap 15;
	// 40..45 appear within those 20 draws, so cold starts at 7
	if len(s.Cold) != 15 {
		t.Fatalf("Cold = %v, expected 15 numbers", s.Cold)
	}
	for i := 0; i < 15; i++ {
		if s.Cold[i] != 7+i {
			t.Errorf("Cold[%d] = %d, expected %d", i, s.Cold[i], 7+i)
		}
	}
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	s := Analyze(nil, DefaultOptions())

	if s.DrawCount != 0 {
		t.Errorf("DrawCount = %d, expected 0", s.DrawCount)
	}
	if s.AllTimeFreq.Max() != 0 {
		t.Errorf("Max frequency = %f, expected 0", s.AllTimeFreq.Max())
	}
	if len(s.Hot) != 0 || len(s.Cold) != 0 || len(s.Due) != 0 || len(s.Avoid) != 0 {
		t.Errorf("Expected empty sets, got hot=%v cold=%v due=%v avoid=%v", s.Hot, s.Cold, s.Due, s.Avoid)
	}
	if s.SumRange != (models.SumRange{}) {
		t.Errorf("SumRange = %+v, expected zero value", s.SumRange)
	}
	if len(s.Patterns) != 0 {
		t.Errorf("Patterns = %v, expected none", s.Patterns)
	}
}

func TestAnalyze_DefaultsOnBadOptions(t *testing.T) {
	s := Analyze(nil, Options{})
	if s.Opts.MaxNumber != 49 {
		t.Errorf("Expected default max number 49, got %d", s.Opts.MaxNumber)
	}
}
