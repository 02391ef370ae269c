package predictor

import (
	"strings"
	"testing"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		name     string
		snap     *analysis.Snapshot
		selected []int
		want     float64
	}{
		{
			name: "mixed adjustments",
			snap: &analysis.Snapshot{
				Opts:     analysis.DefaultOptions(),
				Due:      []int{9},
				Hot:      []int{1},
				Cold:     []int{40},
				SumRange: models.SumRange{Min: 100, Max: 200, Target: 150},
			},
			// 50 + 8 (due 9) + 5 (hot 1) + 3 (cold 40) - 0.5*|144-150|
			selected: []int{1, 9, 20, 30, 40, 44},
			want:     63,
		},
		{
			name: "clamped to floor",
			snap: &analysis.Snapshot{
				Opts:     analysis.DefaultOptions(),
				Avoid:    []int{1, 2, 3, 4, 5, 6},
				SumRange: models.SumRange{Min: 15, Max: 30, Target: 21},
			},
			selected: []int{1, 2, 3, 4, 5, 6},
			want:     models.MinConfidence,
		},
		{
			name: "clamped to ceiling",
			snap: &analysis.Snapshot{
				Opts:     analysis.DefaultOptions(),
				Due:      []int{1, 2, 3, 4, 5, 6},
				Hot:      []int{1, 2, 3, 4, 5, 6},
				SumRange: models.SumRange{Min: 15, Max: 30, Target: 21},
			},
			selected: []int{1, 2, 3, 4, 5, 6},
			want:     models.MaxConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.selected, tt.snap); !almostEqual(got, tt.want) {
				t.Errorf("Confidence() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestReasoning_FixedOrder(t *testing.T) {
	snap := &analysis.Snapshot{
		Opts:     analysis.DefaultOptions(),
		Due:      []int{9},
		Hot:      []int{1},
		SumRange: models.SumRange{Min: 100, Max: 200, Target: 150},
		Patterns: []string{"first pattern", "second pattern"},
	}
	selected := []int{1, 9, 20, 30, 40, 44}

	got := Reasoning(selected, snap)
	want := []string{
		"Weighted the 100 most recent draws at 2x to emphasize current trends",
		"Included due numbers 9, overdue versus their expected gap",
		"Included hot numbers 1, drawn frequently in the recent window",
		"Selected sum 144 against the optimal range 100-200",
		"Detected patterns: first pattern; second pattern",
		"Distribution: 2 low (1-16), 2 mid (17-32), 2 high (33-49)",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d reasons, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reason[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReasoning_SkipsEmptySections(t *testing.T) {
	snap := &analysis.Snapshot{
		Opts:     analysis.DefaultOptions(),
		Due:      []int{9},
		Hot:      []int{22},
		Cold:     []int{30},
		SumRange: models.SumRange{Min: 100, Max: 200, Target: 150},
	}
	// selection intersects none of the classified sets
	got := Reasoning([]int{2, 10, 15, 27, 35, 41}, snap)

	for _, r := range got {
		if strings.HasPrefix(r, "Included") {
			t.Errorf("unexpected inclusion sentence %q for a disjoint selection", r)
		}
		if strings.HasPrefix(r, "Detected patterns") {
			t.Errorf("unexpected pattern sentence %q with no patterns detected", r)
		}
	}
	if len(got) != 3 {
		t.Errorf("got %d reasons, want 3 (recency, sum, distribution)", len(got))
	}
}
