package models

import (
	"errors"
	"fmt"
	"time"
)

// Confidence bounds for a prediction. Confidence is a heuristic scalar, not a
// statistical guarantee; it is always clamped into this closed interval.
const (
	MinConfidence = 10.0
	MaxConfidence = 95.0
)

// SumRange is the optimal sum band for a 6-number set, derived from the
// historical sum distribution as mean ± one standard deviation.
type SumRange struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Target int `json:"target"` // rounded historical mean
}

// Contains reports whether a sum falls inside the band (inclusive).
func (r SumRange) Contains(sum int) bool {
	return sum >= r.Min && sum <= r.Max
}

// StatisticalBasis summarizes the analysis backing a prediction.
type StatisticalBasis struct {
	Hot      []int    `json:"hot"`      // frequently drawn in the short recent window
	Cold     []int    `json:"cold"`     // absent from the recent window
	Due      []int    `json:"due"`      // current gap well beyond the expected gap
	Avoid    []int    `json:"avoid"`    // drawn unusually often very recently
	SumRange SumRange `json:"sum_range"`
	Patterns []string `json:"patterns"` // human-readable detected patterns
}

// AlternativeSet is one additional candidate set produced under a named
// selection strategy ("conservative", "aggressive" or "balanced").
type AlternativeSet struct {
	Strategy string    `json:"strategy"`
	Numbers  NumberSet `json:"numbers"`
}

// PredictionResult is the externally visible output of one prediction run.
type PredictionResult struct {
	ID           string           `json:"id"`
	GeneratedAt  time.Time        `json:"generated_at"`
	Numbers      NumberSet        `json:"numbers"` // 6 distinct numbers, ascending
	Bonus        int              `json:"bonus"`
	Confidence   float64          `json:"confidence"` // clamped to [10, 95]
	Reasoning    []string         `json:"reasoning"`  // ordered narrative
	Basis        StatisticalBasis `json:"basis"`
	Alternatives []AlternativeSet `json:"alternatives"` // up to 3 sets
}

// Validate checks the structural postconditions every prediction must meet,
// regardless of how much (or how little) history was available.
func (p *PredictionResult) Validate(maxNumber int) error {
	if p.ID == "" {
		return errors.New("prediction ID must not be empty")
	}
	if err := p.Numbers.Validate(maxNumber); err != nil {
		return fmt.Errorf("main numbers: %w", err)
	}
	if p.Bonus < 1 || p.Bonus > maxNumber {
		return fmt.Errorf("bonus number %d out of range [1, %d]", p.Bonus, maxNumber)
	}
	if p.Confidence < MinConfidence || p.Confidence > MaxConfidence {
		return fmt.Errorf("confidence %.2f outside [%.0f, %.0f]", p.Confidence, MinConfidence, MaxConfidence)
	}
	if len(p.Alternatives) > 3 {
		return fmt.Errorf("at most 3 alternative sets allowed, got %d", len(p.Alternatives))
	}
	for _, alt := range p.Alternatives {
		if alt.Strategy == "" {
			return errors.New("alternative set strategy must not be empty")
		}
		if err := alt.Numbers.Validate(maxNumber); err != nil {
			return fmt.Errorf("alternative set %q: %w", alt.Strategy, err)
		}
	}
	return nil
}
