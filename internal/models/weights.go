package models

import "fmt"

// PredictionWeights is the 6-dimensional weight vector driving the number
// scoring model. The defaults sum to 1.0 but the engine never assumes
// normalization; callers may override any subset via WeightOverrides.
//
// Patterns, Distribution and Correlation are accepted and validated but are
// not yet folded into the base score. They are a reserved extension point for
// future scoring terms and must never be rejected.
type PredictionWeights struct {
	Frequency    float64 `json:"frequency" mapstructure:"frequency"`
	Recency      float64 `json:"recency" mapstructure:"recency"`
	Gaps         float64 `json:"gaps" mapstructure:"gaps"`
	Patterns     float64 `json:"patterns" mapstructure:"patterns"`
	Distribution float64 `json:"distribution" mapstructure:"distribution"`
	Correlation  float64 `json:"correlation" mapstructure:"correlation"`
}

// DefaultWeights returns the standard weight vector (sums to 1.0).
func DefaultWeights() PredictionWeights {
	return PredictionWeights{
		Frequency:    0.25,
		Recency:      0.20,
		Gaps:         0.20,
		Patterns:     0.15,
		Distribution: 0.10,
		Correlation:  0.10,
	}
}

// Validate checks that every component is non-negative. Negative weights
// would break the score >= 0 guarantee of the scoring model.
func (w PredictionWeights) Validate() error {
	check := func(name string, v float64) error {
		if v < 0 {
			return fmt.Errorf("weight %s must not be negative, got %f", name, v)
		}
		return nil
	}
	if err := check("frequency", w.Frequency); err != nil {
		return err
	}
	if err := check("recency", w.Recency); err != nil {
		return err
	}
	if err := check("gaps", w.Gaps); err != nil {
		return err
	}
	if err := check("patterns", w.Patterns); err != nil {
		return err
	}
	if err := check("distribution", w.Distribution); err != nil {
		return err
	}
	return check("correlation", w.Correlation)
}

// WeightOverrides carries optional per-component overrides. Nil fields keep
// the base value, so callers can override any subset of the vector.
type WeightOverrides struct {
	Frequency    *float64
	Recency      *float64
	Gaps         *float64
	Patterns     *float64
	Distribution *float64
	Correlation  *float64
}

// Merge applies the overrides on top of the receiver and returns the result.
// A nil overrides pointer returns the receiver unchanged.
func (w PredictionWeights) Merge(o *WeightOverrides) PredictionWeights {
	if o == nil {
		return w
	}
	out := w
	if o.Frequency != nil {
		out.Frequency = *o.Frequency
	}
	if o.Recency != nil {
		out.Recency = *o.Recency
	}
	if o.Gaps != nil {
		out.Gaps = *o.Gaps
	}
	if o.Patterns != nil {
		out.Patterns = *o.Patterns
	}
	if o.Distribution != nil {
		out.Distribution = *o.Distribution
	}
	if o.Correlation != nil {
		out.Correlation = *o.Correlation
	}
	return out
}
