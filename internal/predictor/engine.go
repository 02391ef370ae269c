// Package predictor turns a draw-history snapshot into a ranked, constrained
// 6-number recommendation with a confidence estimate and narrative.
//
// The pipeline is score -> select -> explain:
//
//	score   — per-number fusion of frequency, recency and gap terms, with
//	          multiplicative due/hot/avoid adjustments
//	select  — rank-decay weighted sampling without replacement, retried
//	          against the optimal sum range with a hard attempt bound and a
//	          deterministic top-6 fallback
//	explain — confidence scalar clamped to [10, 95] plus a fixed-order
//	          reasoning narrative and up to 3 alternative sets
//
// The engine is a pure function of (history, weights, random source): it
// holds no mutable state across invocations, and a seeded RandomSource makes
// the whole prediction reproducible.
package predictor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lotto-oracle/lotto-oracle/internal/analysis"
	"github.com/lotto-oracle/lotto-oracle/internal/logger"
	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// Config carries the engine parameters.
type Config struct {
	Analysis          analysis.Options
	Weights           models.PredictionWeights
	SelectionAttempts int     // bound on constrained sampling retries
	RankDecay         float64 // per-rank sampling weight decay, in (0, 1)
}

// Engine generates predictions. Safe for sequential reuse; each Generate
// call builds its own snapshot from the supplied history and discards it.
type Engine struct {
	cfg Config
	rng RandomSource
}

// New creates an engine. A nil random source falls back to the crypto-backed
// default; out-of-range selection parameters fall back to the standard 1000
// attempts and 0.8 decay.
func New(cfg Config, rng RandomSource) *Engine {
	if rng == nil {
		rng = DefaultRNG()
	}
	if cfg.Analysis.MaxNumber < models.MainNumbers {
		cfg.Analysis = analysis.DefaultOptions()
	}
	if cfg.SelectionAttempts < 1 {
		cfg.SelectionAttempts = 1000
	}
	if cfg.RankDecay <= 0 || cfg.RankDecay >= 1 {
		cfg.RankDecay = 0.8
	}
	return &Engine{cfg: cfg, rng: rng}
}

// Generate produces a prediction for the given newest-first draw history.
// overrides may be nil; non-nil fields replace the engine's base weights for
// this call only. An empty history is valid and yields a uniform-random but
// structurally complete result.
func (e *Engine) Generate(history []models.Draw, overrides *models.WeightOverrides) (*models.PredictionResult, error) {
	weights := e.cfg.Weights.Merge(overrides)
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid prediction weights: %w", err)
	}

	snap := analysis.Analyze(history, e.cfg.Analysis)
	logger.Debug("analyzed %d draws: %d hot, %d cold, %d due, %d avoid, sum range %d-%d",
		snap.DrawCount, len(snap.Hot), len(snap.Cold), len(snap.Due), len(snap.Avoid),
		snap.SumRange.Min, snap.SumRange.Max)

	var ranked []int
	var numbers []int
	if len(history) == 0 {
		// no candidates to score; degenerate uniform fallback over the domain
		numbers = SelectUniform(snap.Opts.MaxNumber, e.rng)
	} else {
		scores := ScoreNumbers(snap, weights)
		ranked = RankNumbers(scores)
		numbers = SelectNumbers(ranked, snap.SumRange, e.cfg.SelectionAttempts, e.cfg.RankDecay, e.rng)
	}

	bonus := SelectBonus(snap, e.rng)
	confidence := Confidence(numbers, snap)
	reasoning := Reasoning(numbers, snap)
	alternatives := Alternatives(ranked, snap, e.rng)

	result := &models.PredictionResult{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now(),
		Numbers:     numbers,
		Bonus:       bonus,
		Confidence:  confidence,
		Reasoning:   reasoning,
		Basis: models.StatisticalBasis{
			Hot:      snap.Hot,
			Cold:     snap.Cold,
			Due:      snap.Due,
			Avoid:    snap.Avoid,
			SumRange: snap.SumRange,
			Patterns: snap.Patterns,
		},
		Alternatives: alternatives,
	}

	if err := result.Validate(snap.Opts.MaxNumber); err != nil {
		return nil, fmt.Errorf("generated prediction failed validation: %w", err)
	}
	return result, nil
}

// Predict satisfies models.Predictor, making the statistical engine
// interchangeable with the alternative prediction strategies.
func (e *Engine) Predict(history []models.Draw) (models.NumberSet, int, error) {
	result, err := e.Generate(history, nil)
	if err != nil {
		return nil, 0, err
	}
	return result.Numbers, result.Bonus, nil
}
