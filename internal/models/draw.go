// Package models defines the core domain entities for the lotto-oracle application.
// These models represent historical lottery draws, prediction weights, and generated
// predictions. All models include built-in validation to ensure data integrity
// throughout the application.
//
// Terminology:
//   - Draw: one historical lottery result (date label + 6 main numbers + 1 bonus).
//   - Main numbers: the 6 distinct numbers drawn from [1, maxNumber].
//   - Bonus: the single extra ball drawn from the same domain.
//
// Draw histories are handled newest-first everywhere: index 0 is the most recent
// draw. The recency window of the analysis engine is therefore the first R
// elements of the slice.
package models

import (
	"errors"
	"fmt"
)

// MainNumbers is the count of main numbers in a single draw.
const MainNumbers = 6

// Draw represents one historical lottery result. Draws are immutable once
// stored; the engine never mutates caller-supplied history.
type Draw struct {
	ID      string `json:"id,omitempty"` // storage identifier, empty for unsaved draws
	Date    string `json:"date"`         // human-readable date label, e.g. "2024-03-16"
	Numbers [6]int `json:"numbers"`      // 6 distinct main numbers
	Bonus   int    `json:"bonus"`        // bonus ball
}

// Validate checks that the draw is domain-valid for the given upper bound.
func (d *Draw) Validate(maxNumber int) error {
	if maxNumber < MainNumbers {
		return fmt.Errorf("max number %d is too small for %d main numbers", maxNumber, MainNumbers)
	}
	seen := make(map[int]bool, MainNumbers)
	for _, n := range d.Numbers {
		if n < 1 || n > maxNumber {
			return fmt.Errorf("main number %d out of range [1, %d]", n, maxNumber)
		}
		if seen[n] {
			return fmt.Errorf("duplicate main number %d", n)
		}
		seen[n] = true
	}
	if d.Bonus < 1 || d.Bonus > maxNumber {
		return fmt.Errorf("bonus number %d out of range [1, %d]", d.Bonus, maxNumber)
	}
	return nil
}

// Sum returns the sum of the 6 main numbers.
func (d *Draw) Sum() int {
	total := 0
	for _, n := range d.Numbers {
		total += n
	}
	return total
}

// NumberSet is a set of main numbers. It is the shared data contract between
// the core engine and any alternative predictor (sequence-model, calendar, or
// Markov-chain based): all of them accept the same draw history and return a
// NumberSet of 6 numbers plus an optional bonus.
type NumberSet []int

// Validate checks that the set holds exactly 6 distinct, sorted, in-range numbers.
func (s NumberSet) Validate(maxNumber int) error {
	if len(s) != MainNumbers {
		return fmt.Errorf("number set must hold exactly %d numbers, got %d", MainNumbers, len(s))
	}
	for i, n := range s {
		if n < 1 || n > maxNumber {
			return fmt.Errorf("number %d out of range [1, %d]", n, maxNumber)
		}
		if i > 0 && s[i-1] >= n {
			return errors.New("number set must be strictly ascending")
		}
	}
	return nil
}

// Predictor is the contract every prediction strategy satisfies. The core
// statistical engine implements it, and so must any pluggable alternative
// (Markov-chain, calendar-weighted, neural inference). History is supplied
// newest-first; the returned bonus may be 0 when the strategy does not
// predict one.
type Predictor interface {
	Predict(history []Draw) (NumberSet, int, error)
}
