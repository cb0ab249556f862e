// Package freq computes weighted number frequencies over draw histories.
package freq

import (
	"errors"
	"fmt"
	"math"

	"megasena/internal/draw"
)

// ErrEmptyHistory is returned when a policy is asked to weight zero draws.
var ErrEmptyHistory = errors.New("no draws to weight")

// Table maps every drawable number (1..60) to its accumulated weight.
// The key set is always the full range; numbers that never appeared
// carry weight zero.
type Table map[int]float64

// NewTable returns a table with every drawable number at weight zero.
func NewTable() Table {
	t := make(Table, draw.MaxNumber)
	for n := draw.MinNumber; n <= draw.MaxNumber; n++ {
		t[n] = 0
	}
	return t
}

// Total returns the sum of all weights in the table.
func (t Table) Total() float64 {
	var sum float64
	for _, w := range t {
		sum += w
	}
	return sum
}

// Policy converts a draw history into a frequency table. Policies are pure:
// all state is fixed at construction and every call builds a fresh table.
type Policy interface {
	Name() string
	Description() string
	Weights(h draw.History) (Table, error)
}

// Simple counts plain occurrences: every draw contributes weight 1.
type Simple struct{}

// Name implements Policy.
func (Simple) Name() string { return "Simple Frequency" }

// Description implements Policy.
func (Simple) Description() string { return "Equal weight for all draws" }

// Weights implements Policy.
func (Simple) Weights(h draw.History) (Table, error) {
	return accumulate(h, func(int, int) float64 { return 1 })
}

// ExponentialRecency weights the i-th draw (0 = oldest) by Base^(i/(n-1)),
// so the newest draw outweighs the oldest by exactly Base. A single-draw
// history degrades to Simple.
type ExponentialRecency struct {
	Base float64
}

// Name implements Policy.
func (p ExponentialRecency) Name() string { return "Recent Weighted More (Exponential)" }

// Description implements Policy.
func (p ExponentialRecency) Description() string {
	return fmt.Sprintf("Newest draws weigh up to %.0fx more than the oldest (exponential growth)", p.Base)
}

// Weights implements Policy.
func (p ExponentialRecency) Weights(h draw.History) (Table, error) {
	return accumulate(h, func(i, n int) float64 {
		return math.Pow(p.Base, position(i, n))
	})
}

// LinearRecency weights the i-th draw (0 = oldest) by
// 1 + (MaxBoost-1)*i/(n-1), growing linearly from 1 to MaxBoost.
type LinearRecency struct {
	MaxBoost float64
}

// Name implements Policy.
func (p LinearRecency) Name() string { return "Recent Weighted More (Linear)" }

// Description implements Policy.
func (p LinearRecency) Description() string {
	return fmt.Sprintf("Newest draws weigh up to %.0fx more than the oldest (linear growth)", p.MaxBoost)
}

// Weights implements Policy.
func (p LinearRecency) Weights(h draw.History) (Table, error) {
	return accumulate(h, func(i, n int) float64 {
		return 1 + (p.MaxBoost-1)*position(i, n)
	})
}

// OlderFavored mirrors ExponentialRecency: the oldest draw outweighs the
// newest by exactly Base.
type OlderFavored struct {
	Base float64
}

// Name implements Policy.
func (p OlderFavored) Name() string { return "Older Weighted More (Exponential)" }

// Description implements Policy.
func (p OlderFavored) Description() string {
	return fmt.Sprintf("Oldest draws weigh up to %.0fx more than the newest (historical stability)", p.Base)
}

// Weights implements Policy.
func (p OlderFavored) Weights(h draw.History) (Table, error) {
	return accumulate(h, func(i, n int) float64 {
		return math.Pow(p.Base, position(n-1-i, n))
	})
}

// RecentWindow counts only the most recent draws: the last Draws records,
// or every draw within the last Years calendar years of the newest record.
// Set exactly one of the two; Draws wins when both are set. Equivalent to
// filtering the history and applying Simple.
type RecentWindow struct {
	Draws int
	Years int
}

// Name implements Policy.
func (p RecentWindow) Name() string {
	if p.Draws > 0 {
		return fmt.Sprintf("Last %d Draws Only", p.Draws)
	}
	return fmt.Sprintf("Last %d Years Only", p.Years)
}

// Description implements Policy.
func (p RecentWindow) Description() string {
	if p.Draws > 0 {
		return fmt.Sprintf("Only the most recent %d draws contribute", p.Draws)
	}
	return fmt.Sprintf("Only draws from the last %d years contribute", p.Years)
}

// Weights implements Policy.
func (p RecentWindow) Weights(h draw.History) (Table, error) {
	if len(h) == 0 {
		return nil, ErrEmptyHistory
	}
	recent := h
	switch {
	case p.Draws > 0:
		recent = h.LastN(p.Draws)
	case p.Years > 0:
		cutoff := h[len(h)-1].Date.Year() - p.Years + 1
		recent = h.Filter(func(r draw.Record) bool { return r.Date.Year() >= cutoff })
	}
	return Simple{}.Weights(recent)
}

// position maps a draw index to [0, 1], with 0 for a single-draw history so
// every recency policy degrades to Simple.
func position(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func accumulate(h draw.History, weightAt func(i, n int) float64) (Table, error) {
	if len(h) == 0 {
		return nil, ErrEmptyHistory
	}
	t := NewTable()
	n := len(h)
	for i, record := range h {
		w := weightAt(i, n)
		for _, num := range record.Numbers {
			t[num] += w
		}
	}
	return t, nil
}
