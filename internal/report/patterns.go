package report

import (
	"megasena/internal/draw"
)

// Patterns summarizes a selection of numbers: even/odd split, low/high split
// (low is 1-30), and the sum of the selection.
type Patterns struct {
	Even int
	Odd  int
	Low  int
	High int
	Sum  int
}

const lowHighBoundary = 30

// Summarize computes pattern statistics for a selection of numbers.
func Summarize(numbers []int) Patterns {
	var p Patterns
	for _, n := range numbers {
		if n%2 == 0 {
			p.Even++
		} else {
			p.Odd++
		}
		if n <= lowHighBoundary {
			p.Low++
		} else {
			p.High++
		}
		p.Sum += n
	}
	return p
}

// Distribution aggregates per-draw pattern statistics across a history.
// Split histograms are indexed by the even (or low) count of a draw, 0..6.
type Distribution struct {
	Draws      int
	SumMin     int
	SumMax     int
	SumAvg     float64
	EvenSplits [draw.Size + 1]int
	LowSplits  [draw.Size + 1]int
}

// Distribute computes pattern distributions over every draw in the history.
func Distribute(h draw.History) Distribution {
	var d Distribution
	d.Draws = len(h)
	total := 0
	for i, record := range h {
		p := Summarize(record.Numbers[:])
		if i == 0 || p.Sum < d.SumMin {
			d.SumMin = p.Sum
		}
		if p.Sum > d.SumMax {
			d.SumMax = p.Sum
		}
		total += p.Sum
		d.EvenSplits[p.Even]++
		d.LowSplits[p.Low]++
	}
	if d.Draws > 0 {
		d.SumAvg = float64(total) / float64(d.Draws)
	}
	return d
}
