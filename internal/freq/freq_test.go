package freq

import (
	"errors"
	"math"
	"testing"
	"time"

	"megasena/internal/draw"
)

func record(day int, numbers [draw.Size]int) draw.Record {
	return draw.Record{
		Contest: day,
		Date:    time.Date(2020, time.January, day, 0, 0, 0, 0, time.UTC),
		Numbers: numbers,
	}
}

func yearRecord(year int, numbers [draw.Size]int) draw.Record {
	return draw.Record{
		Date:    time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC),
		Numbers: numbers,
	}
}

func checkFullKeySet(t *testing.T, table Table) {
	t.Helper()
	if len(table) != draw.MaxNumber {
		t.Fatalf("expected %d keys, got %d", draw.MaxNumber, len(table))
	}
	for n := draw.MinNumber; n <= draw.MaxNumber; n++ {
		w, ok := table[n]
		if !ok {
			t.Fatalf("missing key %d", n)
		}
		if w < 0 {
			t.Fatalf("negative weight %f for %d", w, n)
		}
	}
}

func TestSimpleCountsOccurrences(t *testing.T) {
	history := draw.History{
		record(1, [draw.Size]int{7, 2, 3, 4, 5, 6}),
		record(2, [draw.Size]int{7, 12, 13, 14, 15, 16}),
		record(3, [draw.Size]int{7, 22, 23, 24, 25, 26}),
	}
	table, err := Simple{}.Weights(history)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	checkFullKeySet(t, table)
	if table[7] != 3 {
		t.Fatalf("expected weight 3 for number 7, got %f", table[7])
	}
	if table[60] != 0 {
		t.Fatalf("expected weight 0 for absent number, got %f", table[60])
	}
	if total := table.Total(); total != float64(draw.Size*len(history)) {
		t.Fatalf("expected total %d, got %f", draw.Size*len(history), total)
	}
}

func TestPoliciesFailFastOnEmptyHistory(t *testing.T) {
	policies := []Policy{
		Simple{},
		ExponentialRecency{Base: 7},
		LinearRecency{MaxBoost: 4},
		OlderFavored{Base: 7},
		RecentWindow{Draws: 5},
		RecentWindow{Years: 5},
	}
	for _, policy := range policies {
		if _, err := policy.Weights(nil); !errors.Is(err, ErrEmptyHistory) {
			t.Fatalf("%s: expected ErrEmptyHistory, got %v", policy.Name(), err)
		}
	}
}

func TestExponentialRecencyRatio(t *testing.T) {
	// Number 1 appears only in the oldest draw, number 60 only in the newest.
	history := draw.History{
		record(1, [draw.Size]int{1, 10, 11, 12, 13, 14}),
		record(2, [draw.Size]int{20, 21, 22, 23, 24, 25}),
		record(3, [draw.Size]int{60, 30, 31, 32, 33, 34}),
	}
	base := 7.0
	table, err := ExponentialRecency{Base: base}.Weights(history)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	checkFullKeySet(t, table)
	ratio := table[60] / table[1]
	if math.Abs(ratio-base) > 1e-9 {
		t.Fatalf("expected newest/oldest ratio %f, got %f", base, ratio)
	}
}

func TestOlderFavoredMirrorsExponential(t *testing.T) {
	history := draw.History{
		record(1, [draw.Size]int{1, 10, 11, 12, 13, 14}),
		record(2, [draw.Size]int{20, 21, 22, 23, 24, 25}),
		record(3, [draw.Size]int{60, 30, 31, 32, 33, 34}),
	}
	base := 7.0
	table, err := OlderFavored{Base: base}.Weights(history)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	ratio := table[1] / table[60]
	if math.Abs(ratio-base) > 1e-9 {
		t.Fatalf("expected oldest/newest ratio %f, got %f", base, ratio)
	}
}

func TestLinearRecencyEndpoints(t *testing.T) {
	history := draw.History{
		record(1, [draw.Size]int{1, 10, 11, 12, 13, 14}),
		record(2, [draw.Size]int{20, 21, 22, 23, 24, 25}),
		record(3, [draw.Size]int{60, 30, 31, 32, 33, 34}),
	}
	table, err := LinearRecency{MaxBoost: 4}.Weights(history)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	if table[1] != 1 {
		t.Fatalf("expected oldest weight 1, got %f", table[1])
	}
	if table[60] != 4 {
		t.Fatalf("expected newest weight 4, got %f", table[60])
	}
	// Middle draw sits halfway: 1 + 3*0.5.
	if math.Abs(table[20]-2.5) > 1e-9 {
		t.Fatalf("expected middle weight 2.5, got %f", table[20])
	}
}

func TestSingleDrawDegradesToSimple(t *testing.T) {
	history := draw.History{
		record(1, [draw.Size]int{1, 2, 3, 4, 5, 6}),
	}
	policies := []Policy{
		ExponentialRecency{Base: 7},
		LinearRecency{MaxBoost: 4},
		OlderFavored{Base: 7},
	}
	for _, policy := range policies {
		table, err := policy.Weights(history)
		if err != nil {
			t.Fatalf("%s: %v", policy.Name(), err)
		}
		for n := 1; n <= draw.Size; n++ {
			if table[n] != 1 {
				t.Fatalf("%s: expected weight 1 for %d, got %f", policy.Name(), n, table[n])
			}
		}
	}
}

func TestRecentWindowDraws(t *testing.T) {
	history := draw.History{
		record(1, [draw.Size]int{1, 2, 3, 4, 5, 6}),
		record(2, [draw.Size]int{11, 12, 13, 14, 15, 16}),
		record(3, [draw.Size]int{21, 22, 23, 24, 25, 26}),
	}
	table, err := RecentWindow{Draws: 2}.Weights(history)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	checkFullKeySet(t, table)
	if table[1] != 0 {
		t.Fatalf("expected oldest draw excluded, got weight %f", table[1])
	}
	if table[11] != 1 || table[21] != 1 {
		t.Fatalf("expected recent draws counted, got %f and %f", table[11], table[21])
	}
}

func TestRecentWindowYears(t *testing.T) {
	history := draw.History{
		yearRecord(2019, [draw.Size]int{1, 2, 3, 4, 5, 6}),
		yearRecord(2020, [draw.Size]int{11, 12, 13, 14, 15, 16}),
		yearRecord(2021, [draw.Size]int{21, 22, 23, 24, 25, 26}),
	}
	table, err := RecentWindow{Years: 2}.Weights(history)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	if table[1] != 0 {
		t.Fatalf("expected 2019 excluded, got weight %f", table[1])
	}
	if table[11] != 1 || table[21] != 1 {
		t.Fatalf("expected 2020 and 2021 counted, got %f and %f", table[11], table[21])
	}
}

func TestWeightsAreFreshPerCall(t *testing.T) {
	history := draw.History{
		record(1, [draw.Size]int{1, 2, 3, 4, 5, 6}),
	}
	first, err := Simple{}.Weights(history)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	second, err := Simple{}.Weights(history)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	first[1] = 99
	if second[1] != 1 {
		t.Fatalf("tables must not share state, got %f", second[1])
	}
}
