package freq

import (
	"testing"
)

func TestRankBreaksTiesByAscendingNumber(t *testing.T) {
	table := NewTable()
	table[42] = 5
	table[7] = 5
	table[13] = 9

	ranked := Rank(table)
	if len(ranked) != 60 {
		t.Fatalf("expected 60 entries, got %d", len(ranked))
	}
	if ranked[0].Number != 13 {
		t.Fatalf("expected 13 first, got %d", ranked[0].Number)
	}
	if ranked[1].Number != 7 || ranked[2].Number != 42 {
		t.Fatalf("expected tie broken ascending (7 then 42), got %d then %d",
			ranked[1].Number, ranked[2].Number)
	}
	// Zero-weight numbers follow in ascending order.
	if ranked[3].Number != 1 {
		t.Fatalf("expected 1 after weighted numbers, got %d", ranked[3].Number)
	}
}

func TestRankIsDeterministic(t *testing.T) {
	table := NewTable()
	table[3] = 2
	table[30] = 2
	table[59] = 2

	first := Rank(table)
	for i := 0; i < 50; i++ {
		again := Rank(table)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d: rank differs at %d: %+v vs %+v", i, j, first[j], again[j])
			}
		}
	}
}

func TestTopN(t *testing.T) {
	table := NewTable()
	table[10] = 3
	table[20] = 2
	table[30] = 1

	top := TopN(table, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Number != 10 || top[1].Number != 20 {
		t.Fatalf("unexpected top: %+v", top)
	}
	if all := TopN(table, 100); len(all) != 60 {
		t.Fatalf("expected clamp to 60, got %d", len(all))
	}
}

func TestBottomN(t *testing.T) {
	table := NewTable()
	for n := range table {
		table[n] = 5
	}
	table[44] = 1
	table[2] = 1

	bottom := BottomN(table, 2)
	if bottom[0].Number != 2 || bottom[1].Number != 44 {
		t.Fatalf("expected 2 then 44, got %+v", bottom)
	}
}

func TestNumbersProjectsOrder(t *testing.T) {
	entries := []Entry{{Number: 9, Weight: 3}, {Number: 4, Weight: 1}}
	numbers := Numbers(entries)
	if len(numbers) != 2 || numbers[0] != 9 || numbers[1] != 4 {
		t.Fatalf("unexpected numbers: %v", numbers)
	}
}
