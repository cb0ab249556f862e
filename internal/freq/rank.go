package freq

import "sort"

// Entry pairs a number with its accumulated weight.
type Entry struct {
	Number int
	Weight float64
}

// Rank orders every number in t by descending weight, ties broken by
// ascending number. The result covers the full table, so it is a total,
// reproducible ordering of all 60 numbers.
func Rank(t Table) []Entry {
	entries := make([]Entry, 0, len(t))
	for n, w := range t {
		entries = append(entries, Entry{Number: n, Weight: w})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight == entries[j].Weight {
			return entries[i].Number < entries[j].Number
		}
		return entries[i].Weight > entries[j].Weight
	})
	return entries
}

// TopN returns the first n entries of the full ranking.
func TopN(t Table, n int) []Entry {
	ranked := Rank(t)
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}

// BottomN returns the n lowest-weighted numbers, lowest weight first, ties
// broken by ascending number.
func BottomN(t Table, n int) []Entry {
	entries := make([]Entry, 0, len(t))
	for num, w := range t {
		entries = append(entries, Entry{Number: num, Weight: w})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight == entries[j].Weight {
			return entries[i].Number < entries[j].Number
		}
		return entries[i].Weight < entries[j].Weight
	})
	if n > len(entries) {
		n = len(entries)
	}
	if n < 0 {
		n = 0
	}
	return entries[:n]
}

// Numbers projects entries to their numbers, preserving order.
func Numbers(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Number
	}
	return out
}
