package freq

import "sort"

// ConsensusEntry records in how many per-policy selections a number appears.
type ConsensusEntry struct {
	Number  int
	Methods int
}

// Consensus ranks numbers by how many of the given top-N selections they
// appear in, descending, ties broken by ascending number. Numbers absent
// from every selection are omitted.
func Consensus(selections [][]Entry) []ConsensusEntry {
	counts := make(map[int]int)
	for _, selection := range selections {
		for _, e := range selection {
			counts[e.Number]++
		}
	}
	out := make([]ConsensusEntry, 0, len(counts))
	for n, c := range counts {
		out = append(out, ConsensusEntry{Number: n, Methods: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Methods == out[j].Methods {
			return out[i].Number < out[j].Number
		}
		return out[i].Methods > out[j].Methods
	})
	return out
}
