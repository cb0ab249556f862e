package freq

import "testing"

func TestConsensusCountsMemberships(t *testing.T) {
	selections := [][]Entry{
		{{Number: 7}, {Number: 12}, {Number: 33}},
		{{Number: 7}, {Number: 33}, {Number: 41}},
		{{Number: 7}, {Number: 12}, {Number: 55}},
	}
	consensus := Consensus(selections)
	if len(consensus) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(consensus))
	}
	if consensus[0].Number != 7 || consensus[0].Methods != 3 {
		t.Fatalf("expected 7 in 3 methods first, got %+v", consensus[0])
	}
	// 12 and 33 tie on 2 methods; ascending number breaks the tie.
	if consensus[1].Number != 12 || consensus[2].Number != 33 {
		t.Fatalf("expected 12 then 33, got %+v then %+v", consensus[1], consensus[2])
	}
	if consensus[3].Number != 41 || consensus[4].Number != 55 {
		t.Fatalf("expected 41 then 55, got %+v then %+v", consensus[3], consensus[4])
	}
}

func TestConsensusEmpty(t *testing.T) {
	if got := Consensus(nil); len(got) != 0 {
		t.Fatalf("expected no entries, got %+v", got)
	}
}
