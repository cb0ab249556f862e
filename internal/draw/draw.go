// Package draw loads and filters historical Mega Sena draw records.
package draw

import "time"

const (
	// Size is the number of balls in a single draw.
	Size = 6
	// MinNumber and MaxNumber bound the drawable range.
	MinNumber = 1
	MaxNumber = 60
)

// Record is one historical draw: its contest number, draw date, and the six
// drawn numbers sorted ascending. Records are never mutated after loading.
type Record struct {
	Contest int
	Date    time.Time
	Numbers [Size]int
}

// History is a sequence of records ordered by date ascending.
type History []Record

// Numbers projects each record to its drawn numbers, discarding dates.
func (h History) Numbers() [][Size]int {
	out := make([][Size]int, len(h))
	for i, r := range h {
		out[i] = r.Numbers
	}
	return out
}

// DateRange returns the oldest and newest draw dates. ok is false when the
// history is empty.
func (h History) DateRange() (oldest, newest time.Time, ok bool) {
	if len(h) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return h[0].Date, h[len(h)-1].Date, true
}

// LastN returns the newest n records, or all of h when n exceeds its length.
func (h History) LastN(n int) History {
	if n <= 0 {
		return nil
	}
	if n >= len(h) {
		return h
	}
	return h[len(h)-n:]
}
