package draw

import "time"

// Predicate reports whether a record should be kept when filtering.
type Predicate func(Record) bool

// Filter returns the ordered subsequence of h matching p.
func (h History) Filter(p Predicate) History {
	var out History
	for _, r := range h {
		if p(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByYearRange keeps records with from <= year <= to.
func ByYearRange(from, to int) Predicate {
	return func(r Record) bool {
		year := r.Date.Year()
		return year >= from && year <= to
	}
}

// OnDay keeps records drawn on the given day and month, any year.
func OnDay(day int, month time.Month) Predicate {
	return func(r Record) bool {
		return r.Date.Day() == day && r.Date.Month() == month
	}
}

// MegaVirada keeps the December 31st draws from startYear on.
func MegaVirada(startYear int) Predicate {
	newYearsEve := OnDay(31, time.December)
	return func(r Record) bool {
		return newYearsEve(r) && r.Date.Year() >= startYear
	}
}

// Contains keeps records whose draw includes n.
func Contains(n int) Predicate {
	return func(r Record) bool {
		for _, num := range r.Numbers {
			if num == n {
				return true
			}
		}
		return false
	}
}
