package availability

import "sort"

// DaySet is a set of calendar days.
type DaySet map[Day]struct{}

// NewDaySet returns a set holding days.
func NewDaySet(days ...Day) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s.Add(d)
	}
	return s
}

// Add inserts d.
func (s DaySet) Add(d Day) { s[d] = struct{}{} }

// Contains reports whether d is in the set. A nil set contains nothing.
func (s DaySet) Contains(d Day) bool {
	_, ok := s[d]
	return ok
}

// Len returns the number of days in the set.
func (s DaySet) Len() int { return len(s) }

// Sorted returns the days in ascending order.
func (s DaySet) Sorted() []Day {
	out := make([]Day, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
