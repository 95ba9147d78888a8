package availability

import "time"

// Cell is one day in a month grid.
type Cell struct {
	Day      Day
	InMonth  bool // false for leading/trailing days of adjacent months
	Disabled bool
}

// Month lays out the given month as weeks starting on Monday, marking booked
// days as disabled. Leading and trailing cells belong to the adjacent months.
func Month(year int, month time.Month, booked DaySet) [][]Cell {
	first := Date(year, month, 1)
	// Monday-based offset of the first day.
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDays(-offset)

	var weeks [][]Cell
	for d := start; ; {
		week := make([]Cell, 7)
		for i := range week {
			week[i] = Cell{
				Day:      d,
				InMonth:  d.Month == first.Month && d.Year == first.Year,
				Disabled: IsDateDisabled(d.Time(), booked),
			}
			d = d.AddDays(1)
		}
		weeks = append(weeks, week)
		if d.Month != first.Month || d.Year != first.Year {
			break
		}
	}
	return weeks
}

// Nights returns the number of nights for a stay from..to. A same-day
// selection counts as one night.
func Nights(from, to Day) int {
	n := DaysBetween(from, to)
	if n < 1 {
		return 1
	}
	return n
}

// Quote returns the total price of a stay at a nightly price.
func Quote(price float64, from, to Day) float64 {
	return price * float64(Nights(from, to))
}
