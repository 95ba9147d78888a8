package availability

import (
	"time"

	"holidaze/internal/domain"
)

// ComputeBookedDates expands every booking's inclusive [DateFrom, DateTo]
// range into calendar days and returns their union. Overlapping bookings
// collapse naturally. A nil or empty list yields an empty set; a booking whose
// DateFrom is after its DateTo contributes nothing.
func ComputeBookedDates(bookings []domain.Booking) DaySet {
	booked := make(DaySet)
	for _, b := range bookings {
		end := DayOf(b.DateTo)
		for d := DayOf(b.DateFrom); !d.After(end); d = d.AddDays(1) {
			booked.Add(d)
		}
	}
	return booked
}

// IsDateDisabled reports whether the calendar day of t is booked.
func IsDateDisabled(t time.Time, booked DaySet) bool {
	return booked.Contains(DayOf(t))
}

// ValidateRange reports whether [from, to] is a bookable selection: both ends
// set, from not after to, and no booked day inside the inclusive range.
func ValidateRange(from, to *Day, booked DaySet) bool {
	return CheckRange(from, to, booked) == nil
}

// CheckRange is ValidateRange with the reason for a rejection. It returns
// ErrMissingDates, ErrInvertedRange or ErrUnavailable.
func CheckRange(from, to *Day, booked DaySet) error {
	if from == nil || to == nil {
		return ErrMissingDates
	}
	if from.After(*to) {
		return ErrInvertedRange
	}
	if _, hit := FirstConflict(*from, *to, booked); hit {
		return ErrUnavailable
	}
	return nil
}

// FirstConflict returns the earliest booked day inside [from, to].
func FirstConflict(from, to Day, booked DaySet) (Day, bool) {
	for d := from; !d.After(to); d = d.AddDays(1) {
		if booked.Contains(d) {
			return d, true
		}
	}
	return Day{}, false
}
