package availability

import "errors"

// ValidationError is a rejected date selection. It is a user mistake, not a
// failure, and is never sent to the error reporter.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	// ErrMissingDates is returned when either end of the selection is unset.
	ErrMissingDates = &ValidationError{msg: "Please select both a start date and an end date before booking."}

	// ErrInvertedRange is returned when the selection starts after it ends.
	ErrInvertedRange = &ValidationError{msg: `The "Date From" must be before the "Date To".`}

	// ErrUnavailable is returned when the selection touches a booked day.
	ErrUnavailable = &ValidationError{msg: "Selected date range includes unavailable dates. Please choose another range."}
)

// IsValidation reports whether err is a rejected selection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
