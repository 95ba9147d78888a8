package types

import "time"

// BookingID identifies a booking.
type BookingID string

// String returns the string form of the booking ID.
func (id BookingID) String() string { return string(id) }

// Booking is a reservation of a venue for an inclusive date range.
// DateFrom is never after DateTo for bookings accepted by the API.
type Booking struct {
	ID       BookingID `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	Venue    *Venue    `json:"venue,omitempty"`
	Customer *Profile  `json:"customer,omitempty"`
}

// BookingRequest is the body of a booking POST. Dates are YYYY-MM-DD.
type BookingRequest struct {
	DateFrom string  `json:"dateFrom"`
	DateTo   string  `json:"dateTo"`
	Guests   int     `json:"guests"`
	VenueID  VenueID `json:"venueId"`
}
