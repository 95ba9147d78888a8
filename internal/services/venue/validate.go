package venue

import (
	"holidaze/internal/domain"
	"holidaze/internal/validation"
)

// ValidationErrors maps a venue field to what is wrong with it.
type ValidationErrors = validation.Errors

var venueMessages = map[string]string{
	"name":        "Name is required.",
	"description": "Description is required.",
	"price":       "Price cannot be negative.",
	"maxGuests":   "Max guests must be between 1 and 100.",
	"rating":      "Rating must be between 0 and 5.",
	"media":       "Every image needs a URL.",
}

// Validate checks a venue form before it is sent. It returns nil when the
// input is acceptable.
func Validate(in domain.VenueInput) ValidationErrors {
	return validation.Struct(in, venueMessages)
}
