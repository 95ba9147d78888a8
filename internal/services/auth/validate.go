package auth

import (
	"holidaze/internal/domain"
	"holidaze/internal/validation"
)

// ValidationErrors maps a registration field to what is wrong with it.
type ValidationErrors = validation.Errors

var registrationMessages = map[string]string{
	"name":     "Name must not contain punctuation symbols apart from underscore (_).",
	"email":    "Email must be a valid stud.noroff.no address.",
	"password": "Password must be at least 8 characters long.",
}

// Validate checks a registration before it is sent. It returns nil when the
// registration is acceptable.
func Validate(reg domain.Registration) ValidationErrors {
	return validation.Struct(reg, registrationMessages)
}
