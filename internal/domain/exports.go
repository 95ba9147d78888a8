package domain

import (
	interfaces "holidaze/internal/domain/interfaces"
	types "holidaze/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ProfileName    = types.ProfileName
	Media          = types.Media
	Profile        = types.Profile
	ProfileUpdate  = types.ProfileUpdate
	Credentials    = types.Credentials
	Registration   = types.Registration
	AuthResult     = types.AuthResult
	VenueID        = types.VenueID
	VenueMeta      = types.VenueMeta
	Location       = types.Location
	Venue          = types.Venue
	VenueInput     = types.VenueInput
	BookingID      = types.BookingID
	Booking        = types.Booking
	BookingRequest = types.BookingRequest
	PageMeta       = types.PageMeta
	ListOptions    = types.ListOptions
)

// Page is one page of a list endpoint.
type Page[T any] = types.Page[T]

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ProfileClient   = interfaces.ProfileClient
	APIClient       = interfaces.APIClient
	CredentialStore = interfaces.CredentialStore
	Reporter        = interfaces.Reporter
)
