package interfaces

import (
	"context"

	domaintypes "holidaze/internal/domain/types"
)

// ProfileClient fetches profiles. It is all the session store needs.
type ProfileClient interface {
	GetProfile(ctx context.Context, name domaintypes.ProfileName) (domaintypes.Profile, error)
}

// APIClient is how we talk to the Holidaze API, all with context.
type APIClient interface {
	ProfileClient

	Login(ctx context.Context, creds domaintypes.Credentials) (domaintypes.AuthResult, error)
	Register(ctx context.Context, reg domaintypes.Registration) (domaintypes.Profile, error)

	UpdateProfile(
		ctx context.Context,
		name domaintypes.ProfileName,
		update domaintypes.ProfileUpdate,
	) (domaintypes.Profile, error)
	ProfileBookings(ctx context.Context, name domaintypes.ProfileName) ([]domaintypes.Booking, error)
	ProfileVenues(ctx context.Context, name domaintypes.ProfileName) ([]domaintypes.Venue, error)

	ListVenues(ctx context.Context, opts domaintypes.ListOptions) (domaintypes.Page[domaintypes.Venue], error)
	SearchVenues(
		ctx context.Context,
		query string,
		opts domaintypes.ListOptions,
	) (domaintypes.Page[domaintypes.Venue], error)
	GetVenue(ctx context.Context, id domaintypes.VenueID) (domaintypes.Venue, error)
	CreateVenue(ctx context.Context, in domaintypes.VenueInput) (domaintypes.Venue, error)
	UpdateVenue(ctx context.Context, id domaintypes.VenueID, in domaintypes.VenueInput) (domaintypes.Venue, error)
	DeleteVenue(ctx context.Context, id domaintypes.VenueID) error

	CreateBooking(ctx context.Context, req domaintypes.BookingRequest) (domaintypes.Booking, error)
	GetBooking(ctx context.Context, id domaintypes.BookingID) (domaintypes.Booking, error)
	DeleteBooking(ctx context.Context, id domaintypes.BookingID) error
}
