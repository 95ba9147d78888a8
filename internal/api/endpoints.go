package api

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/internal/domain"
)

const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
	pathProfiles = "/holidaze/profiles"
	pathVenues   = "/holidaze/venues"
	pathBookings = "/holidaze/bookings"
)

// Login exchanges credentials for a profile and access token.
func (c *HTTP) Login(ctx context.Context, creds domain.Credentials) (domain.AuthResult, error) {
	var out domain.AuthResult
	_, err := c.do(ctx, http.MethodPost, pathLogin, nil, creds, &out)
	return out, err
}

// Register creates a new profile.
func (c *HTTP) Register(ctx context.Context, reg domain.Registration) (domain.Profile, error) {
	var out domain.Profile
	_, err := c.do(ctx, http.MethodPost, pathRegister, nil, reg, &out)
	return out, err
}

// GetProfile fetches a profile by name.
func (c *HTTP) GetProfile(ctx context.Context, name domain.ProfileName) (domain.Profile, error) {
	var out domain.Profile
	_, err := c.do(ctx, http.MethodGet, profilePath(name), nil, nil, &out)
	return out, err
}

// UpdateProfile applies update to the named profile.
func (c *HTTP) UpdateProfile(
	ctx context.Context,
	name domain.ProfileName,
	update domain.ProfileUpdate,
) (domain.Profile, error) {
	var out domain.Profile
	_, err := c.do(ctx, http.MethodPut, profilePath(name), nil, update, &out)
	return out, err
}

// ProfileBookings lists the bookings made by a profile, with their venues.
func (c *HTTP) ProfileBookings(ctx context.Context, name domain.ProfileName) ([]domain.Booking, error) {
	var out []domain.Booking
	q := url.Values{"_venue": {"true"}}
	_, err := c.do(ctx, http.MethodGet, profilePath(name)+"/bookings", q, nil, &out)
	return out, err
}

// ProfileVenues lists the venues a manager owns, with their bookings.
func (c *HTTP) ProfileVenues(ctx context.Context, name domain.ProfileName) ([]domain.Venue, error) {
	var out []domain.Venue
	q := url.Values{"_bookings": {"true"}}
	_, err := c.do(ctx, http.MethodGet, profilePath(name)+"/venues", q, nil, &out)
	return out, err
}

// ListVenues returns one page of venues.
func (c *HTTP) ListVenues(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Venue], error) {
	return c.venuePage(ctx, pathVenues, listQuery(opts))
}

// SearchVenues returns one page of venues matching query.
func (c *HTTP) SearchVenues(
	ctx context.Context,
	query string,
	opts domain.ListOptions,
) (domain.Page[domain.Venue], error) {
	q := listQuery(opts)
	q.Set("q", query)
	return c.venuePage(ctx, pathVenues+"/search", q)
}

func (c *HTTP) venuePage(ctx context.Context, path string, q url.Values) (domain.Page[domain.Venue], error) {
	var items []domain.Venue
	meta, err := c.do(ctx, http.MethodGet, path, q, nil, &items)
	if err != nil {
		return domain.Page[domain.Venue]{}, err
	}
	page := domain.Page[domain.Venue]{Items: items}
	if meta != nil {
		page.Meta = *meta
	}
	return page, nil
}

// GetVenue fetches a venue with its bookings and owner expanded.
func (c *HTTP) GetVenue(ctx context.Context, id domain.VenueID) (domain.Venue, error) {
	var out domain.Venue
	q := url.Values{"_bookings": {"true"}, "_owner": {"true"}}
	_, err := c.do(ctx, http.MethodGet, venuePath(id), q, nil, &out)
	return out, err
}

// CreateVenue creates a venue owned by the signed-in manager.
func (c *HTTP) CreateVenue(ctx context.Context, in domain.VenueInput) (domain.Venue, error) {
	var out domain.Venue
	_, err := c.do(ctx, http.MethodPost, pathVenues, nil, in, &out)
	return out, err
}

// UpdateVenue replaces the writable fields of a venue.
func (c *HTTP) UpdateVenue(ctx context.Context, id domain.VenueID, in domain.VenueInput) (domain.Venue, error) {
	var out domain.Venue
	_, err := c.do(ctx, http.MethodPut, venuePath(id), nil, in, &out)
	return out, err
}

// DeleteVenue deletes a venue.
func (c *HTTP) DeleteVenue(ctx context.Context, id domain.VenueID) error {
	_, err := c.do(ctx, http.MethodDelete, venuePath(id), nil, nil, nil)
	return err
}

// CreateBooking books a venue.
func (c *HTTP) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	var out domain.Booking
	_, err := c.do(ctx, http.MethodPost, pathBookings, nil, req, &out)
	return out, err
}

// GetBooking fetches a booking with its venue.
func (c *HTTP) GetBooking(ctx context.Context, id domain.BookingID) (domain.Booking, error) {
	var out domain.Booking
	q := url.Values{"_venue": {"true"}}
	_, err := c.do(ctx, http.MethodGet, pathBookings+"/"+url.PathEscape(id.String()), q, nil, &out)
	return out, err
}

// DeleteBooking cancels a booking.
func (c *HTTP) DeleteBooking(ctx context.Context, id domain.BookingID) error {
	_, err := c.do(ctx, http.MethodDelete, pathBookings+"/"+url.PathEscape(id.String()), nil, nil, nil)
	return err
}

func profilePath(name domain.ProfileName) string {
	return pathProfiles + "/" + url.PathEscape(name.String())
}

func venuePath(id domain.VenueID) string {
	return pathVenues + "/" + url.PathEscape(id.String())
}
