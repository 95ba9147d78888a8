package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
	"holidaze/internal/report"
	"holidaze/internal/session"
)

var (
	// ErrSignInRequired is returned when booking without a session.
	ErrSignInRequired = report.Message("You must sign in to book venue.")
	// ErrGuests is wrapped when the guest count is outside the venue's limit.
	ErrGuests = errors.New("invalid number of guests")
)

const msgBookingFailed = "Failed to create booking. Please try again."

// Request is a booking as entered by the user.
type Request struct {
	VenueID domain.VenueID
	From    *availability.Day
	To      *availability.Day
	Guests  int
}

// Confirmation is a created booking with its price.
type Confirmation struct {
	Booking domain.Booking
	Venue   domain.Venue
	Nights  int
	Total   float64
}

// Service books venues.
type Service struct {
	client   domain.APIClient
	session  *session.Store
	memo     *availability.Memo
	reporter domain.Reporter
	log      *zap.Logger
}

// New constructs a booking Service.
func New(
	client domain.APIClient,
	sess *session.Store,
	memo *availability.Memo,
	reporter domain.Reporter,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		client:   client,
		session:  sess,
		memo:     memo,
		reporter: report.OrNop(reporter),
		log:      log,
	}
}

// Book validates req against the venue's current bookings and creates it.
//
// Date and guest problems come back as validation errors without being
// reported. API failures are reported and returned behind a generic message.
func (s *Service) Book(ctx context.Context, req Request) (Confirmation, error) {
	if s.session.User() == nil {
		return Confirmation{}, ErrSignInRequired
	}
	if err := availability.CheckRange(req.From, req.To, nil); err != nil {
		return Confirmation{}, err
	}

	v, err := s.client.GetVenue(ctx, req.VenueID)
	if err != nil {
		s.reporter.Report(ctx, err)
		return Confirmation{}, report.Fallback(msgBookingFailed, err)
	}
	if req.Guests < 1 || (v.MaxGuests > 0 && req.Guests > v.MaxGuests) {
		return Confirmation{}, fmt.Errorf("%w: choose between 1 and %d guests", ErrGuests, v.MaxGuests)
	}
	booked := s.memo.BookedDates(ctx, v.ID, v.Bookings)
	if err := availability.CheckRange(req.From, req.To, booked); err != nil {
		if d, hit := availability.FirstConflict(*req.From, *req.To, booked); hit {
			return Confirmation{}, fmt.Errorf("%w (first unavailable day: %s)", err, d)
		}
		return Confirmation{}, err
	}

	b, err := s.client.CreateBooking(ctx, domain.BookingRequest{
		DateFrom: availability.FormatDate(*req.From),
		DateTo:   availability.FormatDate(*req.To),
		Guests:   req.Guests,
		VenueID:  req.VenueID,
	})
	if err != nil {
		s.reporter.Report(ctx, err)
		return Confirmation{}, report.Fallback(msgBookingFailed, err)
	}
	s.log.Info("booking created",
		zap.Stringer("booking", b.ID),
		zap.Stringer("venue", req.VenueID),
		zap.Stringer("from", *req.From),
		zap.Stringer("to", *req.To),
	)
	return Confirmation{
		Booking: b,
		Venue:   v,
		Nights:  availability.Nights(*req.From, *req.To),
		Total:   availability.Quote(v.Price, *req.From, *req.To),
	}, nil
}

// MyBookings lists the signed-in user's bookings with their venues.
func (s *Service) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	me := s.session.User()
	if me == nil {
		return nil, ErrSignInRequired
	}
	bs, err := s.client.ProfileBookings(ctx, me.Name)
	if err != nil {
		s.reporter.Report(ctx, err)
		return nil, err
	}
	return bs, nil
}

// Cancel deletes one of the signed-in user's bookings.
func (s *Service) Cancel(ctx context.Context, id domain.BookingID) error {
	if s.session.User() == nil {
		return ErrSignInRequired
	}
	if err := s.client.DeleteBooking(ctx, id); err != nil {
		s.reporter.Report(ctx, err)
		return err
	}
	s.log.Info("booking cancelled", zap.Stringer("booking", id))
	return nil
}
