package venue

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
	"holidaze/internal/report"
	"holidaze/internal/session"
)

var (
	// ErrSignInRequired is returned by manager operations without a session.
	ErrSignInRequired = report.Message("You must sign in to manage venues.")
	// ErrNotManager is returned when the signed-in profile is not a venue manager.
	ErrNotManager = report.Message("Only venue managers can manage venues.")
	// ErrNotOwner is returned when a manager touches a venue owned by someone else.
	ErrNotOwner = report.Message("You can only manage your own venues.")
)

const msgFetchFailed = "Error fetching venues."

// Listing order of the browse view.
const (
	listSort  = "created"
	listOrder = "asc"
)

// Details is a venue together with the days it cannot be booked.
type Details struct {
	Venue  domain.Venue
	Booked availability.DaySet
}

// Service reads venues for everyone and writes them for managers.
type Service struct {
	client   domain.APIClient
	session  *session.Store
	memo     *availability.Memo
	reporter domain.Reporter
	log      *zap.Logger
	pageSize int
}

// New constructs a venue Service. pageSize <= 0 uses the API default.
func New(
	client domain.APIClient,
	sess *session.Store,
	memo *availability.Memo,
	reporter domain.Reporter,
	log *zap.Logger,
	pageSize int,
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
		pageSize: pageSize,
	}
}

// List returns one page of venues, oldest first. On failure the API error is
// reported and a generic message returned.
func (s *Service) List(ctx context.Context, page int) (domain.Page[domain.Venue], error) {
	res, err := s.client.ListVenues(ctx, s.listOptions(page))
	if err != nil {
		s.reporter.Report(ctx, err)
		return domain.Page[domain.Venue]{}, report.Fallback(msgFetchFailed, err)
	}
	return res, nil
}

// Search returns one page of venues matching query. An empty query lists.
func (s *Service) Search(ctx context.Context, query string, page int) (domain.Page[domain.Venue], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx, page)
	}
	opts := domain.ListOptions{Page: page, Limit: s.pageSize}
	res, err := s.client.SearchVenues(ctx, query, opts)
	if err != nil {
		s.reporter.Report(ctx, err)
		return domain.Page[domain.Venue]{}, report.Fallback(msgFetchFailed, err)
	}
	return res, nil
}

func (s *Service) listOptions(page int) domain.ListOptions {
	return domain.ListOptions{Page: page, Limit: s.pageSize, Sort: listSort, SortOrder: listOrder}
}

// Get fetches a venue with its bookings and derives the booked days.
func (s *Service) Get(ctx context.Context, id domain.VenueID) (Details, error) {
	v, err := s.client.GetVenue(ctx, id)
	if err != nil {
		s.reporter.Report(ctx, err)
		return Details{}, err
	}
	return Details{Venue: v, Booked: s.memo.BookedDates(ctx, v.ID, v.Bookings)}, nil
}

// Create adds a venue owned by the signed-in manager.
func (s *Service) Create(ctx context.Context, in domain.VenueInput) (domain.Venue, error) {
	if _, err := s.manager(); err != nil {
		return domain.Venue{}, err
	}
	if errs := Validate(in); errs != nil {
		return domain.Venue{}, errs
	}
	v, err := s.client.CreateVenue(ctx, in)
	if err != nil {
		s.reporter.Report(ctx, err)
		return domain.Venue{}, err
	}
	s.log.Info("venue created", zap.Stringer("venue", v.ID))
	return v, nil
}

// Update replaces a venue the signed-in manager owns.
func (s *Service) Update(ctx context.Context, id domain.VenueID, in domain.VenueInput) (domain.Venue, error) {
	if err := s.owned(ctx, id); err != nil {
		return domain.Venue{}, err
	}
	if errs := Validate(in); errs != nil {
		return domain.Venue{}, errs
	}
	v, err := s.client.UpdateVenue(ctx, id, in)
	if err != nil {
		s.reporter.Report(ctx, err)
		return domain.Venue{}, err
	}
	s.log.Info("venue updated", zap.Stringer("venue", id))
	return v, nil
}

// Delete removes a venue the signed-in manager owns.
func (s *Service) Delete(ctx context.Context, id domain.VenueID) error {
	if err := s.owned(ctx, id); err != nil {
		return err
	}
	if err := s.client.DeleteVenue(ctx, id); err != nil {
		s.reporter.Report(ctx, err)
		return err
	}
	s.log.Info("venue deleted", zap.Stringer("venue", id))
	return nil
}

// ManagerVenues lists the signed-in manager's venues with their bookings.
func (s *Service) ManagerVenues(ctx context.Context) ([]domain.Venue, error) {
	me, err := s.manager()
	if err != nil {
		return nil, err
	}
	vs, err := s.client.ProfileVenues(ctx, me.Name)
	if err != nil {
		s.reporter.Report(ctx, err)
		return nil, err
	}
	return vs, nil
}

// Bookings lists the bookings of a venue the signed-in manager owns.
func (s *Service) Bookings(ctx context.Context, id domain.VenueID) ([]domain.Booking, error) {
	me, err := s.manager()
	if err != nil {
		return nil, err
	}
	v, err := s.client.GetVenue(ctx, id)
	if err != nil {
		s.reporter.Report(ctx, err)
		return nil, err
	}
	if v.Owner != nil && v.Owner.Name != me.Name {
		return nil, ErrNotOwner
	}
	return v.Bookings, nil
}

func (s *Service) manager() (*domain.Profile, error) {
	me := s.session.User()
	if me == nil {
		return nil, ErrSignInRequired
	}
	if !me.VenueManager {
		return nil, ErrNotManager
	}
	return me, nil
}

func (s *Service) owned(ctx context.Context, id domain.VenueID) error {
	_, err := s.Bookings(ctx, id)
	return err
}
