package profile

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"holidaze/internal/domain"
	"holidaze/internal/report"
	"holidaze/internal/session"
)

// ErrSignInRequired is returned when editing without a session.
var ErrSignInRequired = report.Message("You must sign in to edit your profile.")

// ErrEmptyUpdate is returned when an update changes nothing.
var ErrEmptyUpdate = report.Message("Nothing to update.")

// Service updates profiles.
type Service struct {
	client   domain.APIClient
	creds    domain.CredentialStore
	session  *session.Store
	reporter domain.Reporter
	log      *zap.Logger
}

// New constructs a profile Service.
func New(
	client domain.APIClient,
	creds domain.CredentialStore,
	sess *session.Store,
	reporter domain.Reporter,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		client:   client,
		creds:    creds,
		session:  sess,
		reporter: report.OrNop(reporter),
		log:      log,
	}
}

// Update applies upd locally, sends it, and reconciles the session with the
// server. The local change is rolled back when the API refuses it.
func (s *Service) Update(ctx context.Context, upd domain.ProfileUpdate) (domain.Profile, error) {
	me := s.session.User()
	if me == nil {
		return domain.Profile{}, ErrSignInRequired
	}
	if upd.Bio == nil && upd.Avatar == nil && upd.Banner == nil && upd.VenueManager == nil {
		return domain.Profile{}, ErrEmptyUpdate
	}

	pending := s.session.Apply(merge(*me, upd))

	saved, err := s.client.UpdateProfile(ctx, me.Name, upd)
	if err != nil {
		if !pending.Rollback() {
			s.log.Debug("profile changed during update; rollback skipped")
		}
		s.reporter.Report(ctx, err)
		return domain.Profile{}, err
	}
	if err := s.creds.SaveProfile(saved); err != nil {
		s.log.Warn("persist profile", zap.Error(err))
	}

	if err := pending.Commit(ctx); err != nil && !errors.Is(err, session.ErrSuperseded) {
		return saved, err
	}
	if cur := s.session.User(); cur != nil {
		return *cur, nil
	}
	return saved, nil
}

func merge(p domain.Profile, upd domain.ProfileUpdate) domain.Profile {
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.Avatar != nil {
		a := *upd.Avatar
		p.Avatar = &a
	}
	if upd.Banner != nil {
		b := *upd.Banner
		p.Banner = &b
	}
	if upd.VenueManager != nil {
		p.VenueManager = *upd.VenueManager
	}
	return p
}
