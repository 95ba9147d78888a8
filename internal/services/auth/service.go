package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"holidaze/internal/api"
	"holidaze/internal/domain"
	"holidaze/internal/report"
	"holidaze/internal/session"
)

// ErrLoginFailed is wrapped by sign-in failures the API rejected.
var ErrLoginFailed = report.Message("Login failed. Please check your email and password.")

const (
	msgLoginUnavailable = "Login failed. Please try again."
	msgRegisterFailed   = "Registration failed. Please try again."
)

// Service handles sign-in, sign-up and sign-out.
type Service struct {
	client   domain.APIClient
	creds    domain.CredentialStore
	session  *session.Store
	reporter domain.Reporter
	log      *zap.Logger
}

// New constructs an auth Service.
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

// SignIn logs in, persists the token and profile, and loads the session.
// Login failures are reported before they are returned.
func (s *Service) SignIn(ctx context.Context, email, password string) (domain.Profile, error) {
	res, err := s.client.Login(ctx, domain.Credentials{Email: email, Password: password})
	if err != nil {
		s.reporter.Report(ctx, err)
		if code := api.StatusCode(err); code != 0 {
			return domain.Profile{}, fmt.Errorf("%d. %w", code, ErrLoginFailed)
		}
		return domain.Profile{}, report.Fallback(msgLoginUnavailable, err)
	}

	if err := s.creds.SaveToken(res.AccessToken); err != nil {
		return domain.Profile{}, fmt.Errorf("save token: %w", err)
	}
	if err := s.creds.SaveProfile(res.Profile); err != nil {
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	s.log.Info("signed in", zap.Stringer("profile", res.Profile.Name))

	if err := s.session.Initialize(ctx); err != nil && !errors.Is(err, session.ErrSuperseded) {
		return res.Profile, err
	}
	return res.Profile, nil
}

// SignUp validates reg, registers it and signs the new profile in. Local
// validation failures are returned as ValidationErrors and not reported; a
// failed sign-in has already been reported by SignIn.
func (s *Service) SignUp(ctx context.Context, reg domain.Registration) (domain.Profile, error) {
	if errs := Validate(reg); errs != nil {
		return domain.Profile{}, errs
	}
	if _, err := s.client.Register(ctx, reg); err != nil {
		s.reporter.Report(ctx, err)
		return domain.Profile{}, report.Fallback(msgRegisterFailed, err)
	}
	p, err := s.SignIn(ctx, reg.Email, reg.Password)
	if err != nil {
		return domain.Profile{}, report.Fallback(msgRegisterFailed, err)
	}
	return p, nil
}

// SignOut forgets the persisted credentials and resets the session.
func (s *Service) SignOut() error {
	s.session.Reset()
	if err := s.creds.Clear(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	s.log.Info("signed out")
	return nil
}
