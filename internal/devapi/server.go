package devapi

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"holidaze/internal/domain"
)

const (
	apiKeyHeader = "X-Noroff-API-Key"
	defaultLimit = 100
	tokenTTL     = 24 * time.Hour
)

// Server holds the in-memory state. It is safe for concurrent use.
type Server struct {
	apiKey string
	secret []byte
	log    *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	accounts map[domain.ProfileName]*account
	venues   map[domain.VenueID]*venueRecord
	bookings map[domain.BookingID]*bookingRecord
}

// Option configures a Server.
type Option func(*Server)

// WithAPIKey makes the Holidaze routes require the given API key header.
func WithAPIKey(key string) Option { return func(s *Server) { s.apiKey = key } }

// WithSecret sets the HS256 key access tokens are signed with. A random key
// is used otherwise, so tokens do not survive a restart.
func WithSecret(secret []byte) Option { return func(s *Server) { s.secret = secret } }

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now for created/updated stamps.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// New returns an empty server.
func New(opts ...Option) *Server {
	s := &Server{
		log:      zap.NewNop(),
		now:      time.Now,
		accounts: make(map[domain.ProfileName]*account),
		venues:   make(map[domain.VenueID]*venueRecord),
		bookings: make(map[domain.BookingID]*bookingRecord),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.secret) == 0 {
		s.secret = make([]byte, 32)
		_, _ = rand.Read(s.secret)
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", s.handleRegister)
		auth.Post("/login", s.handleLogin)
	})

	r.Route("/holidaze", func(h chi.Router) {
		h.Use(s.requireAPIKey)

		h.Get("/venues", s.handleListVenues)
		h.Get("/venues/search", s.handleSearchVenues)
		h.Get("/venues/{id}", s.handleGetVenue)

		h.Group(func(authed chi.Router) {
			authed.Use(s.requireToken)

			authed.Get("/profiles/{name}", s.handleGetProfile)
			authed.Put("/profiles/{name}", s.handleUpdateProfile)
			authed.Get("/profiles/{name}/bookings", s.handleProfileBookings)
			authed.Get("/profiles/{name}/venues", s.handleProfileVenues)

			authed.Post("/venues", s.handleCreateVenue)
			authed.Put("/venues/{id}", s.handleUpdateVenue)
			authed.Delete("/venues/{id}", s.handleDeleteVenue)

			authed.Post("/bookings", s.handleCreateBooking)
			authed.Get("/bookings/{id}", s.handleGetBooking)
			authed.Delete("/bookings/{id}", s.handleDeleteBooking)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}
		switch got := r.Header.Get(apiKeyHeader); {
		case got == "":
			writeError(w, http.StatusUnauthorized, "No API key header was found")
		case got != s.apiKey:
			writeError(w, http.StatusUnauthorized, "Invalid API key")
		default:
			next.ServeHTTP(w, r)
		}
	})
}

type callerKey struct{}

type tokenClaims struct {
	Name  domain.ProfileName `json:"name"`
	Email string             `json:"email"`
	jwt.RegisteredClaims
}

// issueToken signs an access token for p.
func (s *Server) issueToken(p domain.Profile) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Name:  p.Name,
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Name.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parseToken verifies tok and returns the profile it was issued to.
func (s *Server) parseToken(tok string) (domain.ProfileName, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tok, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	return claims.Name, nil
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || tok == "" {
			writeError(w, http.StatusUnauthorized, "No authorization header was found")
			return
		}
		name, err := s.parseToken(tok)
		if err == nil {
			s.mu.RLock()
			_, known := s.accounts[name]
			s.mu.RUnlock()
			if !known {
				err = errUnknownProfile
			}
		}
		if err != nil {
			s.log.Debug("rejected token", zap.Error(err))
			writeError(w, http.StatusUnauthorized, "Invalid authorization token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, name)))
	})
}

func caller(r *http.Request) domain.ProfileName {
	name, _ := r.Context().Value(callerKey{}).(domain.ProfileName)
	return name
}

type envelope struct {
	Data any              `json:"data"`
	Meta *domain.PageMeta `json:"meta,omitempty"`
}

type apiError struct {
	Errors     []errorMessage `json:"errors"`
	Status     string         `json:"status"`
	StatusCode int            `json:"statusCode"`
}

type errorMessage struct {
	Message string `json:"message"`
}

func writeData(w http.ResponseWriter, status int, data any, meta *domain.PageMeta) {
	if meta == nil {
		meta = &domain.PageMeta{}
	}
	writeJSON(w, status, envelope{Data: data, Meta: meta})
}

func writeError(w http.ResponseWriter, status int, msgs ...string) {
	body := apiError{Status: http.StatusText(status), StatusCode: status}
	for _, m := range msgs {
		body.Errors = append(body.Errors, errorMessage{Message: m})
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var (
	errBadBody        = errors.New("invalid JSON body")
	errUnknownProfile = errors.New("token names an unknown profile")
)

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadBody
	}
	return nil
}
