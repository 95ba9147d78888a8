package app

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"holidaze/internal/api"
	"holidaze/internal/availability"
	"holidaze/internal/domain"
	"holidaze/internal/report"
	"holidaze/internal/services/auth"
	"holidaze/internal/services/booking"
	"holidaze/internal/services/profile"
	"holidaze/internal/services/venue"
	"holidaze/internal/session"
	"holidaze/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Creds    *store.FileStore
	API      *api.HTTP
	Session  *session.Store
	Reporter domain.Reporter

	Auth     *auth.Service
	Venues   *venue.Service
	Bookings *booking.Service
	Profile  *profile.Service

	HTTP  *http.Client
	redis *redis.Client
}

// NewWire constructs the dependency graph from cfg. Failures surfaced to the
// user go to rep as well as to log. A Redis URL that cannot be reached falls
// back to the in-memory cache.
func NewWire(ctx context.Context, cfg Config, log *zap.Logger, rep domain.Reporter) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}
	reporter := report.Multi{report.NewLog(log), rep}

	creds := store.NewFileStore(cfg.Home, cfg.StorePassphrase)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	client := api.NewHTTP(cfg.APIBase, httpClient,
		api.WithAPIKey(cfg.APIKey),
		api.WithTokenSource(creds),
		api.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
		api.WithLogger(log.Named("api")),
	)

	w := &Wire{
		Creds:    creds,
		API:      client,
		Reporter: reporter,
		HTTP:     httpClient,
	}

	var cache availability.Cache = availability.NewMemoryCache(cfg.CacheSize)
	if cfg.RedisURL != "" {
		rc, err := availability.ConnectRedis(ctx, cfg.RedisURL, cfg.RedisTimeout)
		if err != nil {
			log.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		} else {
			w.redis = rc
			cache = availability.NewRedisCache(rc, cfg.CacheTTL)
		}
	}
	memo := availability.NewMemo(cache, log.Named("availability"))

	w.Session = session.New(creds, client, reporter, log.Named("session"))
	w.Auth = auth.New(client, creds, w.Session, reporter, log.Named("auth"))
	w.Venues = venue.New(client, w.Session, memo, reporter, log.Named("venue"), cfg.PageSize)
	w.Bookings = booking.New(client, w.Session, memo, reporter, log.Named("booking"))
	w.Profile = profile.New(client, creds, w.Session, reporter, log.Named("profile"))
	return w, nil
}

// Close releases connections held by the wire.
func (w *Wire) Close() error {
	if w.redis != nil {
		return w.redis.Close()
	}
	return nil
}
