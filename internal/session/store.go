package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"holidaze/internal/domain"
	"holidaze/internal/report"
)

// ErrSuperseded is returned by a fetch whose response arrived after a newer
// fetch had started. The stale response is discarded.
var ErrSuperseded = errors.New("session: superseded by a newer fetch")

// State is the authentication state of a Store.
type State int

const (
	Unauthenticated State = iota
	Loading
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of the store's observable state.
type Snapshot struct {
	User     *domain.Profile
	Loading  bool
	Updating bool
	State    State
}

// Store is the session state container. It is safe for concurrent use.
type Store struct {
	creds    domain.CredentialStore
	client   domain.ProfileClient
	reporter domain.Reporter
	log      *zap.Logger

	mu         sync.Mutex
	user       *domain.Profile
	state      State
	loading    bool
	refreshing int
	gen        uint64
	version    uint64
	subs       map[int]func(Snapshot)
	nextSub    int
}

// New constructs a Store. reporter and log may be nil.
func New(
	creds domain.CredentialStore,
	client domain.ProfileClient,
	reporter domain.Reporter,
	log *zap.Logger,
) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		creds:    creds,
		client:   client,
		reporter: report.OrNop(reporter),
		log:      log,
		subs:     make(map[int]func(Snapshot)),
	}
}

// Initialize loads the persisted profile name and, when there is one, fetches
// the profile. A missing profile leaves the store Unauthenticated without a
// network call. Fetch failures are reported and returned.
func (s *Store) Initialize(ctx context.Context) error {
	s.must()
	return s.fetch(ctx)
}

// Refresh re-fetches the signed-in profile. Updating is true while it runs.
func (s *Store) Refresh(ctx context.Context) error {
	s.must()
	s.mu.Lock()
	s.refreshing++
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	defer func() {
		s.mu.Lock()
		s.refreshing--
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.notify(snap)
	}()
	return s.fetch(ctx)
}

func (s *Store) fetch(ctx context.Context) error {
	stored, ok, err := s.creds.LoadProfile()
	if err != nil {
		s.reporter.Report(ctx, err)
		s.settle(s.begin(false), nil, err)
		return err
	}
	if !ok || stored.Name == "" {
		s.settle(s.begin(false), nil, nil)
		return nil
	}

	gen := s.begin(true)
	profile, err := s.client.GetProfile(ctx, stored.Name)
	if err != nil {
		if !s.settle(gen, nil, err) {
			return ErrSuperseded
		}
		s.reporter.Report(ctx, err)
		return err
	}
	if !s.settle(gen, &profile, nil) {
		return ErrSuperseded
	}
	return nil
}

// begin starts a new generation. When loading is true the store enters the
// Loading state until the generation settles.
func (s *Store) begin(loading bool) uint64 {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if loading {
		s.loading = true
		s.state = Loading
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	if loading {
		s.notify(snap)
	}
	return gen
}

// settle records the outcome of generation gen. It reports false, leaving the
// state untouched, when a newer generation has started since.
func (s *Store) settle(gen uint64, p *domain.Profile, err error) bool {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.Debug("dropping stale profile response",
			zap.Uint64("generation", gen), zap.Error(err))
		return false
	}
	if err != nil || p == nil {
		s.user = nil
		s.state = Unauthenticated
	} else {
		s.user = p
		s.state = Authenticated
	}
	s.loading = false
	s.version++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Debug("session settled", zap.Stringer("state", snap.State))
	s.notify(snap)
	return true
}

// UpdateLocal replaces the in-memory profile without a round trip.
func (s *Store) UpdateLocal(p domain.Profile) {
	s.must()
	s.Apply(p)
}

// Pending is an optimistic profile change awaiting confirmation.
type Pending struct {
	s        *Store
	prev     *domain.Profile
	state    State
	version  uint64
	resolved bool
}

// Apply replaces the in-memory profile immediately and returns a handle to
// commit or roll back the change.
func (s *Store) Apply(p domain.Profile) *Pending {
	s.must()
	s.mu.Lock()
	pend := &Pending{s: s, prev: s.user, state: s.state}
	s.user = &p
	if s.state != Loading {
		s.state = Authenticated
	}
	s.version++
	pend.version = s.version
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return pend
}

// Commit reconciles the applied change with the server by refreshing.
func (p *Pending) Commit(ctx context.Context) error {
	p.s.mu.Lock()
	p.resolved = true
	p.s.mu.Unlock()
	return p.s.Refresh(ctx)
}

// Rollback restores the profile seen before Apply. It reports false, doing
// nothing, when the store has been written since or the change was already
// resolved.
func (p *Pending) Rollback() bool {
	s := p.s
	s.mu.Lock()
	if p.resolved || s.version != p.version {
		p.resolved = true
		s.mu.Unlock()
		return false
	}
	p.resolved = true
	s.user = p.prev
	s.state = p.state
	s.version++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Reset discards the in-memory session and invalidates in-flight fetches.
// Persisted credentials are left to the caller.
func (s *Store) Reset() {
	s.must()
	s.mu.Lock()
	s.gen++
	s.user = nil
	s.state = Unauthenticated
	s.loading = false
	s.version++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.must()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// User returns a copy of the signed-in profile, or nil.
func (s *Store) User() *domain.Profile { return s.Snapshot().User }

// State returns the authentication state.
func (s *Store) State() State { return s.Snapshot().State }

// Subscribe registers fn to be called with a snapshot after every change. The
// returned function unregisters it.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.must()
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Loading:  s.loading,
		Updating: s.refreshing > 0,
		State:    s.state,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) must() {
	if s == nil {
		panic(ErrNoSession)
	}
}
