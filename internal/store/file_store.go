package store

import (
	"errors"
	"path/filepath"
	"sync"

	"holidaze/internal/domain"
)

const (
	tokenFilename   = "token.json"
	profileFilename = "profile.json"
)

// tokenRecord is the on-disk form of the token key. Exactly one of Token and
// Sealed is set.
type tokenRecord struct {
	Token  string  `json:"token,omitempty"`
	Sealed *sealed `json:"sealed,omitempty"`
}

// FileStore persists the token and profile keys under dir.
type FileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir. A non-empty passphrase seals
// the token at rest.
func NewFileStore(dir, passphrase string) *FileStore {
	return &FileStore{dir: dir, passphrase: passphrase}
}

// SaveToken stores the bearer token.
func (s *FileStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := tokenRecord{Token: token}
	if s.passphrase != "" {
		N, r, p := scryptParamsDefault()
		sl, err := seal(s.passphrase, []byte(token), N, r, p)
		if err != nil {
			return err
		}
		rec = tokenRecord{Sealed: sl}
	}
	return writeJSON(filepath.Join(s.dir, tokenFilename), rec, 0o600)
}

// LoadToken returns the stored bearer token.
func (s *FileStore) LoadToken() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec tokenRecord
	found, err := readJSON(filepath.Join(s.dir, tokenFilename), &rec)
	if err != nil || !found {
		return "", false, err
	}
	if rec.Sealed == nil {
		return rec.Token, rec.Token != "", nil
	}
	if s.passphrase == "" {
		return "", false, ErrPassphraseRequired
	}
	raw, err := open(s.passphrase, rec.Sealed)
	if err != nil {
		return "", false, err
	}
	return string(raw), true, nil
}

// Token returns the stored token or "" when none is stored. It lets the store
// act as the API client's token source.
func (s *FileStore) Token() (string, error) {
	tok, _, err := s.LoadToken()
	return tok, err
}

// SaveProfile stores the profile summary.
func (s *FileStore) SaveProfile(profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, profileFilename), profile, 0o600)
}

// LoadProfile returns the stored profile summary.
func (s *FileStore) LoadProfile() (domain.Profile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile domain.Profile
	found, err := readJSON(filepath.Join(s.dir, profileFilename), &profile)
	if err != nil || !found {
		return domain.Profile{}, false, err
	}
	return profile, true, nil
}

// Clear removes both keys.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Join(
		removeFile(filepath.Join(s.dir, tokenFilename)),
		removeFile(filepath.Join(s.dir, profileFilename)),
	)
}

// Compile-time assertion that FileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*FileStore)(nil)
