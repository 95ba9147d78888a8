package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"holidaze/internal/domain"
	"holidaze/internal/store"
)

func TestToken_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var creds domain.CredentialStore = store.NewFileStore(home, "")

	if _, ok, err := creds.LoadToken(); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}
	if err := creds.SaveToken("abc.def"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	got, ok, err := creds.LoadToken()
	if err != nil || !ok {
		t.Fatalf("load token: ok=%v err=%v", ok, err)
	}
	if got != "abc.def" {
		t.Fatalf("token: got %q", got)
	}
}

func TestProfile_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	s := store.NewFileStore(home, "")

	p := domain.Profile{
		Name:         "alice",
		Email:        "alice@stud.noroff.no",
		Avatar:       &domain.Media{URL: "https://img/a.png", Alt: "a"},
		VenueManager: true,
	}
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	got, ok, err := s.LoadProfile()
	if err != nil || !ok {
		t.Fatalf("load profile: ok=%v err=%v", ok, err)
	}
	if got.Name != p.Name || got.Avatar == nil || got.Avatar.URL != p.Avatar.URL || !got.VenueManager {
		t.Fatalf("mismatch after load: %+v", got)
	}

	info, err := os.Stat(filepath.Join(home, "profile.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode: got %v", info.Mode().Perm())
	}
}

func TestClear_RemovesBothKeys(t *testing.T) {
	home := t.TempDir()
	s := store.NewFileStore(home, "")

	if err := s.SaveToken("t"); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveProfile(domain.Profile{Name: "alice"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.LoadToken(); ok {
		t.Fatal("token survived clear")
	}
	if _, ok, _ := s.LoadProfile(); ok {
		t.Fatal("profile survived clear")
	}
	// Clearing twice is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestToken_Sealed(t *testing.T) {
	home := t.TempDir()
	s := store.NewFileStore(home, "correct horse")

	if err := s.SaveToken("secret-token"); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(home, "token.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) == "" || strings.Contains(string(raw), "secret-token") {
		t.Fatal("token stored in the clear")
	}

	got, err := s.Token()
	if err != nil || got != "secret-token" {
		t.Fatalf("token: got %q err=%v", got, err)
	}

	if _, _, err := store.NewFileStore(home, "wrong").LoadToken(); err != store.ErrWrongPassphrase {
		t.Fatalf("wrong passphrase: got %v", err)
	}
	if _, _, err := store.NewFileStore(home, "").LoadToken(); err != store.ErrPassphraseRequired {
		t.Fatalf("missing passphrase: got %v", err)
	}
}

func TestProfile_Corrupt(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "profile.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.NewFileStore(home, "").LoadProfile(); err == nil {
		t.Fatal("expected error for corrupt profile")
	}
}
