package interfaces

import domaintypes "holidaze/internal/domain/types"

// CredentialStore persists the signed-in principal across runs.
// A missing value is reported with ok=false, not an error.
type CredentialStore interface {
	SaveToken(token string) error
	LoadToken() (token string, ok bool, err error)
	SaveProfile(profile domaintypes.Profile) error
	LoadProfile() (profile domaintypes.Profile, ok bool, err error)
	// Clear removes both the token and the profile.
	Clear() error
}
