// Package session holds the signed-in user's profile for the lifetime of the
// process.
//
// A Store loads the persisted profile name, fetches the current profile from
// the API and tracks whether the client is Unauthenticated, Loading or
// Authenticated. Concurrent fetches are ordered by a generation counter so a
// slow response can never overwrite a newer one. Optimistic profile edits go
// through Apply, which returns a Pending that is either committed (reconciled
// against the server) or rolled back.
package session
