// Package store provides file-based persistence for the signed-in principal.
//
// It is the on-disk counterpart of browser local storage: two keys, the
// bearer token and the profile summary, each serialised as JSON in the
// user's configured home directory. Writes go through a temp file and an
// atomic rename; a missing file reads as "absent", not as an error. All
// methods are concurrency-safe via internal locking.
//
// When a passphrase is configured the token is sealed at rest with an
// scrypt-derived ChaCha20-Poly1305 key.
package store
