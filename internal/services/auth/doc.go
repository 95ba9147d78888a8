// Package auth signs users in and out.
//
// Sign-in exchanges credentials for a bearer token, persists the token and
// the profile, then loads the session. Sign-up validates the registration
// locally before calling the API and signs the new user in on success.
package auth
