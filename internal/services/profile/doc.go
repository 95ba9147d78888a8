// Package profile edits the signed-in user's profile.
//
// Edits are applied to the session optimistically, sent to the API, and then
// either reconciled with a refresh or rolled back.
package profile
