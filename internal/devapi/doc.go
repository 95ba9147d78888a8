// Package devapi is an in-memory server speaking the subset of the Holidaze
// API the client uses.
//
// It keeps profiles, venues and bookings in maps guarded by a mutex, issues
// HS256-signed JWT access tokens on login, and answers with the same {data, meta}
// success envelope and {errors, status, statusCode} failure envelope as the
// hosted API. Booking requests are checked against the venue's existing
// bookings with the availability engine, so overlapping stays are refused.
//
// Nothing is persisted; restarting the server forgets everything.
package devapi
