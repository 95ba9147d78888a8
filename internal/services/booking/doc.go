// Package booking submits bookings after checking them against the venue's
// availability, and lists the signed-in user's stays.
package booking
