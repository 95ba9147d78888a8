// Package domain holds the Holidaze wire types (profiles, venues, bookings)
// and the contracts the services depend on. Subpackages types and interfaces
// are re-exported from exports.go so callers import a single package.
package domain
