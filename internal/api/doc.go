// Package api provides an HTTP implementation of the domain.APIClient
// interface for the Holidaze REST API.
//
// Every request carries a bearer token (when the token source has one), the
// API key header (when configured) and a JSON content type when a body is
// sent. Successful responses are unwrapped from the {data, meta} envelope.
// Non-2xx responses become *Error values built from the
// {statusCode, errors: [{message}]} body, falling back to the HTTP status.
//
// Requests pass through a client-side rate limiter and accept a context for
// cancellation and deadlines. Nothing is retried.
package api
