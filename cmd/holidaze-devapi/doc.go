// Package main runs the in-memory Holidaze API used during development and
// tests. Point the CLI at it with --api http://127.0.0.1:8080.
//
// HTTP API
//
//	POST   /auth/register                     Create a profile
//	POST   /auth/login                        Exchange credentials for a token
//	GET    /holidaze/profiles/{name}          Profile
//	PUT    /holidaze/profiles/{name}          Update your own profile
//	GET    /holidaze/profiles/{name}/bookings Bookings (?_venue=true)
//	GET    /holidaze/profiles/{name}/venues   Venues (?_bookings=true)
//	GET    /holidaze/venues                   Paged list (?page, limit, sort, sortOrder)
//	GET    /holidaze/venues/search?q=         Paged search
//	GET    /holidaze/venues/{id}              Venue (?_bookings, _owner)
//	POST   /holidaze/venues                   Create (venue managers)
//	PUT    /holidaze/venues/{id}              Update your venue
//	DELETE /holidaze/venues/{id}              Delete your venue
//	POST   /holidaze/bookings                 Book; overlapping ranges are refused
//	GET    /holidaze/bookings/{id}            Booking (?_venue, _customer)
//	DELETE /holidaze/bookings/{id}            Cancel your booking
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - With --seed a demo venue manager (demo_host@stud.noroff.no /
//     holidaze-demo) and three venues are created at startup.
//   - When HOLIDAZE_API_KEY is set, /holidaze routes require it in the
//     X-Noroff-API-Key header.
//   - The default listen address is 127.0.0.1:8080 (HOLIDAZE_DEVAPI_ADDR).
package main
