// Package commands defines the holidaze CLI and wires dependencies for subcommands.
//
// Commands
//
//   - signin / signup / signout   Manage the stored session
//   - whoami                      Print the signed-in profile
//   - profile update              Edit bio, avatar, banner or manager status
//   - venues list|search|show     Browse venues
//   - venues calendar             Show a month with booked days marked
//   - book                        Book a venue for a date range
//   - bookings [cancel]           List or cancel your bookings
//   - manage ...                  Venue manager tools
//
// # Implementation
//
// The root command loads configuration, builds the logger and the dependency
// graph (stores, API client, session, services), and initializes the session
// before any subcommand runs. The session store is also attached to the
// command context.
package commands
