// Package availability derives unavailable calendar days from a venue's
// bookings and gates proposed booking ranges against them.
//
// # Model
//
// All comparisons happen on Day values (year, month, day) so the time of day
// and the zone of the API timestamps never cause a mismatch. A booking covers
// every day of its inclusive [DateFrom, DateTo] range; the booked set of a
// venue is the union over all its bookings.
//
// # Operations
//
//   - ComputeBookedDates expands bookings into a DaySet.
//   - IsDateDisabled tells a calendar whether to grey out a cell.
//   - ValidateRange / CheckRange accept or reject a selection. A selection
//     with a missing end, with From after To, or touching any booked day is
//     rejected. CheckRange reports why with a *ValidationError.
//   - FormatDate / ParseDay convert to and from YYYY-MM-DD.
//
// The functions above are pure. Memo adds optional memoization keyed by venue
// ID and a content hash of the booking list, backed by a Cache (in-memory LRU
// or Redis).
package availability
