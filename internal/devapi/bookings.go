package devapi

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

// maxBookingNights caps a stay so a single booking cannot expand into an
// unbounded number of booked days.
const maxBookingNights = 365

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var in domain.BookingRequest
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	from, errFrom := parseBookingDate(in.DateFrom)
	to, errTo := parseBookingDate(in.DateTo)
	if errFrom != nil || errTo != nil {
		writeError(w, http.StatusBadRequest, "dateFrom and dateTo must be valid dates")
		return
	}
	if availability.DaysBetween(from, to) > maxBookingNights {
		writeError(w, http.StatusBadRequest, "A booking cannot be longer than 365 nights")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.venues[in.VenueID]
	if !ok {
		writeError(w, http.StatusNotFound, "No venue with such ID")
		return
	}
	if in.Guests < 1 || in.Guests > rec.venue.MaxGuests {
		writeError(w, http.StatusBadRequest, "Guests must be between 1 and the venue's max guests")
		return
	}

	existing := make([]domain.Booking, 0)
	for _, b := range s.bookingsFor(in.VenueID) {
		existing = append(existing, b.booking)
	}
	if err := availability.CheckRange(&from, &to, availability.ComputeBookedDates(existing)); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, availability.ErrUnavailable) {
			status = http.StatusConflict
		}
		writeError(w, status, err.Error())
		return
	}

	now := s.now().UTC()
	b := &bookingRecord{
		venue:    in.VenueID,
		customer: caller(r),
		booking: domain.Booking{
			ID:       domain.BookingID(uuid.NewString()),
			DateFrom: from.Time(),
			DateTo:   to.Time(),
			Guests:   in.Guests,
			Created:  now,
			Updated:  now,
		},
	}
	s.bookings[b.booking.ID] = b
	writeData(w, http.StatusCreated, s.bookingView(b, expand{}), nil)
}

// parseBookingDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func parseBookingDate(v string) (availability.Day, error) {
	if d, err := availability.ParseDay(v); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return availability.Day{}, err
	}
	return availability.DayOf(t.UTC()), nil
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	id := domain.BookingID(chi.URLParam(r, "id"))
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		writeError(w, http.StatusNotFound, "No booking with such ID")
		return
	}
	writeData(w, http.StatusOK, s.bookingView(b, expandFrom(r.URL.Query())), nil)
}

func (s *Server) handleDeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := domain.BookingID(chi.URLParam(r, "id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		writeError(w, http.StatusNotFound, "No booking with such ID")
		return
	}
	if b.customer != caller(r) {
		writeError(w, http.StatusForbidden, "You do not have permission to delete this booking")
		return
	}
	delete(s.bookings, id)
	w.WriteHeader(http.StatusNoContent)
}

func sortBookings(bs []domain.Booking) {
	sort.Slice(bs, func(i, j int) bool { return bs[i].DateFrom.Before(bs[j].DateFrom) })
}
