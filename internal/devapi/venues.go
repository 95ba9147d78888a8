package devapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"holidaze/internal/domain"
	"holidaze/internal/validation"
)

var venueMessages = map[string]string{
	"name":        "Name is required",
	"description": "Description is required",
	"price":       "Price cannot be negative",
	"maxGuests":   "Max guests must be between 1 and 100",
	"rating":      "Rating must be between 0 and 5",
	"media":       "Media URL is required",
}

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	s.listVenues(w, r, func(domain.Venue) bool { return true })
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	s.listVenues(w, r, func(v domain.Venue) bool {
		return strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(v.Description), q)
	})
}

func (s *Server) listVenues(w http.ResponseWriter, r *http.Request, keep func(domain.Venue) bool) {
	q := r.URL.Query()
	ex := expandFrom(q)

	s.mu.RLock()
	out := []domain.Venue{}
	for _, rec := range s.venues {
		if keep(rec.venue) {
			out = append(out, s.venueView(rec, ex))
		}
	}
	s.mu.RUnlock()

	sortVenues(out, q.Get("sort"), q.Get("sortOrder"))
	page, meta := paginate(out, q)
	writeData(w, http.StatusOK, page, &meta)
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id := domain.VenueID(chi.URLParam(r, "id"))
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.venues[id]
	if !ok {
		writeError(w, http.StatusNotFound, "No venue with such ID")
		return
	}
	writeData(w, http.StatusOK, s.venueView(rec, expandFrom(r.URL.Query())), nil)
}

func validateVenue(in domain.VenueInput) []string {
	return validation.Struct(in, venueMessages).Messages()
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var in domain.VenueInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if problems := validateVenue(in); len(problems) > 0 {
		writeError(w, http.StatusBadRequest, problems...)
		return
	}

	me := caller(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc, ok := s.accounts[me]; !ok || !acc.profile.VenueManager {
		writeError(w, http.StatusForbidden, "You must be a venue manager to create a venue")
		return
	}
	now := s.now().UTC()
	rec := &venueRecord{owner: me, venue: venueFrom(in)}
	rec.venue.ID = domain.VenueID(uuid.NewString())
	rec.venue.Created = now
	rec.venue.Updated = now
	s.venues[rec.venue.ID] = rec
	writeData(w, http.StatusCreated, s.venueView(rec, expand{owner: true}), nil)
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id := domain.VenueID(chi.URLParam(r, "id"))
	var in domain.VenueInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if problems := validateVenue(in); len(problems) > 0 {
		writeError(w, http.StatusBadRequest, problems...)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.ownedVenue(w, r, id)
	if !ok {
		return
	}
	created := rec.venue.Created
	rec.venue = venueFrom(in)
	rec.venue.ID = id
	rec.venue.Created = created
	rec.venue.Updated = s.now().UTC()
	writeData(w, http.StatusOK, s.venueView(rec, expand{owner: true}), nil)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id := domain.VenueID(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ownedVenue(w, r, id); !ok {
		return
	}
	delete(s.venues, id)
	for bid, b := range s.bookings {
		if b.venue == id {
			delete(s.bookings, bid)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// ownedVenue looks up a venue the caller owns, writing the error response
// when it cannot. Caller holds s.mu.
func (s *Server) ownedVenue(w http.ResponseWriter, r *http.Request, id domain.VenueID) (*venueRecord, bool) {
	rec, ok := s.venues[id]
	if !ok {
		writeError(w, http.StatusNotFound, "No venue with such ID")
		return nil, false
	}
	if rec.owner != caller(r) {
		writeError(w, http.StatusForbidden, "You do not have permission to modify this venue")
		return nil, false
	}
	return rec, true
}

func venueFrom(in domain.VenueInput) domain.Venue {
	media := in.Media
	if media == nil {
		media = []domain.Media{}
	}
	return domain.Venue{
		Name:        in.Name,
		Description: in.Description,
		Media:       media,
		Price:       in.Price,
		MaxGuests:   in.MaxGuests,
		Rating:      in.Rating,
		Meta:        in.Meta,
		Location:    in.Location,
	}
}
