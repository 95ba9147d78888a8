package devapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"holidaze/internal/domain"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	name := domain.ProfileName(chi.URLParam(r, "name"))
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[name]
	if !ok {
		writeError(w, http.StatusNotFound, "No profile with this name")
		return
	}
	writeData(w, http.StatusOK, acc.profile, nil)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	name := domain.ProfileName(chi.URLParam(r, "name"))
	if name != caller(r) {
		writeError(w, http.StatusForbidden, "You can only update your own profile")
		return
	}
	var in domain.ProfileUpdate
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.Bio == nil && in.Avatar == nil && in.Banner == nil && in.VenueManager == nil {
		writeError(w, http.StatusBadRequest, "You must provide at least one of: bio, avatar, banner, venueManager")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[name]
	if !ok {
		writeError(w, http.StatusNotFound, "No profile with this name")
		return
	}
	if in.Bio != nil {
		acc.profile.Bio = *in.Bio
	}
	if in.Avatar != nil {
		acc.profile.Avatar = in.Avatar
	}
	if in.Banner != nil {
		acc.profile.Banner = in.Banner
	}
	if in.VenueManager != nil {
		acc.profile.VenueManager = *in.VenueManager
	}
	writeData(w, http.StatusOK, acc.profile, nil)
}

func (s *Server) handleProfileBookings(w http.ResponseWriter, r *http.Request) {
	name := domain.ProfileName(chi.URLParam(r, "name"))
	ex := expandFrom(r.URL.Query())

	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.accounts[name]; !ok {
		writeError(w, http.StatusNotFound, "No profile with this name")
		return
	}
	out := []domain.Booking{}
	for _, b := range s.bookings {
		if b.customer == name {
			out = append(out, s.bookingView(b, ex))
		}
	}
	sortBookings(out)
	page, meta := paginate(out, r.URL.Query())
	writeData(w, http.StatusOK, page, &meta)
}

func (s *Server) handleProfileVenues(w http.ResponseWriter, r *http.Request) {
	name := domain.ProfileName(chi.URLParam(r, "name"))
	ex := expandFrom(r.URL.Query())

	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.accounts[name]; !ok {
		writeError(w, http.StatusNotFound, "No profile with this name")
		return
	}
	out := []domain.Venue{}
	for _, v := range s.venues {
		if v.owner == name {
			out = append(out, s.venueView(v, ex))
		}
	}
	sortVenues(out, r.URL.Query().Get("sort"), r.URL.Query().Get("sortOrder"))
	page, meta := paginate(out, r.URL.Query())
	writeData(w, http.StatusOK, page, &meta)
}
