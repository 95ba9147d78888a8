package devapi

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"holidaze/internal/domain"
)

type account struct {
	profile domain.Profile
	hash    []byte
}

type venueRecord struct {
	venue domain.Venue
	owner domain.ProfileName
}

type bookingRecord struct {
	booking  domain.Booking
	venue    domain.VenueID
	customer domain.ProfileName
}

// expand controls which relations a venue or booking view carries.
type expand struct {
	owner    bool
	bookings bool
	venue    bool
	customer bool
}

func expandFrom(q url.Values) expand {
	on := func(k string) bool { return q.Get(k) == "true" }
	return expand{
		owner:    on("_owner"),
		bookings: on("_bookings"),
		venue:    on("_venue"),
		customer: on("_customer"),
	}
}

// venueView builds the response form of a venue. Caller holds s.mu.
func (s *Server) venueView(rec *venueRecord, ex expand) domain.Venue {
	v := rec.venue
	if ex.owner {
		if acc, ok := s.accounts[rec.owner]; ok {
			p := acc.profile
			v.Owner = &p
		}
	}
	if ex.bookings {
		v.Bookings = []domain.Booking{}
		for _, b := range s.bookingsFor(rec.venue.ID) {
			v.Bookings = append(v.Bookings, s.bookingView(b, expand{customer: true}))
		}
	}
	return v
}

// bookingView builds the response form of a booking. Caller holds s.mu.
func (s *Server) bookingView(rec *bookingRecord, ex expand) domain.Booking {
	b := rec.booking
	if ex.venue {
		if vr, ok := s.venues[rec.venue]; ok {
			v := vr.venue
			b.Venue = &v
		}
	}
	if ex.customer {
		if acc, ok := s.accounts[rec.customer]; ok {
			p := acc.profile
			b.Customer = &p
		}
	}
	return b
}

// bookingsFor returns a venue's bookings ordered by start date. Caller holds s.mu.
func (s *Server) bookingsFor(id domain.VenueID) []*bookingRecord {
	var out []*bookingRecord
	for _, b := range s.bookings {
		if b.venue == id {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].booking.DateFrom.Before(out[j].booking.DateFrom)
	})
	return out
}

// sortVenues orders venues by the query's sort field; created descending
// when unset.
func sortVenues(vs []domain.Venue, field, order string) {
	less := func(a, b domain.Venue) bool { return a.Created.Before(b.Created) }
	switch field {
	case "name":
		less = func(a, b domain.Venue) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "price":
		less = func(a, b domain.Venue) bool { return a.Price < b.Price }
	case "rating":
		less = func(a, b domain.Venue) bool { return a.Rating < b.Rating }
	case "maxGuests":
		less = func(a, b domain.Venue) bool { return a.MaxGuests < b.MaxGuests }
	}
	desc := order != "asc"
	sort.SliceStable(vs, func(i, j int) bool {
		if desc {
			return less(vs[j], vs[i])
		}
		return less(vs[i], vs[j])
	})
}

// paginate cuts one page out of items. Page numbers start at 1.
func paginate[T any](items []T, q url.Values) ([]T, domain.PageMeta) {
	page := positiveInt(q.Get("page"), 1)
	limit := positiveInt(q.Get("limit"), defaultLimit)

	total := len(items)
	pageCount := (total + limit - 1) / limit
	meta := domain.PageMeta{
		IsFirstPage: page == 1,
		IsLastPage:  page >= pageCount,
		CurrentPage: page,
		PageCount:   pageCount,
		TotalCount:  total,
	}
	if page > 1 {
		prev := page - 1
		meta.PreviousPage = &prev
	}
	if page < pageCount {
		next := page + 1
		meta.NextPage = &next
	}

	start := (page - 1) * limit
	if start >= total {
		return []T{}, meta
	}
	end := min(start+limit, total)
	return items[start:end], meta
}

func positiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
