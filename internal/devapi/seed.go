package devapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"holidaze/internal/domain"
)

// Demo account created by Seed.
const (
	DemoManager  domain.ProfileName = "demo_host"
	DemoEmail                       = "demo_host@stud.noroff.no"
	DemoPassword                    = "holidaze-demo"
)

// Seed registers the demo venue manager and gives it a few venues.
func (s *Server) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[DemoManager]; ok {
		return nil
	}
	s.accounts[DemoManager] = &account{
		hash: hash,
		profile: domain.Profile{
			Name:         DemoManager,
			Email:        DemoEmail,
			Bio:          "Hosting since yesterday.",
			VenueManager: true,
		},
	}

	now := s.now().UTC()
	for i, in := range demoVenues {
		v := venueFrom(in)
		v.ID = domain.VenueID(uuid.NewString())
		v.Created = now.Add(-time.Duration(len(demoVenues)-i) * time.Hour)
		v.Updated = v.Created
		s.venues[v.ID] = &venueRecord{venue: v, owner: DemoManager}
	}
	return nil
}

var demoVenues = []domain.VenueInput{
	{
		Name:        "Fjord Cabin",
		Description: "Quiet cabin by the water with a wood stove.",
		Media:       []domain.Media{{URL: "https://images.example.com/fjord.jpg", Alt: "Cabin by a fjord"}},
		Price:       1200,
		MaxGuests:   4,
		Rating:      4.5,
		Meta:        domain.VenueMeta{Wifi: true, Parking: true, Pets: true},
		Location:    domain.Location{City: "Bergen", Country: "Norway", Continent: "Europe"},
	},
	{
		Name:        "City Loft",
		Description: "Bright loft in the centre, close to everything.",
		Price:       950,
		MaxGuests:   2,
		Rating:      4,
		Meta:        domain.VenueMeta{Wifi: true, Breakfast: true},
		Location:    domain.Location{City: "Oslo", Country: "Norway", Continent: "Europe"},
	},
	{
		Name:        "Beach House",
		Description: "Sand at the door and room for the whole family.",
		Price:       2100,
		MaxGuests:   8,
		Rating:      3.5,
		Meta:        domain.VenueMeta{Parking: true, Breakfast: true, Pets: true},
		Location:    domain.Location{City: "Kristiansand", Country: "Norway", Continent: "Europe"},
	},
}
