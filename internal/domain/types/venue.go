package types

import "time"

// VenueID identifies a venue.
type VenueID string

// String returns the string form of the venue ID.
func (id VenueID) String() string { return string(id) }

// VenueMeta lists the amenities of a venue.
type VenueMeta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// Location is where a venue is.
type Location struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
}

// Venue is a bookable listing.
type Venue struct {
	ID          VenueID   `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Media       []Media   `json:"media,omitempty"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Meta        VenueMeta `json:"meta"`
	Location    Location  `json:"location"`
	Owner       *Profile  `json:"owner,omitempty"`
	Bookings    []Booking `json:"bookings,omitempty"`
}

// VenueInput is the writable part of a venue, used for create and update.
type VenueInput struct {
	Name        string    `json:"name" validate:"notblank"`
	Description string    `json:"description" validate:"notblank"`
	Media       []Media   `json:"media" validate:"dive"`
	Price       float64   `json:"price" validate:"min=0"`
	MaxGuests   int       `json:"maxGuests" validate:"min=1,max=100"`
	Rating      float64   `json:"rating" validate:"min=0,max=5"`
	Meta        VenueMeta `json:"meta"`
	Location    Location  `json:"location"`
}
