package commands

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

const maxStars = 5

// stars renders a 0-5 rating as full, half and empty stars.
func stars(rating float64) string {
	rating = math.Max(0, math.Min(maxStars, rating))
	full := int(rating)
	half := rating-float64(full) >= 0.5
	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	n := full
	if half {
		b.WriteString("½")
		n++
	}
	b.WriteString(strings.Repeat("☆", maxStars-n))
	return b.String()
}

func money(v float64) string { return fmt.Sprintf("%.0f NOK", v) }

func printProfile(w io.Writer, p domain.Profile) {
	fmt.Fprintf(w, "%s <%s>\n", p.Name, p.Email)
	if p.VenueManager {
		fmt.Fprintln(w, "  venue manager")
	}
	if p.Bio != "" {
		fmt.Fprintf(w, "  %s\n", p.Bio)
	}
	if p.Avatar != nil && p.Avatar.URL != "" {
		fmt.Fprintf(w, "  avatar: %s\n", p.Avatar.URL)
	}
	if p.Banner != nil && p.Banner.URL != "" {
		fmt.Fprintf(w, "  banner: %s\n", p.Banner.URL)
	}
}

func printVenueLine(w io.Writer, v domain.Venue) {
	fmt.Fprintf(w, "%-36s  %-24s %s  %s/night  up to %d\n",
		v.ID, v.Name, stars(v.Rating), money(v.Price), v.MaxGuests)
}

func printVenuePage(w io.Writer, page domain.Page[domain.Venue]) {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No venues found")
		return
	}
	for _, v := range page.Items {
		printVenueLine(w, v)
	}
	if page.Meta.PageCount > 0 {
		fmt.Fprintf(w, "page %d of %d (%d venues)\n", page.Meta.CurrentPage, page.Meta.PageCount, page.Meta.TotalCount)
	}
}

func printVenue(w io.Writer, v domain.Venue) {
	fmt.Fprintf(w, "%s  %s\n", v.Name, stars(v.Rating))
	fmt.Fprintf(w, "  %s\n", v.Description)
	fmt.Fprintf(w, "  %s per night, up to %d guests\n", money(v.Price), v.MaxGuests)
	if loc := location(v.Location); loc != "" {
		fmt.Fprintf(w, "  %s\n", loc)
	}
	var amenities []string
	for _, a := range []struct {
		ok   bool
		name string
	}{
		{v.Meta.Wifi, "wifi"},
		{v.Meta.Parking, "parking"},
		{v.Meta.Breakfast, "breakfast"},
		{v.Meta.Pets, "pets"},
	} {
		if a.ok {
			amenities = append(amenities, a.name)
		}
	}
	if len(amenities) > 0 {
		fmt.Fprintf(w, "  amenities: %s\n", strings.Join(amenities, ", "))
	}
	if v.Owner != nil {
		fmt.Fprintf(w, "  hosted by %s\n", v.Owner.Name)
	}
	for _, m := range v.Media {
		fmt.Fprintf(w, "  image: %s\n", m.URL)
	}
}

func location(l domain.Location) string {
	var parts []string
	for _, p := range []string{l.Address, l.City, l.Zip, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// printBookedRanges collapses the booked days into inclusive ranges.
func printBookedRanges(w io.Writer, booked availability.DaySet) {
	days := booked.Sorted()
	if len(days) == 0 {
		fmt.Fprintln(w, "  no bookings yet")
		return
	}
	fmt.Fprintln(w, "  unavailable:")
	start, prev := days[0], days[0]
	flush := func() {
		if start == prev {
			fmt.Fprintf(w, "    %s\n", start)
			return
		}
		fmt.Fprintf(w, "    %s → %s\n", start, prev)
	}
	for _, d := range days[1:] {
		if d == prev.AddDays(1) {
			prev = d
			continue
		}
		flush()
		start, prev = d, d
	}
	flush()
}

func printCalendar(w io.Writer, title string, year int, month time.Month, booked availability.DaySet) {
	fmt.Fprintf(w, "%s  %s %d\n", title, month, year)
	fmt.Fprintln(w, "Mo Tu We Th Fr Sa Su")
	for _, week := range availability.Month(year, month, booked) {
		cells := make([]string, len(week))
		for i, c := range week {
			switch {
			case !c.InMonth:
				cells[i] = "  "
			case c.Disabled:
				cells[i] = "xx"
			default:
				cells[i] = fmt.Sprintf("%2d", c.Day.Day)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
	fmt.Fprintln(w, "xx = unavailable")
}

func printBookings(w io.Writer, bs []domain.Booking, withVenue bool) {
	if len(bs) == 0 {
		fmt.Fprintln(w, "No bookings")
		return
	}
	for _, b := range bs {
		from := availability.DayOf(b.DateFrom)
		to := availability.DayOf(b.DateTo)
		line := fmt.Sprintf("%s  %s → %s  %d guest(s)", b.ID, from, to, b.Guests)
		if withVenue && b.Venue != nil {
			line += "  " + b.Venue.Name
		}
		if !withVenue && b.Customer != nil {
			line += "  " + b.Customer.Name.String()
		}
		fmt.Fprintln(w, line)
	}
}
