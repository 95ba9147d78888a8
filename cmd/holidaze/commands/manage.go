package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"holidaze/internal/domain"
	"holidaze/internal/services/venue"
)

func manageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manage",
		Short: "Venue manager tools",
	}
	cmd.AddCommand(
		manageListCmd(),
		manageCreateCmd(),
		manageUpdateCmd(),
		manageDeleteCmd(),
		manageBookingsCmd(),
	)
	return cmd
}

func manageListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your venues and their bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := appCtx.Venues.ManagerVenues(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(vs) == 0 {
				fmt.Fprintln(out, "You have no venues yet")
				return nil
			}
			for _, v := range vs {
				printVenueLine(out, v)
				fmt.Fprintf(out, "    %d booking(s)\n", len(v.Bookings))
			}
			return nil
		},
	}
}

// venueFlags binds the venue form to command flags.
type venueFlags struct {
	in       domain.VenueInput
	mediaURL []string
}

func (f *venueFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.in.Name, "name", "", "venue name")
	fs.StringVar(&f.in.Description, "description", "", "venue description")
	fs.StringSliceVar(&f.mediaURL, "media", nil, "image URL (repeatable)")
	fs.Float64Var(&f.in.Price, "price", 0, "price per night")
	fs.IntVar(&f.in.MaxGuests, "max-guests", 1, "maximum number of guests")
	fs.Float64Var(&f.in.Rating, "rating", 0, "rating 0-5")
	fs.BoolVar(&f.in.Meta.Wifi, "wifi", false, "has wifi")
	fs.BoolVar(&f.in.Meta.Parking, "parking", false, "has parking")
	fs.BoolVar(&f.in.Meta.Breakfast, "breakfast", false, "serves breakfast")
	fs.BoolVar(&f.in.Meta.Pets, "pets", false, "pets allowed")
	fs.StringVar(&f.in.Location.Address, "address", "", "street address")
	fs.StringVar(&f.in.Location.City, "city", "", "city")
	fs.StringVar(&f.in.Location.Zip, "zip", "", "postal code")
	fs.StringVar(&f.in.Location.Country, "country", "", "country")
	fs.StringVar(&f.in.Location.Continent, "continent", "", "continent")
}

// input returns the form. Flags left unset keep the values of base.
func (f *venueFlags) input(fs *pflag.FlagSet, base domain.VenueInput) domain.VenueInput {
	out := base
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("name", func() { out.Name = f.in.Name })
	set("description", func() { out.Description = f.in.Description })
	set("media", func() {
		out.Media = make([]domain.Media, 0, len(f.mediaURL))
		for _, u := range f.mediaURL {
			out.Media = append(out.Media, domain.Media{URL: u, Alt: f.in.Name})
		}
	})
	set("price", func() { out.Price = f.in.Price })
	set("max-guests", func() { out.MaxGuests = f.in.MaxGuests })
	set("rating", func() { out.Rating = f.in.Rating })
	set("wifi", func() { out.Meta.Wifi = f.in.Meta.Wifi })
	set("parking", func() { out.Meta.Parking = f.in.Meta.Parking })
	set("breakfast", func() { out.Meta.Breakfast = f.in.Meta.Breakfast })
	set("pets", func() { out.Meta.Pets = f.in.Meta.Pets })
	set("address", func() { out.Location.Address = f.in.Location.Address })
	set("city", func() { out.Location.City = f.in.Location.City })
	set("zip", func() { out.Location.Zip = f.in.Location.Zip })
	set("country", func() { out.Location.Country = f.in.Location.Country })
	set("continent", func() { out.Location.Continent = f.in.Location.Continent })
	return out
}

func manageCreateCmd() *cobra.Command {
	var f venueFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a venue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := f.input(cmd.Flags(), domain.VenueInput{MaxGuests: 1})
			v, err := appCtx.Venues.Create(cmd.Context(), in)
			if err != nil {
				return venueFormError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Venue created successfully!")
			printVenueLine(cmd.OutOrStdout(), v)
			return nil
		},
	}
	f.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func manageUpdateCmd() *cobra.Command {
	var f venueFlags
	cmd := &cobra.Command{
		Use:   "update <venue-id>",
		Short: "Update a venue; unset flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.VenueID(args[0])
			cur, err := appCtx.Venues.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			in := f.input(cmd.Flags(), inputOf(cur.Venue))
			v, err := appCtx.Venues.Update(cmd.Context(), id, in)
			if err != nil {
				return venueFormError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Venue updated successfully!")
			printVenueLine(cmd.OutOrStdout(), v)
			return nil
		},
	}
	f.bind(cmd.Flags())
	return cmd
}

func manageDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <venue-id>",
		Short: "Delete a venue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Venues.Delete(cmd.Context(), domain.VenueID(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Venue deleted successfully!")
			return nil
		},
	}
}

func manageBookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bookings <venue-id>",
		Short: "List the bookings of one of your venues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := appCtx.Venues.Bookings(cmd.Context(), domain.VenueID(args[0]))
			if err != nil {
				return err
			}
			printBookings(cmd.OutOrStdout(), bs, false)
			return nil
		},
	}
}

func inputOf(v domain.Venue) domain.VenueInput {
	return domain.VenueInput{
		Name:        v.Name,
		Description: v.Description,
		Media:       v.Media,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Meta:        v.Meta,
		Location:    v.Location,
	}
}

func venueFormError(cmd *cobra.Command, err error) error {
	var verrs venue.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for field, msg := range verrs {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, msg)
	}
	return errors.New("venue form is invalid")
}
