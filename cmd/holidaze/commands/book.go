package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
	"holidaze/internal/services/booking"
)

// book <venue-id>: check the range against the venue's bookings and submit.
func bookCmd() *cobra.Command {
	var (
		from   string
		to     string
		guests int
	)
	cmd := &cobra.Command{
		Use:   "book <venue-id>",
		Short: "Book a venue for an inclusive date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := booking.Request{VenueID: domain.VenueID(args[0]), Guests: guests}
			var err error
			if req.From, err = optionalDay(from); err != nil {
				return err
			}
			if req.To, err = optionalDay(to); err != nil {
				return err
			}

			c, err := appCtx.Bookings.Book(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Booking successful! Your booking has been confirmed.")
			fmt.Fprintf(out, "  %s  %s → %s  %d guest(s)\n",
				c.Venue.Name, availability.FormatDate(*req.From), availability.FormatDate(*req.To), c.Booking.Guests)
			fmt.Fprintf(out, "  %d night(s), total %s\n", c.Nights, money(c.Total))
			fmt.Fprintf(out, "  booking id %s\n", c.Booking.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD")
	cmd.Flags().IntVar(&guests, "guests", 1, "number of guests")
	return cmd
}

// optionalDay parses s, returning nil for an empty string.
func optionalDay(s string) (*availability.Day, error) {
	if s == "" {
		return nil, nil
	}
	d, err := availability.ParseDay(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := appCtx.Bookings.MyBookings(cmd.Context())
			if err != nil {
				return err
			}
			printBookings(cmd.OutOrStdout(), bs, true)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel one of your bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Bookings.Cancel(cmd.Context(), domain.BookingID(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Booking cancelled")
			return nil
		},
	})
	return cmd
}
