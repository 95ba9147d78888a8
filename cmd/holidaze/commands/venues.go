package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

func venuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Browse venues",
	}
	cmd.AddCommand(venuesListCmd(), venuesSearchCmd(), venuesShowCmd(), venuesCalendarCmd())
	return cmd
}

func venuesListCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List venues, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.Venues.List(cmd.Context(), page)
			if err != nil {
				return err
			}
			printVenuePage(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func venuesSearchCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search venues by name or description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.Venues.Search(cmd.Context(), strings.Join(args, " "), page)
			if err != nil {
				return err
			}
			printVenuePage(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func venuesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <venue-id>",
		Short: "Show a venue and its booked dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Venues.Get(cmd.Context(), domain.VenueID(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printVenue(out, d.Venue)
			printBookedRanges(out, d.Booked)
			return nil
		},
	}
}

// venues calendar: month grid with booked days crossed out.
func venuesCalendarCmd() *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "calendar <venue-id>",
		Short: "Show a month with unavailable days marked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, mon, err := parseMonth(month)
			if err != nil {
				return err
			}
			d, err := appCtx.Venues.Get(cmd.Context(), domain.VenueID(args[0]))
			if err != nil {
				return err
			}
			printCalendar(cmd.OutOrStdout(), d.Venue.Name, year, mon, d.Booked)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default: this month)")
	return cmd
}

func parseMonth(s string) (int, time.Month, error) {
	if s == "" {
		today := availability.Today()
		return today.Year, today.Month, nil
	}
	y, m, ok := strings.Cut(s, "-")
	year, errY := strconv.Atoi(y)
	mon, errM := strconv.Atoi(m)
	if !ok || errY != nil || errM != nil || mon < 1 || mon > 12 {
		return 0, 0, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return year, time.Month(mon), nil
}
