package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"holidaze/internal/domain"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or edit your profile",
	}
	cmd.AddCommand(profileUpdateCmd())
	return cmd
}

// profile update: only flags that were set are sent.
func profileUpdateCmd() *cobra.Command {
	var (
		bio       string
		avatarURL string
		avatarAlt string
		bannerURL string
		bannerAlt string
		manager   bool
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update bio, avatar, banner or venue manager status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var upd domain.ProfileUpdate
			if flags.Changed("bio") {
				upd.Bio = &bio
			}
			if flags.Changed("avatar-url") || flags.Changed("avatar-alt") {
				upd.Avatar = &domain.Media{URL: avatarURL, Alt: avatarAlt}
			}
			if flags.Changed("banner-url") || flags.Changed("banner-alt") {
				upd.Banner = &domain.Media{URL: bannerURL, Alt: bannerAlt}
			}
			if flags.Changed("manager") {
				upd.VenueManager = &manager
			}

			p, err := appCtx.Profile.Update(cmd.Context(), upd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated successfully!")
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().StringVar(&bio, "bio", "", "profile bio")
	cmd.Flags().StringVar(&avatarURL, "avatar-url", "", "avatar image URL")
	cmd.Flags().StringVar(&avatarAlt, "avatar-alt", "", "avatar alt text")
	cmd.Flags().StringVar(&bannerURL, "banner-url", "", "banner image URL")
	cmd.Flags().StringVar(&bannerAlt, "banner-alt", "", "banner alt text")
	cmd.Flags().BoolVar(&manager, "manager", false, "venue manager status")
	return cmd
}
