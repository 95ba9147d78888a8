package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"holidaze/internal/domain"
	"holidaze/internal/services/auth"
	"holidaze/internal/session"
)

// signin: exchange email and password for a stored session.
func signinCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in with your stud.noroff.no email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = promptLine(cmd, "Email: "); err != nil {
					return err
				}
			}
			password, err := promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			p, err := appCtx.Auth.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

// signup: register a new profile and sign in.
func signupCmd() *cobra.Command {
	var (
		name    string
		email   string
		manager bool
	)
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			p, err := appCtx.Auth.SignUp(cmd.Context(), domain.Registration{
				Name:         domain.ProfileName(name),
				Email:        email,
				Password:     password,
				VenueManager: manager,
			})
			var verrs auth.ValidationErrors
			if errors.As(err, &verrs) {
				for _, field := range []string{"name", "email", "password"} {
					if msg, ok := verrs[field]; ok {
						fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, msg)
					}
				}
				return errors.New("registration is invalid")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "profile name (letters, digits and _)")
	cmd.Flags().StringVar(&email, "email", "", "stud.noroff.no email")
	cmd.Flags().BoolVar(&manager, "manager", false, "register as a venue manager")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func signoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Auth.SignOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := session.MustFromContext(cmd.Context()).Snapshot()
			if snap.User == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			printProfile(cmd.OutOrStdout(), *snap.User)
			return nil
		},
	}
}
