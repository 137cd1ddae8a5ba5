package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freementors/mentorctl/internal/guard"
	"github.com/freementors/mentorctl/internal/tui"
	"github.com/freementors/mentorctl/internal/ux"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer accounts and moderate reviews",
	Long: `Administer the platform. All admin commands require an
administrator session.

Subcommands:
  users        List every account
  promote      Promote a mentee to mentor
  delete-user  Delete an account
  hide-review  Hide a review from mentor listings

Examples:
  mentorctl admin users
  mentorctl admin promote ada@example.com
  mentorctl admin delete-user 42
  mentorctl admin hide-review r1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List every account",
	RunE:  runAdminUsers,
}

var adminPromoteCmd = &cobra.Command{
	Use:   "promote <email>",
	Short: "Promote a mentee to mentor",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminPromote,
}

var adminDeleteUserCmd = &cobra.Command{
	Use:   "delete-user <id>",
	Short: "Delete an account",
	RunE:  runAdminDeleteUser,
	Args:  cobra.ExactArgs(1),
}

var adminHideReviewCmd = &cobra.Command{
	Use:   "hide-review <review-id>",
	Short: "Hide a review from mentor listings",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminHideReview,
}

func init() {
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminPromoteCmd)
	adminCmd.AddCommand(adminDeleteUserCmd)
	adminCmd.AddCommand(adminHideReviewCmd)
	rootCmd.AddCommand(adminCmd)
}

func runAdminUsers(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{RequireAdmin: true}); err != nil {
		return err
	}

	users, err := app.Platform.AllUsers(cmd.Context())
	if err != nil {
		return ux.FormatError(err, "fetching users")
	}

	if app.Format != "text" && app.Format != "" {
		formatter, err := app.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(users)
	}

	fmt.Print(tui.RenderUsers(users))
	return nil
}

func runAdminPromote(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{RequireAdmin: true}); err != nil {
		return err
	}

	email := args[0]
	if err := tui.ValidateEmail(email); err != nil {
		return err
	}

	message, err := app.Platform.ChangeUserToMentor(cmd.Context(), email)
	if err != nil {
		return ux.FormatError(err, fmt.Sprintf("could not promote %s", email))
	}

	if message != "" {
		fmt.Println(message)
	} else {
		fmt.Printf("%s is now a mentor\n", email)
	}
	return nil
}

func runAdminDeleteUser(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{RequireAdmin: true}); err != nil {
		return err
	}

	id := args[0]

	ok, err := app.Platform.DeleteUser(cmd.Context(), id)
	if err != nil {
		return ux.FormatError(err, fmt.Sprintf("could not delete user %s", id))
	}
	if !ok {
		return fmt.Errorf("user %s was not deleted", id)
	}

	fmt.Printf("User %s deleted\n", id)
	return nil
}

func runAdminHideReview(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{RequireAdmin: true}); err != nil {
		return err
	}

	reviewID := args[0]

	message, err := app.Platform.HideReview(cmd.Context(), reviewID)
	if err != nil {
		return ux.FormatError(err, fmt.Sprintf("could not hide review %s", reviewID))
	}

	if message != "" {
		fmt.Println(message)
	} else {
		fmt.Printf("Review %s hidden\n", reviewID)
	}
	return nil
}
