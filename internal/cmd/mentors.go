package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freementors/mentorctl/internal/guard"
	"github.com/freementors/mentorctl/internal/tui"
	"github.com/freementors/mentorctl/internal/ux"
)

var mentorsCmd = &cobra.Command{
	Use:   "mentors",
	Short: "Browse mentors and their reviews",
	Long: `Browse the platform's mentors.

Subcommands:
  list     Print the mentor directory
  browse   Interactively browse mentors and request a session
  reviews  Show a mentor's reviews and average rating

All mentor views require a signed-in session.

Examples:
  mentorctl mentors list
  mentorctl mentors browse
  mentorctl mentors reviews grace@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var mentorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the mentor directory",
	RunE:  runMentorsList,
}

var mentorsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse mentors and request a session",
	Long: `Open the interactive mentor browser. Selecting a mentor offers to
request a mentorship session with them.`,
	RunE: runMentorsBrowse,
}

var mentorsReviewsCmd = &cobra.Command{
	Use:   "reviews <mentor-email>",
	Short: "Show a mentor's reviews and average rating",
	Args:  cobra.ExactArgs(1),
	RunE:  runMentorsReviews,
}

func init() {
	mentorsCmd.AddCommand(mentorsListCmd)
	mentorsCmd.AddCommand(mentorsBrowseCmd)
	mentorsCmd.AddCommand(mentorsReviewsCmd)
	rootCmd.AddCommand(mentorsCmd)
}

func runMentorsList(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{}); err != nil {
		return err
	}

	mentors, err := app.Platform.GetAllMentors(cmd.Context())
	if err != nil {
		return ux.FormatError(err, "fetching mentors")
	}

	if app.Format != "text" && app.Format != "" {
		formatter, err := app.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(mentors)
	}

	fmt.Print(tui.RenderMentors(mentors))
	return nil
}

func runMentorsBrowse(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{}); err != nil {
		return err
	}

	mentors, err := app.Platform.GetAllMentors(cmd.Context())
	if err != nil {
		return ux.FormatError(err, "fetching mentors")
	}
	if len(mentors) == 0 {
		fmt.Println("No mentors are available yet.")
		return nil
	}

	mentorEmail, err := tui.BrowseMentors(mentors)
	if err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	if mentorEmail == "" {
		return nil
	}

	var topic string
	if err := tui.BookingForm(&mentorEmail, &topic).Run(); err != nil {
		return fmt.Errorf("booking cancelled: %w", err)
	}

	booked, err := app.Platform.RequestMentorshipSession(cmd.Context(), mentorEmail, topic)
	if err != nil {
		return ux.FormatError(err, "requesting session")
	}

	fmt.Printf("Session %s requested with %s (status: %s)\n", booked.ID, mentorEmail, booked.Status)
	return nil
}

func runMentorsReviews(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{}); err != nil {
		return err
	}

	mentorEmail := args[0]
	if err := tui.ValidateEmail(mentorEmail); err != nil {
		return err
	}

	reviews, err := app.Platform.GetReviewsForMentor(cmd.Context(), mentorEmail)
	if err != nil {
		return ux.FormatError(err, "fetching reviews")
	}

	if app.Format != "text" && app.Format != "" {
		formatter, err := app.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(reviews)
	}

	fmt.Print(tui.RenderReviews(mentorEmail, reviews))
	return nil
}
