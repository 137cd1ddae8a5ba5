package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freementors/mentorctl/internal/guard"
	"github.com/freementors/mentorctl/internal/platform"
	"github.com/freementors/mentorctl/internal/tui"
	"github.com/freementors/mentorctl/internal/ux"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Request and manage mentorship sessions",
	Long: `Request and manage mentorship sessions.

Subcommands:
  request  Request a session with a mentor (any signed-in user)
  pending  List your pending session requests (mentors only)
  accept   Accept a pending session request (mentors only)
  reject   Reject a pending session request (mentors only)

Examples:
  mentorctl sessions request --mentor grace@example.com --topic "Go interfaces"
  mentorctl sessions pending
  mentorctl sessions accept s1
  mentorctl sessions reject s1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var sessionsRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request a session with a mentor",
	Long: `Request a mentorship session.

With --mentor and --topic the request runs non-interactively; otherwise
an interactive form collects them.`,
	RunE: runSessionsRequest,
}

var sessionsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List your pending session requests",
	RunE:  runSessionsPending,
}

var sessionsAcceptCmd = &cobra.Command{
	Use:   "accept <session-id>",
	Short: "Accept a pending session request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessionsManage(cmd, args[0], platform.SessionAccept)
	},
}

var sessionsRejectCmd = &cobra.Command{
	Use:   "reject <session-id>",
	Short: "Reject a pending session request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessionsManage(cmd, args[0], platform.SessionReject)
	},
}

func init() {
	sessionsRequestCmd.Flags().String("mentor", "", "mentor email")
	sessionsRequestCmd.Flags().String("topic", "", "session topic")

	sessionsCmd.AddCommand(sessionsRequestCmd)
	sessionsCmd.AddCommand(sessionsPendingCmd)
	sessionsCmd.AddCommand(sessionsAcceptCmd)
	sessionsCmd.AddCommand(sessionsRejectCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessionsRequest(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{}); err != nil {
		return err
	}

	mentorEmail, _ := cmd.Flags().GetString("mentor")
	topic, _ := cmd.Flags().GetString("topic")

	if mentorEmail == "" || topic == "" {
		if err := tui.BookingForm(&mentorEmail, &topic).Run(); err != nil {
			return fmt.Errorf("booking cancelled: %w", err)
		}
	}

	if err := tui.ValidateEmail(mentorEmail); err != nil {
		return err
	}

	booked, err := app.Platform.RequestMentorshipSession(cmd.Context(), mentorEmail, topic)
	if err != nil {
		return ux.FormatError(err, "requesting session")
	}

	fmt.Printf("Session %s requested with %s (status: %s)\n", booked.ID, mentorEmail, booked.Status)
	return nil
}

func runSessionsPending(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{RequireMentor: true}); err != nil {
		return err
	}

	requests, err := app.Platform.GetPendingSessions(cmd.Context())
	if err != nil {
		return ux.FormatError(err, "fetching pending sessions")
	}

	if app.Format != "text" && app.Format != "" {
		formatter, err := app.Formatter()
		if err != nil {
			return err
		}
		return formatter.Format(requests)
	}

	fmt.Print(tui.RenderSessionRequests(requests))
	return nil
}

func runSessionsManage(cmd *cobra.Command, sessionID string, action platform.SessionAction) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireView(guard.Requirement{RequireMentor: true}); err != nil {
		return err
	}

	message, err := app.Platform.ManageMentorshipSession(cmd.Context(), sessionID, action)
	if err != nil {
		return ux.FormatError(err, fmt.Sprintf("could not %s session %s", action, sessionID))
	}

	if message != "" {
		fmt.Println(message)
	} else {
		fmt.Printf("Session %s %sed\n", sessionID, action)
	}
	return nil
}
