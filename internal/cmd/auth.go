package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freementors/mentorctl/internal/platform"
	"github.com/freementors/mentorctl/internal/tui"
	"github.com/freementors/mentorctl/internal/ux"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long: `Manage your Free Mentors session.

Subcommands:
  login     Sign in with email and password
  logout    Sign out and clear stored credentials
  register  Create a new account
  status    Show the current session

Credentials are stored in ~/.mentorctl/credentials.json. Set
MENTORCTL_PASSPHRASE to encrypt the stored token at rest.

Examples:
  mentorctl auth login --email user@example.com --password mypass
  mentorctl auth login
  mentorctl auth status
  mentorctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the platform",
	Long: `Sign in to the Free Mentors platform.

With --email and --password the login runs non-interactively; otherwise
an interactive form collects the credentials.

A failed login never discloses whether the email or the password was
wrong, and an existing session survives a failed re-login.

Examples:
  mentorctl auth login --email user@example.com --password mypass
  mentorctl auth login`,
	RunE: runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		if !app.Session.Snapshot().Authenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		app.Gateway.Logout()

		fmt.Println("Logged out successfully.")
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new Free Mentors account.

With --email, --password, --first-name and --last-name the registration
runs non-interactively; otherwise an interactive form collects the
fields. New accounts start as mentees.

Examples:
  mentorctl auth register --first-name Ada --last-name Lovelace \
    --email ada@example.com --password mypassword`,
	RunE: runAuthRegister,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE:  runAuthStatus,
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authRegisterCmd.Flags().String("first-name", "", "first name")
	authRegisterCmd.Flags().String("last-name", "", "last name")
	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password")
	authRegisterCmd.Flags().String("address", "", "address")
	authRegisterCmd.Flags().String("bio", "", "short bio")
	authRegisterCmd.Flags().String("occupation", "", "occupation")
	authRegisterCmd.Flags().String("expertise", "", "areas of expertise")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if email == "" || password == "" {
		if err := tui.LoginForm(&email, &password).Run(); err != nil {
			return fmt.Errorf("login cancelled: %w", err)
		}
	}

	outcome := app.Gateway.Login(cmd.Context(), email, password)
	if !outcome.Authenticated {
		return ux.EnhanceError(fmt.Errorf("%s", outcome.Message))
	}

	fmt.Printf("Logged in as %s", outcome.User)
	switch {
	case outcome.IsAdmin:
		fmt.Print(" (administrator)")
	case outcome.IsMentor:
		fmt.Print(" (mentor)")
	}
	fmt.Println()

	if outcome.Message != "" {
		fmt.Println(outcome.Message)
	}
	return nil
}

func runAuthRegister(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	input := platform.RegisterInput{}
	input.FirstName, _ = cmd.Flags().GetString("first-name")
	input.LastName, _ = cmd.Flags().GetString("last-name")
	input.Email, _ = cmd.Flags().GetString("email")
	input.Password, _ = cmd.Flags().GetString("password")
	input.Address, _ = cmd.Flags().GetString("address")
	input.Bio, _ = cmd.Flags().GetString("bio")
	input.Occupation, _ = cmd.Flags().GetString("occupation")
	input.Expertise, _ = cmd.Flags().GetString("expertise")

	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		if err := tui.RegisterForm(&input).Run(); err != nil {
			return fmt.Errorf("registration cancelled: %w", err)
		}
	}

	if err := tui.ValidateEmail(input.Email); err != nil {
		return err
	}
	if err := tui.ValidatePassword(input.Password); err != nil {
		return err
	}

	message, err := app.Platform.RegisterUser(cmd.Context(), input)
	if err != nil {
		return ux.FormatError(err, "registration failed")
	}

	if message != "" {
		fmt.Println(message)
	} else {
		fmt.Println("Account created. Sign in with 'mentorctl auth login'.")
	}
	return nil
}

// sessionStatus is the auth status payload for structured output.
type sessionStatus struct {
	Authenticated bool   `json:"authenticated" yaml:"authenticated"`
	User          string `json:"user,omitempty" yaml:"user,omitempty"`
	IsMentor      bool   `json:"isMentor" yaml:"isMentor"`
	IsAdmin       bool   `json:"isAdmin" yaml:"isAdmin"`
}

func (s sessionStatus) String() string {
	if !s.Authenticated {
		return "Not logged in."
	}

	role := "mentee"
	switch {
	case s.IsAdmin:
		role = "administrator"
	case s.IsMentor:
		role = "mentor"
	}
	if s.User == "" {
		return fmt.Sprintf("Logged in (%s)", role)
	}
	return fmt.Sprintf("Logged in as %s (%s)", s.User, role)
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	formatter, err := app.Formatter()
	if err != nil {
		return err
	}

	snap := app.Session.Snapshot()
	return formatter.Format(sessionStatus{
		Authenticated: snap.Authenticated(),
		User:          snap.User,
		IsMentor:      snap.IsMentor,
		IsAdmin:       snap.IsAdmin,
	})
}
