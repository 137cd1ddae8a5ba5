package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func findSubcommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("subcommand %q not found on %q", name, parent.Name())
	return nil
}

func assertSubcommands(t *testing.T, parent *cobra.Command, names ...string) {
	t.Helper()
	found := map[string]bool{}
	for _, c := range parent.Commands() {
		found[c.Name()] = true
	}
	for _, name := range names {
		if !found[name] {
			t.Errorf("subcommand %q not found on %q", name, parent.Name())
		}
	}
}

func TestRootSubcommands(t *testing.T) {
	assertSubcommands(t, rootCmd, "auth", "mentors", "sessions", "admin", "version")
}

func TestAuthSubcommands(t *testing.T) {
	assertSubcommands(t, authCmd, "login", "logout", "register", "status")
}

func TestMentorsSubcommands(t *testing.T) {
	assertSubcommands(t, mentorsCmd, "list", "browse", "reviews")
}

func TestSessionsSubcommands(t *testing.T) {
	assertSubcommands(t, sessionsCmd, "request", "pending", "accept", "reject")
}

func TestAdminSubcommands(t *testing.T) {
	assertSubcommands(t, adminCmd, "users", "promote", "delete-user", "hide-review")
}

func TestAuthLoginFlags(t *testing.T) {
	loginCmd := findSubcommand(t, authCmd, "login")

	if loginCmd.Flags().Lookup("email") == nil {
		t.Error("flag 'email' not found on auth login command")
	}
	if loginCmd.Flags().Lookup("password") == nil {
		t.Error("flag 'password' not found on auth login command")
	}
}

func TestSessionsRequestFlags(t *testing.T) {
	requestCmd := findSubcommand(t, sessionsCmd, "request")

	if requestCmd.Flags().Lookup("mentor") == nil {
		t.Error("flag 'mentor' not found on sessions request command")
	}
	if requestCmd.Flags().Lookup("topic") == nil {
		t.Error("flag 'topic' not found on sessions request command")
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"home", "api-url", "format", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not found on root command", name)
		}
	}
}
