// Package cmd wires the mentorctl command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mentorctl",
	Short: "Command-line client for the Free Mentors platform",
	Long: `mentorctl is a command-line client for the Free Mentors mentorship
platform. It lets mentees browse mentors and request sessions, mentors
manage incoming session requests, and administrators moderate accounts
and reviews.

Sign in once with 'mentorctl auth login'; the session persists across
invocations until you log out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("home", "", "state directory (default is $HOME/.mentorctl)")
	rootCmd.PersistentFlags().String("api-url", "", "GraphQL endpoint of the platform")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}
