package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/freementors/mentorctl/internal/platform"
)

// ValidateEmail checks that s looks like an email address. The platform is
// the authority; this only catches obvious typos before a round trip.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return fmt.Errorf("enter a valid email address")
	}
	if !strings.Contains(s[at+1:], ".") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

// ValidatePassword enforces the platform's minimum password length.
func ValidatePassword(s string) error {
	if len(s) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

// LoginForm collects credentials interactively. The email and password
// pointers receive the submitted values.
func LoginForm(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(email).
				Validate(ValidateEmail),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		).Title("Sign in to Free Mentors"),
	)
}

// RegisterForm collects the account creation fields.
func RegisterForm(input *platform.RegisterInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("firstName").
				Title("First name").
				Value(&input.FirstName).
				Validate(requireField("first name")),
			huh.NewInput().
				Key("lastName").
				Title("Last name").
				Value(&input.LastName).
				Validate(requireField("last name")),
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&input.Email).
				Validate(ValidateEmail),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&input.Password).
				Validate(ValidatePassword),
		).Title("Create your account"),
		huh.NewGroup(
			huh.NewInput().
				Key("address").
				Title("Address").
				Value(&input.Address),
			huh.NewText().
				Key("bio").
				Title("Bio").
				Value(&input.Bio),
			huh.NewInput().
				Key("occupation").
				Title("Occupation").
				Value(&input.Occupation),
			huh.NewInput().
				Key("expertise").
				Title("Expertise").
				Value(&input.Expertise),
		).Title("Profile (optional)"),
	)
}

// BookingForm collects a mentorship session request. The mentor email may
// be pre-filled when booking from the browser.
func BookingForm(mentorEmail, topic *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("mentorEmail").
				Title("Mentor email").
				Value(mentorEmail).
				Validate(ValidateEmail),
			huh.NewInput().
				Key("topic").
				Title("Topic").
				Value(topic).
				Validate(requireField("topic")),
		).Title("Request a mentorship session"),
	)
}

func requireField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
