package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freementors/mentorctl/internal/platform"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "grace@example.com"},
		{name: "valid with subdomain", email: "grace@mail.example.com"},
		{name: "surrounding whitespace", email: "  grace@example.com  "},
		{name: "empty", email: "", wantErr: true},
		{name: "missing at", email: "grace.example.com", wantErr: true},
		{name: "missing local part", email: "@example.com", wantErr: true},
		{name: "missing domain", email: "grace@", wantErr: true},
		{name: "domain without dot", email: "grace@localhost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short12"))
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword("a much longer passphrase"))
}

func TestLoginFormConstruction(t *testing.T) {
	var email, password string
	form := LoginForm(&email, &password)
	require.NotNil(t, form)
}

func TestRegisterFormConstruction(t *testing.T) {
	input := platform.RegisterInput{}
	form := RegisterForm(&input)
	require.NotNil(t, form)
}

func TestBookingFormConstruction(t *testing.T) {
	var mentorEmail, topic string
	form := BookingForm(&mentorEmail, &topic)
	require.NotNil(t, form)
}

func TestBrowserModelSelection(t *testing.T) {
	mentors := []platform.Mentor{
		{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"},
		{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com"},
	}

	model := NewBrowserModel(mentors)
	require.NotNil(t, model)
	assert.Empty(t, model.Selected())

	view := model.View()
	assert.Contains(t, view, "Browse mentors")
	assert.Contains(t, view, "grace@example.com")
}
