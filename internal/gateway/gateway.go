// Package gateway drives the login flow: it calls the platform, decides
// whether the attempt succeeded, and records the outcome in the session
// store. Callers never see a raw transport or API error from a login.
package gateway

import (
	"context"

	"github.com/freementors/mentorctl/internal/log"
	"github.com/freementors/mentorctl/internal/platform"
	"github.com/freementors/mentorctl/internal/session"
)

// FailureMessage is the single message shown for any failed login,
// regardless of the underlying cause.
const FailureMessage = "Login failed. Please check your credentials."

// Authenticator is the slice of the platform client the gateway needs.
type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (*platform.LoginPayload, error)
}

// Outcome is the result of a login attempt as surfaced to the caller.
type Outcome struct {
	Authenticated bool
	User          string
	Token         string
	IsMentor      bool
	IsAdmin       bool

	// Message is the platform's welcome text on success and FailureMessage
	// on any failure.
	Message string
}

// Gateway owns the login/logout transitions of the session store.
type Gateway struct {
	api    Authenticator
	store  *session.Store
	logger *log.Logger
}

// New creates a gateway over the given platform client and session store.
func New(api Authenticator, store *session.Store, logger *log.Logger) *Gateway {
	return &Gateway{api: api, store: store, logger: logger}
}

// Login runs a full login attempt. A request is authenticated only when the
// payload carries a non-empty access token; an HTTP 200 with a null payload
// is still a failure. Failures never escape as errors, they are folded into
// the outcome and the session's failure message.
func (g *Gateway) Login(ctx context.Context, email, password string) Outcome {
	g.store.BeginLogin()

	payload, err := g.api.LoginUser(ctx, email, password)
	if err != nil {
		g.logger.WithError(err).Warn("login request failed")
		g.store.FailLogin(FailureMessage)
		return Outcome{Message: FailureMessage}
	}

	if payload.AccessToken == "" {
		g.logger.Debug("login rejected by platform", "message", payload.Message)
		g.store.FailLogin(FailureMessage)
		return Outcome{Message: FailureMessage}
	}

	// The submitted email is authoritative for display; the API does not
	// guarantee to echo it back.
	g.store.CompleteLogin(email, payload.AccessToken, payload.User.IsMentor, payload.User.IsAdmin)
	g.logger.Info("login succeeded", "user", email, "mentor", payload.User.IsMentor, "admin", payload.User.IsAdmin)

	return Outcome{
		Authenticated: true,
		User:          email,
		Token:         payload.AccessToken,
		IsMentor:      payload.User.IsMentor,
		IsAdmin:       payload.User.IsAdmin,
		Message:       payload.Message,
	}
}

// Logout resets the session and clears persisted credentials.
func (g *Gateway) Logout() {
	g.store.Logout()
	g.logger.Debug("session cleared")
}
