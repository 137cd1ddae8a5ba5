// Package guard implements role-gated access decisions for protected views.
package guard

import "github.com/freementors/mentorctl/internal/session"

// Requirement describes the capability flags a protected view demands.
// The zero value requires authentication only.
type Requirement struct {
	RequireMentor bool
	RequireAdmin  bool
}

// Decision is the outcome of a guard evaluation.
type Decision int

const (
	// Render allows the protected view.
	Render Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login view.
	RedirectLogin
	// RedirectUnauthorized sends an under-privileged visitor to the
	// unauthorized view.
	RedirectUnauthorized
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	default:
		return "unknown"
	}
}

// Evaluate applies the requirement to the current session. It is a pure
// function: no state is kept between evaluations, and every navigation
// re-evaluates from the session as it stands.
func Evaluate(sess session.Session, req Requirement) Decision {
	if !sess.Authenticated() {
		return RedirectLogin
	}
	if req.RequireMentor && !sess.IsMentor {
		return RedirectUnauthorized
	}
	if req.RequireAdmin && !sess.IsAdmin {
		return RedirectUnauthorized
	}
	return Render
}
