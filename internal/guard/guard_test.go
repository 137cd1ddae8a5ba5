package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freementors/mentorctl/internal/session"
)

func TestEvaluate_DecisionTable(t *testing.T) {
	tests := []struct {
		name string
		sess session.Session
		req  Requirement
		want Decision
	}{
		{
			name: "no token always redirects to login",
			sess: session.Session{},
			req:  Requirement{},
			want: RedirectLogin,
		},
		{
			name: "no token redirects to login even with flags required",
			sess: session.Session{IsMentor: true, IsAdmin: true},
			req:  Requirement{RequireMentor: true, RequireAdmin: true},
			want: RedirectLogin,
		},
		{
			name: "authenticated with no requirements renders",
			sess: session.Session{Token: "x"},
			req:  Requirement{},
			want: Render,
		},
		{
			name: "mentor required but visitor is not a mentor",
			sess: session.Session{Token: "x", IsMentor: false},
			req:  Requirement{RequireMentor: true},
			want: RedirectUnauthorized,
		},
		{
			name: "mentor required and visitor is a mentor",
			sess: session.Session{Token: "x", IsMentor: true},
			req:  Requirement{RequireMentor: true},
			want: Render,
		},
		{
			name: "admin required but visitor is not an admin",
			sess: session.Session{Token: "x", IsMentor: true},
			req:  Requirement{RequireAdmin: true},
			want: RedirectUnauthorized,
		},
		{
			name: "admin required and visitor is an admin",
			sess: session.Session{Token: "x", IsAdmin: true},
			req:  Requirement{RequireAdmin: true},
			want: Render,
		},
		{
			name: "both flags required, visitor has both",
			sess: session.Session{Token: "x", IsMentor: true, IsAdmin: true},
			req:  Requirement{RequireMentor: true, RequireAdmin: true},
			want: Render,
		},
		{
			name: "both flags required, mentor check fails first",
			sess: session.Session{Token: "x", IsMentor: false, IsAdmin: true},
			req:  Requirement{RequireMentor: true, RequireAdmin: true},
			want: RedirectUnauthorized,
		},
		{
			name: "both flags required, admin check fails second",
			sess: session.Session{Token: "x", IsMentor: true, IsAdmin: false},
			req:  Requirement{RequireMentor: true, RequireAdmin: true},
			want: RedirectUnauthorized,
		},
		{
			name: "flags without requirements do not matter",
			sess: session.Session{Token: "x", IsMentor: true, IsAdmin: true},
			req:  Requirement{},
			want: Render,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.sess, tt.req))
		})
	}
}

func TestEvaluate_Exhaustive(t *testing.T) {
	// Every combination of (token present, isMentor, isAdmin, requireMentor,
	// requireAdmin) must match the documented decision order.
	for _, hasToken := range []bool{false, true} {
		for _, isMentor := range []bool{false, true} {
			for _, isAdmin := range []bool{false, true} {
				for _, reqMentor := range []bool{false, true} {
					for _, reqAdmin := range []bool{false, true} {
						sess := session.Session{IsMentor: isMentor, IsAdmin: isAdmin}
						if hasToken {
							sess.Token = "x"
						}
						req := Requirement{RequireMentor: reqMentor, RequireAdmin: reqAdmin}

						want := Render
						switch {
						case !hasToken:
							want = RedirectLogin
						case reqMentor && !isMentor:
							want = RedirectUnauthorized
						case reqAdmin && !isAdmin:
							want = RedirectUnauthorized
						}

						assert.Equal(t, want, Evaluate(sess, req),
							"token=%v mentor=%v admin=%v reqMentor=%v reqAdmin=%v",
							hasToken, isMentor, isAdmin, reqMentor, reqAdmin)
					}
				}
			}
		}
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
	assert.Equal(t, "redirect-unauthorized", RedirectUnauthorized.String())
	assert.Equal(t, "unknown", Decision(99).String())
}
