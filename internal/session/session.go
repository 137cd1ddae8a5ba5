// Package session holds the client's in-memory belief about the current
// principal: who is logged in, which capabilities they hold, and whether a
// login attempt is in flight.
package session

import (
	"sync"

	"github.com/freementors/mentorctl/internal/credstore"
)

// Session is the authoritative client-side view of the current visitor.
// The zero value is the unauthenticated baseline.
type Session struct {
	// User is the email of the authenticated principal, empty when logged out.
	User string

	// Token is the opaque access credential; empty means unauthenticated.
	Token string

	// IsMentor and IsAdmin are independent capability flags. They are only
	// meaningful while Token is set.
	IsMentor bool
	IsAdmin  bool

	// Loading is true strictly while a login attempt is in flight.
	Loading bool

	// Err holds the last login failure message, empty otherwise.
	Err string
}

// Authenticated reports whether the visitor counts as logged in for
// routing purposes.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Credentials is the persistence interface the store writes through to.
type Credentials interface {
	Read() credstore.Record
	Write(token string, isMentor, isAdmin bool) error
	Clear() error
}

// Store owns the Session and serializes all mutations. It is constructed
// once at startup and lives for the process lifetime; logout resets it to
// the baseline.
//
// Concurrent logins are not deduplicated: the last mutation to land wins,
// which matches the platform's tolerance for overlapping attempts.
type Store struct {
	mu    sync.Mutex
	cur   Session
	creds Credentials
}

// NewStore creates a session store writing through to creds.
func NewStore(creds Credentials) *Store {
	return &Store{creds: creds}
}

// Initialize populates the session from the persisted credential record.
// Safe to call repeatedly; with unchanged storage the result is identical.
func (st *Store) Initialize() {
	rec := st.creds.Read()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.cur = Session{
		Token:    rec.Token,
		IsMentor: rec.IsMentor,
		IsAdmin:  rec.IsAdmin,
	}
	// Stored flags are meaningless without a token.
	if st.cur.Token == "" {
		st.cur.IsMentor = false
		st.cur.IsAdmin = false
	}
}

// BeginLogin marks a login attempt as in flight and clears any previous
// failure message. Called once per attempt, before the network call.
func (st *Store) BeginLogin() {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.cur.Loading = true
	st.cur.Err = ""
}

// CompleteLogin records a successful login and writes the credential record
// through to persistent storage. This and Logout are the only operations
// that touch the credential store.
func (st *Store) CompleteLogin(user, token string, isMentor, isAdmin bool) {
	st.mu.Lock()
	st.cur = Session{
		User:     user,
		Token:    token,
		IsMentor: isMentor,
		IsAdmin:  isAdmin,
	}
	st.mu.Unlock()

	// Persistence failure degrades to a session that does not survive the
	// process; the in-memory login stays valid either way.
	_ = st.creds.Write(token, isMentor, isAdmin)
}

// FailLogin records a failed attempt. Everything except Loading and Err is
// left untouched, so a previously authenticated session survives a stray
// re-login failure.
func (st *Store) FailLogin(message string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.cur.Loading = false
	st.cur.Err = message
}

// Logout resets the session to the unauthenticated baseline and clears the
// persisted record.
func (st *Store) Logout() {
	st.mu.Lock()
	st.cur = Session{}
	st.mu.Unlock()

	_ = st.creds.Clear()
}

// Snapshot returns a copy of the current session. Capability flags are
// forced false when unauthenticated, regardless of what was stored.
func (st *Store) Snapshot() Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	snap := st.cur
	if !snap.Authenticated() {
		snap.IsMentor = false
		snap.IsAdmin = false
	}
	return snap
}
