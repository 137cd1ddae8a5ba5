package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freementors/mentorctl/internal/credstore"
)

func newTestStore(t *testing.T) (*Store, *credstore.Store) {
	t.Helper()
	creds := credstore.New(filepath.Join(t.TempDir(), "credentials.json"))
	return NewStore(creds), creds
}

func TestInitialize_FromPersistedRecord(t *testing.T) {
	store, creds := newTestStore(t)
	require.NoError(t, creds.Write("persisted-token", true, false))

	store.Initialize()

	sess := store.Snapshot()
	assert.Equal(t, "persisted-token", sess.Token)
	assert.True(t, sess.IsMentor)
	assert.False(t, sess.IsAdmin)
	assert.Empty(t, sess.User)
	assert.Empty(t, sess.Err)
	assert.False(t, sess.Loading)
}

func TestInitialize_Idempotent(t *testing.T) {
	store, creds := newTestStore(t)
	require.NoError(t, creds.Write("tok", false, true))

	store.Initialize()
	first := store.Snapshot()

	store.Initialize()
	second := store.Snapshot()

	assert.Equal(t, first, second)
}

func TestInitialize_EmptyStorage(t *testing.T) {
	store, _ := newTestStore(t)
	store.Initialize()

	sess := store.Snapshot()
	assert.False(t, sess.Authenticated())
	assert.False(t, sess.IsMentor)
	assert.False(t, sess.IsAdmin)
}

func TestBeginLogin_SetsLoadingAndClearsError(t *testing.T) {
	store, _ := newTestStore(t)
	store.Initialize()
	store.FailLogin("previous failure")

	store.BeginLogin()

	sess := store.Snapshot()
	assert.True(t, sess.Loading)
	assert.Empty(t, sess.Err)
}

func TestCompleteLogin_PopulatesSessionAndPersists(t *testing.T) {
	store, creds := newTestStore(t)
	store.Initialize()

	store.BeginLogin()
	store.CompleteLogin("user@example.com", "fresh-token", true, true)

	sess := store.Snapshot()
	assert.Equal(t, "user@example.com", sess.User)
	assert.Equal(t, "fresh-token", sess.Token)
	assert.True(t, sess.IsMentor)
	assert.True(t, sess.IsAdmin)
	assert.False(t, sess.Loading)
	assert.Empty(t, sess.Err)

	rec := creds.Read()
	assert.Equal(t, "fresh-token", rec.Token)
	assert.True(t, rec.IsMentor)
	assert.True(t, rec.IsAdmin)
}

func TestFailLogin_PreservesPriorSession(t *testing.T) {
	store, _ := newTestStore(t)
	store.Initialize()
	store.CompleteLogin("user@example.com", "old", false, true)

	store.BeginLogin()
	store.FailLogin("Login failed. Please check your credentials.")

	sess := store.Snapshot()
	assert.Equal(t, "old", sess.Token)
	assert.Equal(t, "user@example.com", sess.User)
	assert.True(t, sess.IsAdmin)
	assert.False(t, sess.Loading)
	assert.Equal(t, "Login failed. Please check your credentials.", sess.Err)
}

func TestLogout_ClearsEverything(t *testing.T) {
	store, creds := newTestStore(t)
	store.Initialize()
	store.CompleteLogin("user@example.com", "tok", true, true)

	store.Logout()

	assert.Equal(t, Session{}, store.Snapshot())
	assert.Equal(t, credstore.Record{}, creds.Read())
}

func TestSnapshot_FlagsForcedFalseWhenUnauthenticated(t *testing.T) {
	store, _ := newTestStore(t)
	store.Initialize()

	// Reach into the container via its public API only: a failed login after
	// logout must not resurrect flags.
	store.FailLogin("nope")

	sess := store.Snapshot()
	assert.False(t, sess.Authenticated())
	assert.False(t, sess.IsMentor)
	assert.False(t, sess.IsAdmin)
}

func TestLastWriteWins(t *testing.T) {
	store, _ := newTestStore(t)
	store.Initialize()

	// Two overlapping attempts: whichever resolution lands last determines
	// the final state.
	store.BeginLogin()
	store.BeginLogin()
	store.CompleteLogin("a@example.com", "token-a", false, false)
	store.FailLogin("Login failed. Please check your credentials.")

	sess := store.Snapshot()
	assert.Equal(t, "token-a", sess.Token)
	assert.Equal(t, "Login failed. Please check your credentials.", sess.Err)
	assert.False(t, sess.Loading)
}
