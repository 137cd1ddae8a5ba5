// Package credstore persists the credential record that survives between
// invocations: the access token plus the mentor/admin capability flags.
//
// The on-disk layout mirrors the platform's browser client, which keeps the
// same three entries in localStorage with the role flags encoded as the
// strings "true"/"false". The stringly encoding stays at this boundary;
// callers only ever see real booleans.
package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Record is the decoded credential record. The zero value is the
// unauthenticated default.
type Record struct {
	Token    string
	IsMentor bool
	IsAdmin  bool
}

// diskRecord is the persisted form. Role flags are stored as "true"/"false"
// strings for compatibility with the web client's localStorage layout.
type diskRecord struct {
	Token    string `json:"token"`
	IsMentor string `json:"isMentor"`
	IsAdmin  string `json:"isAdmin"`
}

// Store is a file-backed credential store.
type Store struct {
	path   string
	cipher *tokenCipher
}

// Option configures a Store.
type Option func(*Store)

// WithPassphrase enables at-rest encryption of the token value using a key
// derived from the given passphrase. Role flags stay in the clear.
func WithPassphrase(passphrase string) Option {
	return func(s *Store) {
		if passphrase != "" {
			s.cipher = newTokenCipher(passphrase)
		}
	}
}

// New creates a credential store backed by the file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write persists the full credential triple. The record is written as a
// single file so no reader can observe a partial update.
func (s *Store) Write(token string, isMentor, isAdmin bool) error {
	stored := token
	if s.cipher != nil {
		encrypted, err := s.cipher.encrypt(token)
		if err != nil {
			return err
		}
		stored = encrypted
	}

	rec := diskRecord{
		Token:    stored,
		IsMentor: strconv.FormatBool(isMentor),
		IsAdmin:  strconv.FormatBool(isAdmin),
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	// Write-then-rename keeps the update atomic for concurrent readers.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Read returns the persisted record, or the unauthenticated defaults when
// the file is absent, unreadable, or undecodable. Storage failure is never
// surfaced; the caller simply sees a logged-out state.
func (s *Store) Read() Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}
	}

	var rec diskRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}
	}

	token := rec.Token
	if s.cipher != nil && token != "" {
		decrypted, err := s.cipher.decrypt(token)
		if err != nil {
			// Wrong passphrase or corrupted file: treat as logged out.
			return Record{}
		}
		token = decrypted
	}

	return Record{
		Token:    token,
		IsMentor: parseFlag(rec.IsMentor),
		IsAdmin:  parseFlag(rec.IsAdmin),
	}
}

// Clear removes the persisted record. Clearing an absent record is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// parseFlag decodes the stringly boolean encoding: "true" is true,
// anything else is false.
func parseFlag(s string) bool {
	return s == "true"
}
