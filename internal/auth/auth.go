// Package auth is a local login stand-in. It remembers a display name and
// never verifies the password.
package auth

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingFields = errors.New("Please fill in all fields")

type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ErrMissingFields
	}
	return nil
}

// Persister stores the display name between runs. *config.Config satisfies
// it.
type Persister interface {
	SetUsername(name string) error
}

type Session struct {
	user  string
	store Persister
}

// NewSession restores a session for user, which may be empty. store may be
// nil.
func NewSession(user string, store Persister) *Session {
	return &Session{user: strings.TrimSpace(user), store: store}
}

func (s *Session) Login(creds Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}

	name := strings.TrimSpace(creds.Username)
	if s.store != nil {
		if err := s.store.SetUsername(name); err != nil {
			return fmt.Errorf("failed to save login: %w", err)
		}
	}

	s.user = name
	return nil
}

func (s *Session) Logout() error {
	if s.store != nil {
		if err := s.store.SetUsername(""); err != nil {
			return fmt.Errorf("failed to save logout: %w", err)
		}
	}

	s.user = ""
	return nil
}

func (s *Session) User() (string, bool) {
	return s.user, s.user != ""
}

// Label is the header button text.
func (s *Session) Label() string {
	if user, ok := s.User(); ok {
		return fmt.Sprintf("Logout (%s)", user)
	}
	return "Login"
}

// Title returns the dialog heading for login or register mode.
func Title(register bool) string {
	if register {
		return "Create an account"
	}
	return "Login to Stark Notes"
}

func Description(register bool) string {
	if register {
		return "Create an account to sync your notes across devices."
	}
	return "Login to access your notes from anywhere."
}
