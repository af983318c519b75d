package auth

import (
	"errors"
	"testing"
)

type memoryStore struct {
	name string
	err  error
}

func (m *memoryStore) SetUsername(name string) error {
	if m.err != nil {
		return m.err
	}
	m.name = name
	return nil
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		err   error
	}{
		{"both set", Credentials{Username: "tony", Password: "jarvis"}, nil},
		{"missing username", Credentials{Password: "jarvis"}, ErrMissingFields},
		{"blank username", Credentials{Username: "  ", Password: "jarvis"}, ErrMissingFields},
		{"missing password", Credentials{Username: "tony"}, ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.creds.Validate(); !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestLoginAndLogoutPersist(t *testing.T) {
	store := &memoryStore{}
	s := NewSession("", store)

	if s.Label() != "Login" {
		t.Fatalf("unexpected label %q", s.Label())
	}

	if err := s.Login(Credentials{Username: " pepper ", Password: "x"}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user, ok := s.User(); !ok || user != "pepper" {
		t.Fatalf("expected pepper to be logged in, got %q", user)
	}
	if store.name != "pepper" {
		t.Fatalf("expected name to be persisted, got %q", store.name)
	}
	if s.Label() != "Logout (pepper)" {
		t.Fatalf("unexpected label %q", s.Label())
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, ok := s.User(); ok || store.name != "" {
		t.Fatal("expected logout to clear the stored name")
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	store := &memoryStore{}
	s := NewSession("", store)

	if err := s.Login(Credentials{Username: "tony"}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, ok := s.User(); ok {
		t.Fatal("expected no user after failed login")
	}
	if err := s.Login(Credentials{}); err == nil || err.Error() != "Please fill in all fields" {
		t.Fatalf("unexpected error message %v", err)
	}
}

func TestLoginKeepsStateWhenSaveFails(t *testing.T) {
	s := NewSession("", &memoryStore{err: errors.New("read-only")})

	if err := s.Login(Credentials{Username: "tony", Password: "x"}); err == nil {
		t.Fatal("expected save failure to surface")
	}
	if _, ok := s.User(); ok {
		t.Fatal("expected no user when the login could not be saved")
	}
}

func TestTitles(t *testing.T) {
	if Title(false) != "Login to Stark Notes" || Title(true) != "Create an account" {
		t.Fatal("unexpected dialog titles")
	}
}
