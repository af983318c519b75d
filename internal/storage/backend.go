// Package storage persists named slots of JSON data and keeps an in-memory
// mirror of every slot it has read or written.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/Paintersrp/stark/internal/constants"
)

var ErrNotFound = errors.New("slot not found")

var validKey = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Backend is the durable side of a Store.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

func ValidateKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf(
			"invalid slot key %q: keys must only contain alphanumeric characters, hyphens, and underscores",
			key,
		)
	}
	return nil
}

// OpenBackend builds the backend named by kind rooted at dir.
func OpenBackend(kind, dir string) (Backend, error) {
	switch kind {
	case "", BackendFile:
		return NewFileBackend(dir)
	case BackendSQLite:
		return NewSQLiteBackend(filepath.Join(dir, constants.DatabaseFile))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
