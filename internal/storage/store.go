package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Store reads and writes JSON slots through a Backend. Failures never reach
// the caller: a bad read yields the default, a bad write keeps the mirror.
type Store struct {
	backend Backend
	log     zerolog.Logger

	mu     sync.RWMutex
	mirror map[string][]byte
}

func New(b Backend, log zerolog.Logger) *Store {
	return &Store{
		backend: b,
		log:     log.With().Str("component", "storage").Logger(),
		mirror:  make(map[string][]byte),
	}
}

// Open builds a Store over the backend named by kind.
func Open(kind, dir string, log zerolog.Logger) (*Store, error) {
	b, err := OpenBackend(kind, dir)
	if err != nil {
		return nil, err
	}
	return New(b, log), nil
}

func (s *Store) Backend() Backend {
	return s.backend
}

// Get decodes the slot into dst and reports whether a stored value was used.
// dst is left untouched when the slot is missing or fails to decode.
func (s *Store) Get(key string, dst any) bool {
	data, ok := s.raw(key)
	if !ok {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn().Err(err).Str("slot", key).Msg("discarding unreadable slot")
		return false
	}

	return true
}

func (s *Store) raw(key string) ([]byte, bool) {
	s.mu.RLock()
	data, ok := s.mirror[key]
	s.mu.RUnlock()
	if ok {
		return data, true
	}

	data, err := s.backend.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn().Err(err).Str("slot", key).Msg("failed to read slot")
		}
		return nil, false
	}

	if !json.Valid(data) {
		s.log.Warn().Str("slot", key).Msg("discarding unreadable slot")
		return nil, false
	}

	s.mu.Lock()
	s.mirror[key] = data
	s.mu.Unlock()

	return data, true
}

// Set mirrors v immediately and then writes it to the backend.
func (s *Store) Set(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("slot", key).Msg("failed to encode slot")
		return
	}

	s.mu.Lock()
	s.mirror[key] = data
	s.mu.Unlock()

	if err := s.backend.Write(key, data); err != nil {
		s.log.Error().Err(err).Str("slot", key).Msg("failed to persist slot")
		return
	}

	s.log.Debug().Str("slot", key).Int("bytes", len(data)).Msg("slot saved")
}

// Invalidate forgets the mirrored value so the next read hits the backend.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.mirror, key)
	s.mu.Unlock()
}

// Matches reports whether data equals the mirrored value of key. The watcher
// uses it to skip events caused by this process's own writes.
func (s *Store) Matches(key string, data []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mirrored, ok := s.mirror[key]
	return ok && bytes.Equal(mirrored, data)
}

func (s *Store) Close() error {
	if err := s.backend.Close(); err != nil {
		return fmt.Errorf("failed to close storage backend: %w", err)
	}
	return nil
}

// Load returns the slot decoded as T, or def when it is missing or invalid.
func Load[T any](s *Store, key string, def T) T {
	var v T
	if !s.Get(key, &v) {
		return def
	}
	return v
}

func Save[T any](s *Store, key string, v T) {
	s.Set(key, v)
}
