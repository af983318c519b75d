package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	slotExt        = ".json"
	tempFilePrefix = "stark-tmp-"
)

// FileBackend keeps one JSON file per slot.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Dir() string {
	return b.dir
}

func (b *FileBackend) Path(key string) string {
	return filepath.Join(b.dir, key+slotExt)
}

func (b *FileBackend) Read(key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", key, err)
	}

	return data, nil
}

func (b *FileBackend) Write(key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return writeFileAtomic(b.Path(key), data, 0o644)
}

func (b *FileBackend) Close() error {
	return nil
}

// keyForPath maps a slot file back to its key, ignoring temp files.
func keyForPath(path string) (string, bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, tempFilePrefix) || filepath.Ext(base) != slotExt {
		return "", false
	}
	key := strings.TrimSuffix(base, slotExt)
	if ValidateKey(key) != nil {
		return "", false
	}
	return key, true
}

// writeFileAtomic writes to a temp file in the same directory and renames it
// over the target so readers never observe a half-written slot.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
