package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore persists receipt files on the local filesystem under a single
// directory. Stored names are generated, so concurrent uploads never collide.
type LocalStore struct {
	dir     string
	maxSize int64
}

// NewLocalStore creates the storage directory if needed and returns a store.
func NewLocalStore(dir string, maxSize int64) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, maxSize: maxSize}, nil
}

// Save writes the file under a generated unique name, keeping the original
// extension, and returns the stored name and the number of bytes written.
func (s *LocalStore) Save(originalName string, r io.Reader) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	storedName := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	var src io.Reader = r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}

	size, err := io.Copy(f, src)
	if err != nil {
		os.Remove(f.Name())
		return "", 0, err
	}
	if s.maxSize > 0 && size > s.maxSize {
		os.Remove(f.Name())
		return "", 0, fmt.Errorf("file exceeds maximum upload size of %d bytes", s.maxSize)
	}

	return storedName, size, nil
}

// Open returns a reader for a stored file.
func (s *LocalStore) Open(storedName string) (io.ReadCloser, error) {
	return os.Open(s.path(storedName))
}

// Remove deletes a stored file. A missing file is not an error.
func (s *LocalStore) Remove(storedName string) error {
	err := os.Remove(s.path(storedName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// path resolves a stored name inside the storage directory. Base strips any
// traversal components from names that arrive via URL parameters.
func (s *LocalStore) path(storedName string) string {
	return filepath.Join(s.dir, filepath.Base(storedName))
}
