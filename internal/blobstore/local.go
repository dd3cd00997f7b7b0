package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// Local stores each blob as a single file under the configured root
// directory, one generated name per upload.
type Local struct {
	root string
}

// NewLocal creates the root directory if it is missing.
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Local{root: root}, nil
}

// Root returns the directory blobs are stored under.
func (l *Local) Root() string {
	return l.root
}

func (l *Local) Save(_ context.Context, key string, data []byte) error {
	return os.WriteFile(filepath.Join(l.root, key), data, 0o644)
}

func (l *Local) Get(_ context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.root, key))
}

func (l *Local) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(l.root, key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	return os.Remove(filepath.Join(l.root, key))
}
