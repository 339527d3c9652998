package localstore

import (
	"context"
	"os"
	"path/filepath"

	"sonrisitas-client/internal/pkg/exceptions"
)

type fileStore struct {
	dir string
}

// NewFileStore opens (creating if needed) a directory-backed store where each
// key lives in its own file.
func NewFileStore(dir string) (LocalStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, exceptions.ErrStorageWrite(err, dir)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrStorageRead(err, key)
	}
	return data, nil
}

func (s *fileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0600); err != nil {
		return exceptions.ErrStorageWrite(err, key)
	}
	return nil
}

func (s *fileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return exceptions.ErrStorageDelete(err, key)
	}
	return nil
}

func (s *fileStore) path(key string) string {
	// Keys are fixed constants, but never let one escape the store dir.
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}
