// Package fileblob persists collection blobs as JSON files on disk, one
// file per key. It is the default backend for single-machine deployments.
package fileblob

import (
	"fmt"
	"os"
	"path/filepath"
)

type Blobs struct {
	dir string
}

// New returns a file-backed blob store rooted at dir, creating it if needed.
func New(dir string) (*Blobs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Blobs{dir: dir}, nil
}

func (b *Blobs) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *Blobs) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read blob %s: %w", key, err)
	}
	return data, true, nil
}

// Save writes to a temp file and renames it into place, so a crash mid-write
// never leaves a truncated blob behind.
func (b *Blobs) Save(key string, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp blob %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp blob %s: %w", key, err)
	}
	if err := os.Rename(tmpName, b.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace blob %s: %w", key, err)
	}
	return nil
}
