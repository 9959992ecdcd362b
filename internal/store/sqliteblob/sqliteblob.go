// Package sqliteblob persists collection blobs in a single sqlite database.
// It trades the file backend's one-file-per-collection layout for a single
// portable database file with transactional writes.
package sqliteblob

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Blobs struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at dbPath and brings
// its schema up to date.
func Open(dbPath string) (*Blobs, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Blobs{db: db}, nil
}

func (b *Blobs) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *Blobs) Load(key string) ([]byte, bool, error) {
	var data []byte
	err := b.db.QueryRow(`SELECT data FROM blobs WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load blob %s: %w", key, err)
	}
	return data, true, nil
}

func (b *Blobs) Save(key string, data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data)
	if err != nil {
		return fmt.Errorf("save blob %s: %w", key, err)
	}
	return nil
}
