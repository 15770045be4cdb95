package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// BlobStore is the string-keyed persistence backend the profile layer
// consumes. One Put covers a full blob; partial writes are not modeled.
type BlobStore interface {
	GetBlob(name string) ([]byte, bool, error)
	PutBlob(name string, data []byte) error
	DeleteBlob(name string) error
}

func (s *Storage) GetBlob(name string) ([]byte, bool, error) {
	var data string
	err := s.DB.QueryRow(
		"SELECT data FROM blobs WHERE name = ?",
		name,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read blob %s: %w", name, err)
	}
	return []byte(data), true, nil
}

func (s *Storage) PutBlob(name string, data []byte) error {
	_, err := s.DB.Exec(
		"INSERT OR REPLACE INTO blobs (name, data, updated_at) VALUES (?, ?, ?)",
		name, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write blob %s: %w", name, err)
	}
	return nil
}

func (s *Storage) DeleteBlob(name string) error {
	_, err := s.DB.Exec("DELETE FROM blobs WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", name, err)
	}
	return nil
}
