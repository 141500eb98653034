package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each report as a JSON blob under a directory,
// one file per token.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(token string) string {
	return filepath.Join(s.dir, token+".json")
}

// CreateReport writes the record to disk and returns its token.
func (s *FileStore) CreateReport(_ context.Context, input CreateReportInput) (string, error) {
	record := newRecord(input)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(s.path(record.Token), data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return record.Token, nil
}

// GetReport reads a record back by token.
func (s *FileStore) GetReport(_ context.Context, token string) (*ReportRecord, error) {
	data, err := os.ReadFile(s.path(token))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read report: %w", err)
	}

	var record ReportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", token, err)
	}
	return &record, nil
}
