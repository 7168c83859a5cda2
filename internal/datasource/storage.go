// Package datasource abstracts where the support dataset comes from. The
// engine itself never fetches anything; a composition root picks a source,
// pulls the raw documents, and hands the bytes to feature.LoadBytes.
package datasource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Client fetches the raw dataset documents.
type Client interface {
	// Bulk returns the bulk dataset document.
	Bulk(ctx context.Context) ([]byte, error)
	// Details returns per-feature detail documents keyed by feature id
	// (the filename stem). A source without detail documents returns an
	// empty map.
	Details(ctx context.Context) (map[string][]byte, error)
}

// LocalStorage implements Client using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BulkPath  string
	DetailDir string // optional
}

// NewLocalStorage creates a filesystem-backed Client.
func NewLocalStorage(bulkPath, detailDir string) *LocalStorage {
	return &LocalStorage{BulkPath: bulkPath, DetailDir: detailDir}
}

// Bulk reads the bulk dataset document.
func (s *LocalStorage) Bulk(ctx context.Context) ([]byte, error) {
	return os.ReadFile(s.BulkPath)
}

// Details reads every *.json file in the detail directory.
func (s *LocalStorage) Details(ctx context.Context) (map[string][]byte, error) {
	details := map[string][]byte{}
	if s.DetailDir == "" {
		return details, nil
	}
	entries, err := os.ReadDir(s.DetailDir)
	if err != nil {
		if os.IsNotExist(err) {
			return details, nil
		}
		return nil, fmt.Errorf("read detail directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.DetailDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read detail file %s: %w", e.Name(), err)
		}
		details[strings.TrimSuffix(e.Name(), ".json")] = data
	}
	return details, nil
}
