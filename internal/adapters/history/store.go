// Package history persists the report of the most recent update run.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/uw/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileName is the name of the report file inside the state directory.
const FileName = "last_run.json"

// Store implements ports.HistoryStore using a flat JSON file.
type Store struct {
	path string
	mu   sync.RWMutex
	last *domain.RunReport
}

// NewStore creates a store backed by FileName inside dir.
func NewStore(dir string) (*Store, error) {
	s := &Store{path: filepath.Join(filepath.Clean(dir), FileName)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the report file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	var report domain.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}
	s.last = &report

	return nil
}

// Last returns the most recent report, or nil when no run has been recorded.
func (s *Store) Last() (*domain.RunReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return nil, nil
	}
	report := *s.last
	return &report, nil
}

// Save replaces the stored report. The file is written to a temporary
// sibling and renamed into place.
func (s *Store) Save(report domain.RunReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "dir", dir)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	s.last = &report
	return nil
}
