package theme

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the theme document at Path.
type Store struct {
	Path string
}

// NewStore returns a store for the document at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the document.
func (s *Store) Load() (*Document, error) {
	return Load(s.Path)
}

// Save overwrites the document on disk. Comments in the original file are
// not preserved.
func (s *Store) Save(doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create theme config dir: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write theme config: %w", err)
	}
	return nil
}

// Update performs a locked read-modify-write of the document. The lock is an
// advisory flock on <path>.lock held for the duration of fn and the save.
func (s *Store) Update(fn func(doc *Document) error) (*Document, error) {
	release, err := acquireLock(s.Path + ".lock")
	if err != nil {
		return nil, fmt.Errorf("lock theme config: %w", err)
	}
	defer release()

	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
