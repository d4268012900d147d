// Package artstore stores cultural-heritage artifacts as directories on a
// filesystem tree. Each artifact directory holds a metadata.json document, a
// flat images/ directory and an RTIs/ directory of relightable-image sets.
package artstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store is the artifact store rooted at a single storage directory.
type Store struct {
	paths  Resolver
	public string // public URL prefix the storage root is served under

	locks *idLocks
	newID func() string
}

// New creates a Store rooted at dir, creating it (with parents) if absent.
// publicPrefix is the URL prefix the static file server mounts dir at, e.g.
// "/files/artifacts".
func New(dir, publicPrefix string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Store{
		paths:  Resolver{Root: abs},
		public: publicPrefix,
		locks:  newIDLocks(),
		newID:  uuid.NewString,
	}, nil
}

// Root returns the absolute storage root directory.
func (s *Store) Root() string {
	return s.paths.Root
}

// Exists reports whether the artifact directory exists.
func (s *Store) Exists(id string) bool {
	dir, err := s.paths.Artifact(id)
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// FileURL translates an absolute storage path into its client-facing URL by
// swapping the storage root prefix for the public file-serving prefix. All
// URL building goes through here so the scheme cannot drift between views.
func (s *Store) FileURL(path string) string {
	rel, err := filepath.Rel(s.paths.Root, path)
	if err != nil {
		return ""
	}
	return s.public + "/" + filepath.ToSlash(rel)
}
