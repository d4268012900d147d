package artstore

import (
	"fmt"
	"os"
	"sync"
)

// idLocks serializes write operations per artifact identifier. Two
// concurrent destructive replaces on the same artifact would otherwise race
// at the filesystem level and expose a half-populated directory to readers.
type idLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newIDLocks() *idLocks {
	return &idLocks{locks: map[string]*sync.Mutex{}}
}

// lock acquires the per-identifier mutex and returns its unlock func.
func (l *idLocks) lock(id string) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// Create makes a new artifact with a freshly generated identifier and
// conditionally applies each supplied facet. A nil metadata, images or rtis
// value leaves that sub-resource empty at creation; a non-nil value (even
// empty) is written. Identifier collisions are treated as near-impossible
// and surface as CodeConflict.
func (s *Store) Create(metadata *string, images []Upload, rtis map[string][]Upload) (string, error) {
	id := s.newID()
	unlock := s.locks.lock(id)
	defer unlock()

	dir, err := s.paths.Artifact(id)
	if err != nil {
		return "", err
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		if os.IsExist(err) {
			return "", Newf(CodeConflict, "artifact %s already exists", id)
		}
		return "", newError(CodeStorage, fmt.Errorf("create artifact dir: %w", err))
	}
	if err := s.applyFacets(id, metadata, images, rtis); err != nil {
		return "", err
	}
	return id, nil
}

// Update applies each supplied facet to an existing artifact. Supplying an
// images or rtis value triggers full destructive replacement of that
// sub-resource; there is no merge or partial-add semantic. Fails with
// CodeNotFound before any mutation when the artifact is absent.
func (s *Store) Update(id string, metadata *string, images []Upload, rtis map[string][]Upload) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if !s.Exists(id) {
		return Newf(CodeNotFound, "artifact %s not found", id)
	}
	return s.applyFacets(id, metadata, images, rtis)
}

// applyFacets writes each non-nil facet in order: metadata, images, RTIs.
// A failure partway through leaves the artifact in a mixed state; writes
// perform no rollback.
func (s *Store) applyFacets(id string, metadata *string, images []Upload, rtis map[string][]Upload) error {
	if metadata != nil {
		if err := s.WriteMetadata(id, *metadata); err != nil {
			return err
		}
	}
	if images != nil {
		dir, err := s.paths.Images(id)
		if err != nil {
			return err
		}
		if err := ReplaceAll(dir, images); err != nil {
			return err
		}
	}
	if rtis != nil {
		if err := s.replaceRTIs(id, rtis); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the artifact directory recursively, taking all contained
// images and RTI sets with it. Fails with CodeNotFound when absent.
func (s *Store) Delete(id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if !s.Exists(id) {
		return Newf(CodeNotFound, "artifact %s not found", id)
	}
	dir, err := s.paths.Artifact(id)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return newError(CodeStorage, fmt.Errorf("remove artifact dir: %w", err))
	}
	return nil
}
