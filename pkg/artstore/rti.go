package artstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// descriptorFile marks a subdirectory of RTIs/ as a valid RTI set. A
// directory lacking it is invisible to listing and aggregation, which keeps
// orphaned or in-progress writes out of client views.
const descriptorFile = "info.json"

// RTISet summarizes one relightable-image set for client views.
type RTISet struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	URL       string   `json:"url"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Files     []string `json:"files"`
}

// CreateRTI creates a new RTI set under the artifact with a freshly
// generated identifier and stores the uploads into it. The descriptor file
// is not written here — callers must include info.json among the uploads,
// otherwise the set stays invisible.
func (s *Store) CreateRTI(id string, uploads []Upload) (string, error) {
	rtiID := s.newID()
	dir, err := s.paths.RTISet(id, rtiID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", newError(CodeStorage, fmt.Errorf("create rti dir: %w", err))
	}
	if err := StoreBatch(dir, uploads); err != nil {
		return "", err
	}
	return rtiID, nil
}

// DeleteRTI removes the RTI set directory recursively.
func (s *Store) DeleteRTI(id, rtiID string) error {
	dir, err := s.paths.RTISet(id, rtiID)
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Newf(CodeNotFound, "rti %s not found in artifact %s", rtiID, id)
	}
	if err := os.RemoveAll(dir); err != nil {
		return newError(CodeStorage, fmt.Errorf("remove rti dir: %w", err))
	}
	return nil
}

// ListRTIs enumerates the artifact's valid RTI sets in directory order.
// Subdirectories without a descriptor file are skipped. A missing RTIs/
// directory yields an empty collection.
func (s *Store) ListRTIs(id string) []RTISet {
	dir, err := s.paths.RTIs(id)
	if err != nil {
		return []RTISet{}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []RTISet{}
	}

	sets := []RTISet{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rtiID := entry.Name()
		setDir := filepath.Join(dir, rtiID)
		if _, err := os.Stat(filepath.Join(setDir, descriptorFile)); err != nil {
			continue
		}

		files := []string{}
		if names, err := os.ReadDir(setDir); err == nil {
			for _, f := range names {
				files = append(files, f.Name())
			}
		}

		set := RTISet{
			ID:    rtiID,
			Type:  "relight",
			URL:   s.FileURL(filepath.Join(setDir, descriptorFile)),
			Files: files,
		}
		if thumb, ok := s.rtiThumbnail(setDir, rtiID); ok {
			set.Thumbnail = thumb
		}
		sets = append(sets, set)
	}
	return sets
}

// rtiThumbnail resolves an RTI set's preview image. Different ingestion
// pipelines historically produced either thumbnail.jpg or <rti-id>.jpg, so
// both are tried; when neither exists the thumbnail is omitted rather than
// pointing at a file that is not there.
func (s *Store) rtiThumbnail(setDir, rtiID string) (string, bool) {
	for _, name := range []string{"thumbnail.jpg", rtiID + ".jpg"} {
		path := filepath.Join(setDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return s.FileURL(path), true
		}
	}
	return "", false
}

// replaceRTIs destroys the artifact's entire RTIs/ directory, recreates it
// empty and builds one fresh set per client-supplied field name. RTI sets
// are never partially edited, only wholesale replaced as a batch.
func (s *Store) replaceRTIs(id string, sets map[string][]Upload) error {
	dir, err := s.paths.RTIs(id)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return newError(CodeStorage, fmt.Errorf("clear RTIs dir: %w", err))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newError(CodeStorage, fmt.Errorf("create RTIs dir: %w", err))
	}
	for _, uploads := range sets {
		if _, err := s.CreateRTI(id, uploads); err != nil {
			return err
		}
	}
	return nil
}
