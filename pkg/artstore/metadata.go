package artstore

import (
	"encoding/json"
	"fmt"
	"os"
)

const metadataFile = "metadata.json"

// loadMetadata parses the artifact's metadata document, surfacing missing
// files and malformed JSON as errors. Listing uses it to decide which
// entries to skip.
func (s *Store) loadMetadata(id string) (map[string]any, error) {
	path, err := s.paths.Metadata(id)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Metadata returns the artifact's metadata document, degrading to an empty
// document when the file is missing or malformed. Read paths never fail on
// a single corrupt artifact.
func (s *Store) Metadata(id string) map[string]any {
	doc, err := s.loadMetadata(id)
	if err != nil {
		return map[string]any{}
	}
	return doc
}

// WriteMetadata parses raw as a JSON object and overwrites the artifact's
// metadata document with a stable two-space-indented serialization. Invalid
// JSON is rejected with CodeInvalidInput and leaves any prior file untouched.
func (s *Store) WriteMetadata(id, raw string) error {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return newError(CodeInvalidInput, fmt.Errorf("invalid metadata JSON: %w", err))
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return newError(CodeInvalidInput, fmt.Errorf("encode metadata: %w", err))
	}
	path, err := s.paths.Metadata(id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return newError(CodeStorage, fmt.Errorf("write metadata: %w", err))
	}
	return nil
}
