package artstore

import (
	"path/filepath"
	"regexp"
)

// validID matches the identifier character class accepted at the API
// boundary: word characters and hyphens. Anything else (separators,
// traversal sequences, empty strings) is rejected before any path is built.
var validID = regexp.MustCompile(`^[\w\-]+$`)

// ValidID reports whether id is a well-formed artifact or RTI set identifier.
func ValidID(id string) bool {
	return validID.MatchString(id)
}

// Resolver maps artifact and RTI set identifiers to filesystem locations.
// It performs no I/O; every method re-validates its identifiers so a caller
// holding unsanitized input cannot escape the storage root.
type Resolver struct {
	Root string
}

// Artifact returns the root directory of the artifact.
func (r Resolver) Artifact(id string) (string, error) {
	if !ValidID(id) {
		return "", Newf(CodeInvalidInput, "invalid artifact id %q", id)
	}
	return filepath.Join(r.Root, id), nil
}

// Images returns the artifact's flat images directory.
func (r Resolver) Images(id string) (string, error) {
	dir, err := r.Artifact(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "images"), nil
}

// RTIs returns the artifact's directory of RTI set subdirectories.
func (r Resolver) RTIs(id string) (string, error) {
	dir, err := r.Artifact(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "RTIs"), nil
}

// RTISet returns the directory of one RTI set within the artifact.
func (r Resolver) RTISet(id, rtiID string) (string, error) {
	dir, err := r.RTIs(id)
	if err != nil {
		return "", err
	}
	if !ValidID(rtiID) {
		return "", Newf(CodeInvalidInput, "invalid rti id %q", rtiID)
	}
	return filepath.Join(dir, rtiID), nil
}

// Metadata returns the path of the artifact's metadata document.
func (r Resolver) Metadata(id string) (string, error) {
	dir, err := r.Artifact(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, metadataFile), nil
}
