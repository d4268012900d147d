package artstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), "/files/artifacts")
	require.NoError(t, err)
	return s
}

// createArtifact makes a bare artifact directory with the given metadata
// bytes, bypassing the lifecycle so tests can stage arbitrary states.
func createArtifact(t *testing.T, s *Store, id string, metadata []byte) string {
	t.Helper()
	dir := filepath.Join(s.Root(), id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if metadata != nil {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "metadata.json"), metadata, 0o644))
	}
	return dir
}

func TestStore_FileURL(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(s.Root(), "abc", "images", "a.jpg")
	assert.Equal(t, "/files/artifacts/abc/images/a.jpg", s.FileURL(path))
}

func TestStore_Exists(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.Exists("missing"))
	assert.False(t, s.Exists("../escape"))

	createArtifact(t, s, "present", nil)
	assert.True(t, s.Exists("present"))
}
