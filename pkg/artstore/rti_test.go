package artstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageRTI(t *testing.T, s *Store, artifactID, rtiID string, files map[string][]byte) {
	t.Helper()
	dir := filepath.Join(s.Root(), artifactID, "RTIs", rtiID)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
}

func TestCreateRTI_DistinctIDs(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "art", nil)

	first, err := s.CreateRTI("art", []Upload{FromBytes("info.json", []byte("{}"))})
	require.NoError(t, err)
	second, err := s.CreateRTI("art", []Upload{FromBytes("info.json", []byte("{}"))})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, ValidID(first))
}

func TestDeleteRTI_LeavesSiblingUntouched(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "art", nil)
	stageRTI(t, s, "art", "one", map[string][]byte{"info.json": []byte("{}"), "basis.dat": []byte("x")})
	stageRTI(t, s, "art", "two", map[string][]byte{"info.json": []byte("{}")})

	require.NoError(t, s.DeleteRTI("art", "one"))

	_, err := os.Stat(filepath.Join(s.Root(), "art", "RTIs", "one"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(s.Root(), "art", "RTIs", "two", "info.json"))
	assert.NoError(t, err)
}

func TestDeleteRTI_NotFound(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "art", nil)

	err := s.DeleteRTI("art", "missing")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestListRTIs_SkipsDirsWithoutDescriptor(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "art", nil)
	stageRTI(t, s, "art", "valid", map[string][]byte{"info.json": []byte("{}")})
	stageRTI(t, s, "art", "orphan", map[string][]byte{"basis.dat": []byte("x")})

	sets := s.ListRTIs("art")
	require.Len(t, sets, 1)
	assert.Equal(t, "valid", sets[0].ID)
	assert.Equal(t, "relight", sets[0].Type)
	assert.Equal(t, "/files/artifacts/art/RTIs/valid/info.json", sets[0].URL)
	assert.Equal(t, []string{"info.json"}, sets[0].Files)
}

func TestListRTIs_ThumbnailFallbackChain(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "art", nil)

	stageRTI(t, s, "art", "named", map[string][]byte{
		"info.json":     []byte("{}"),
		"thumbnail.jpg": []byte("t"),
	})
	stageRTI(t, s, "art", "fallback", map[string][]byte{
		"info.json":    []byte("{}"),
		"fallback.jpg": []byte("t"),
	})
	stageRTI(t, s, "art", "bare", map[string][]byte{
		"info.json": []byte("{}"),
	})

	byID := map[string]RTISet{}
	for _, set := range s.ListRTIs("art") {
		byID[set.ID] = set
	}
	require.Len(t, byID, 3)

	assert.Equal(t, "/files/artifacts/art/RTIs/named/thumbnail.jpg", byID["named"].Thumbnail)
	assert.Equal(t, "/files/artifacts/art/RTIs/fallback/fallback.jpg", byID["fallback"].Thumbnail)
	assert.Empty(t, byID["bare"].Thumbnail, "thumbnail omitted when neither file exists")
}

func TestListRTIs_EmptyWhenNoRTIsDir(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "art", nil)

	assert.Empty(t, s.ListRTIs("art"))
}
