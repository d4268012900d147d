package artstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageImages(t *testing.T, s *Store, id string, names ...string) {
	t.Helper()
	dir := filepath.Join(s.Root(), id, "images")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
	}
}

func TestPreview_FieldsFromMetadata(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "vase", []byte(`{"title":"Vase","description":"Greek","date":"400 BC","creator":"unknown"}`))

	p := s.Preview("vase")
	assert.Equal(t, "vase", p.ID)
	assert.Equal(t, "Vase", p.Title)
	assert.Equal(t, "Greek", p.Description)
	assert.Equal(t, "400 BC", p.Date)
	assert.Empty(t, p.Thumbnail)
}

func TestPreview_ThumbnailPrefersRTISet(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "vase", []byte(`{}`))
	stageImages(t, s, "vase", "a.jpg")
	stageRTI(t, s, "vase", "set1", map[string][]byte{
		"info.json":     []byte("{}"),
		"thumbnail.jpg": []byte("t"),
	})

	p := s.Preview("vase")
	assert.Equal(t, "/files/artifacts/vase/RTIs/set1/thumbnail.jpg", p.Thumbnail)
}

func TestPreview_ThumbnailFallsBackToFirstImage(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "vase", []byte(`{}`))
	stageImages(t, s, "vase", "a.jpg")
	// RTI set present but without any thumbnail file
	stageRTI(t, s, "vase", "set1", map[string][]byte{"info.json": []byte("{}")})

	p := s.Preview("vase")
	assert.Equal(t, "/files/artifacts/vase/images/a.jpg", p.Thumbnail)
}

func TestPreview_DegradesOnMalformedMetadata(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "corrupt", []byte("{not json"))

	p := s.Preview("corrupt")
	assert.Equal(t, "corrupt", p.ID)
	assert.Empty(t, p.Title)
}

func TestImages_SkipsNonImageFiles(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "vase", nil)
	stageImages(t, s, "vase", "a.jpg", "b.PNG", "notes.txt")

	urls := s.Images("vase")
	assert.ElementsMatch(t, []string{
		"/files/artifacts/vase/images/a.jpg",
		"/files/artifacts/vase/images/b.PNG",
	}, urls)
}

func TestDetail_SpreadsMetadataAndOverridesComputedKeys(t *testing.T) {
	s := newTestStore(t)
	createArtifact(t, s, "vase", []byte(`{"title":"Vase","customKey":"kept","images":"overridden"}`))
	stageImages(t, s, "vase", "a.jpg")
	stageRTI(t, s, "vase", "set1", map[string][]byte{"info.json": []byte("{}")})

	detail, err := s.Detail("vase")
	require.NoError(t, err)

	assert.Equal(t, "vase", detail["id"])
	assert.Equal(t, "Vase", detail["title"])
	assert.Equal(t, "kept", detail["customKey"], "unrecognized metadata keys pass through")

	images, ok := detail["images"].([]string)
	require.True(t, ok, "computed images collection overrides the metadata key")
	assert.Equal(t, []string{"/files/artifacts/vase/images/a.jpg"}, images)

	sets, ok := detail["relightableMedia"].([]RTISet)
	require.True(t, ok)
	require.Len(t, sets, 1)
	assert.Equal(t, "set1", sets[0].ID)
}

func TestDetail_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Detail("missing")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))
}

func TestList_SkipsInvalidEntries(t *testing.T) {
	s := newTestStore(t)

	createArtifact(t, s, "good", []byte(`{"title":"Good"}`))
	createArtifact(t, s, "no-metadata", nil)
	createArtifact(t, s, "corrupt", []byte("{not json"))
	// stray file at the root is not an artifact
	require.NoError(t, os.WriteFile(filepath.Join(s.Root(), "stray.txt"), []byte("x"), 0o644))

	previews := s.List()
	require.Len(t, previews, 1)
	assert.Equal(t, "good", previews[0].ID)
	assert.Equal(t, "Good", previews[0].Title)
}

func TestList_EmptyStore(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.List())
}
