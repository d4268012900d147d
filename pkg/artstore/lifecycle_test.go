package artstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestCreate_AllFacets(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Create(
		strptr(`{"title":"Vase"}`),
		[]Upload{FromBytes("a.jpg", []byte("a")), FromBytes("b.png", []byte("b"))},
		map[string][]Upload{
			"rti-0": {FromBytes("info.json", []byte("{}")), FromBytes("basis.dat", []byte("x"))},
		},
	)
	require.NoError(t, err)
	require.True(t, ValidID(id))

	detail, err := s.Detail(id)
	require.NoError(t, err)
	assert.Equal(t, "Vase", detail["title"])
	assert.Len(t, detail["images"], 2)
	assert.Len(t, detail["relightableMedia"], 1)
}

func TestCreate_OmittedFacetsStayEmpty(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Create(nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, s.Exists(id))

	// no metadata document, no images dir, no RTIs dir
	_, err = os.Stat(filepath.Join(s.Root(), id, "metadata.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(s.Root(), id, "images"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(s.Root(), id, "RTIs"))
	assert.True(t, os.IsNotExist(err))
}

func TestCreate_UniqueIdentifiers(t *testing.T) {
	s := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := s.Create(nil, nil, nil)
		require.NoError(t, err)
		require.False(t, seen[id], "identifier reused: %s", id)
		seen[id] = true
	}
}

func TestCreate_RejectsMalformedMetadata(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(strptr("{broken"), nil, nil)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidInput))
}

func TestUpdate_ReplacesOnlySuppliedFacets(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Create(
		strptr(`{"title":"Vase"}`),
		[]Upload{FromBytes("a.jpg", []byte("a")), FromBytes("b.png", []byte("b"))},
		nil,
	)
	require.NoError(t, err)

	// supply only new images; metadata must stay untouched
	err = s.Update(id, nil, []Upload{FromBytes("c.jpg", []byte("c"))}, nil)
	require.NoError(t, err)

	detail, err := s.Detail(id)
	require.NoError(t, err)
	assert.Equal(t, "Vase", detail["title"])
	assert.Equal(t, []string{"/files/artifacts/" + id + "/images/c.jpg"}, detail["images"])
}

func TestUpdate_ReplacesRTISetsWholesale(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Create(nil, nil, map[string][]Upload{
		"old": {FromBytes("info.json", []byte("{}"))},
	})
	require.NoError(t, err)
	oldSets := s.ListRTIs(id)
	require.Len(t, oldSets, 1)

	err = s.Update(id, nil, nil, map[string][]Upload{
		"newA": {FromBytes("info.json", []byte("{}"))},
		"newB": {FromBytes("info.json", []byte("{}"))},
	})
	require.NoError(t, err)

	sets := s.ListRTIs(id)
	require.Len(t, sets, 2)
	for _, set := range sets {
		assert.NotEqual(t, oldSets[0].ID, set.ID, "RTI identifiers are never reused")
	}
}

func TestUpdate_NotFoundPerformsNoMutation(t *testing.T) {
	s := newTestStore(t)

	err := s.Update("missing", strptr(`{"title":"x"}`), []Upload{FromBytes("a.jpg", []byte("a"))}, nil)
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeNotFound))

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)
	assert.Empty(t, entries, "failed update must not create anything")
}

func TestDelete_BehavesAsIfNeverExisted(t *testing.T) {
	s := newTestStore(t)

	id, err := s.Create(strptr(`{"title":"Vase"}`), []Upload{FromBytes("a.jpg", []byte("a"))}, nil)
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))

	_, err = s.Detail(id)
	assert.True(t, IsCode(err, CodeNotFound))
	assert.Empty(t, s.List())
	assert.False(t, s.Exists(id))

	// second delete reports not found
	err = s.Delete(id)
	assert.True(t, IsCode(err, CodeNotFound))
}
