package artstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("a1b2-c3"))
	assert.True(t, ValidID("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("../escape"))
	assert.False(t, ValidID("a/b"))
	assert.False(t, ValidID("a\\b"))
	assert.False(t, ValidID("a b"))
	assert.False(t, ValidID("a.b"))
}

func TestResolver_RejectsTraversal(t *testing.T) {
	r := Resolver{Root: "/data/artifacts"}

	_, err := r.Artifact("../../etc")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidInput))

	_, err = r.RTISet("ok-id", "../other")
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeInvalidInput))
}

func TestResolver_Layout(t *testing.T) {
	r := Resolver{Root: "/data/artifacts"}

	dir, err := r.Artifact("abc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/artifacts", "abc"), dir)

	images, err := r.Images("abc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "images"), images)

	rtis, err := r.RTIs("abc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "RTIs"), rtis)

	set, err := r.RTISet("abc", "xyz")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(rtis, "xyz"), set)

	meta, err := r.Metadata("abc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "metadata.json"), meta)
}
