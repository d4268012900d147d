package artstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBatch_WritesAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	err := StoreBatch(dir, []Upload{
		FromBytes("a.jpg", []byte("first")),
		FromBytes("b.png", []byte("two")),
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)

	// same-named upload wins over the existing file
	err = StoreBatch(dir, []Upload{FromBytes("a.jpg", []byte("second"))})
	require.NoError(t, err)

	got, err = os.ReadFile(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestStoreBatch_StripsPathFromFilename(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	err := StoreBatch(dir, []Upload{FromBytes("../../evil.jpg", []byte("x"))})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "evil.jpg"))
	assert.NoError(t, err, "only the base name is used on disk")
}

func TestReplaceAll_DropsPreviousContents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	require.NoError(t, StoreBatch(dir, []Upload{
		FromBytes("a.jpg", []byte("a")),
		FromBytes("b.png", []byte("b")),
	}))

	require.NoError(t, ReplaceAll(dir, []Upload{FromBytes("c.jpg", []byte("c"))}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "c.jpg", entries[0].Name())
}

func TestReplaceAll_NoopWhenDirAbsent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")
	require.NoError(t, ReplaceAll(dir, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
