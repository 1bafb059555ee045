package storage

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	store, err := New(afero.NewMemMapFs(), "attachments")
	require.NoError(t, err)
	return store
}

func TestSaveAndOpen(t *testing.T) {
	store := newTestStore(t)

	name, size, err := store.Save(strings.NewReader("hello"), "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.True(t, store.Exists(name))

	f, err := store.Open(name)
	require.NoError(t, err)
	defer f.Close()

	content, err := afero.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)

	a, _, err := store.Save(strings.NewReader("x"), "a.png")
	require.NoError(t, err)
	b, _, err := store.Save(strings.NewReader("y"), "a.png")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSaveIgnoresOversizedExtension(t *testing.T) {
	store := newTestStore(t)

	name, _, err := store.Save(strings.NewReader("x"), "weird."+strings.Repeat("e", 32))
	require.NoError(t, err)
	assert.NotContains(t, name, ".")
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)

	name, _, err := store.Save(strings.NewReader("bye"), "doc.txt")
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	assert.False(t, store.Exists(name))

	assert.Error(t, store.Remove(name))
}

func TestWritable(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Writable())

	roStore := &Store{fs: afero.NewReadOnlyFs(afero.NewMemMapFs()), root: "attachments"}
	assert.Error(t, roStore.Writable())
}

func TestPathCannotEscapeRoot(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, "attachments/evil", store.path("../../evil"))
}
