package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uncurl/uncurl/packages/curl"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openStore(t)

	command := "curl 'https://example.com' -X 'POST' -d 'a=1'"
	req, err := curl.Parse(command)
	require.NoError(t, err)

	entry, err := store.Record(command, req)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "https://example.com", entry.URL)
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, 3, entry.TokenCount)

	entries, err := store.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, command, entries[0].Command)
}

func TestList_LimitAndOrder(t *testing.T) {
	store := openStore(t)

	for _, target := range []string{"one", "two", "three"} {
		command := "curl 'https://example.com/" + target + "'"
		req, err := curl.Parse(command)
		require.NoError(t, err)
		_, err = store.Record(command, req)
		require.NoError(t, err)
	}

	entries, err := store.List(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	all, err := store.List(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestClear(t *testing.T) {
	store := openStore(t)

	req, err := curl.Parse("curl 'https://example.com'")
	require.NoError(t, err)
	_, err = store.Record("curl 'https://example.com'", req)
	require.NoError(t, err)

	require.NoError(t, store.Clear())

	entries, err := store.List(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.List(0)
	require.NoError(t, err)
}
