package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	s := NewMemStore()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("k", "v1"))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	require.NoError(t, s.Set("k", "v2"))
	v, _, _ = s.Get("k")
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Delete("k"))
	_, ok, err = s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, s.Delete("k"))
}

func TestInitialize(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, Initialize(s))

	flag, ok, err := s.Get(KeyInitialized)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", flag)

	users, ok, err := s.Get(KeyUsers)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", users)

	// Re-initializing must not wipe existing data.
	require.NoError(t, s.Set(KeyUsers, `[{"id":"user-1"}]`))
	require.NoError(t, Initialize(s))
	users, _, _ = s.Get(KeyUsers)
	assert.Equal(t, `[{"id":"user-1"}]`, users)
}

func TestDBStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := InitDB(path)
	require.NoError(t, err)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("k", "v1"))
	require.NoError(t, s.Set("k", "v2"))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Delete("k"))
	_, ok, err = s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Values survive reopening the file.
	require.NoError(t, s.Set("durable", "yes"))
	again, err := InitDB(path)
	require.NoError(t, err)
	v, ok, err = again.Get("durable")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "yes", v)
}
