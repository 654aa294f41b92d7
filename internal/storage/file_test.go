package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	fs, err := NewFileStorage(path)
	require.NoError(t, err)

	_, err = fs.Get(KeyAccessToken)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, fs.Set(KeyAccessToken, "tok"))
	require.NoError(t, fs.Set(KeyThemeMode, "dark"))

	// A fresh instance over the same path sees the persisted values.
	reopened, err := NewFileStorage(path)
	require.NoError(t, err)
	v, err := reopened.Get(KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	require.NoError(t, reopened.Delete(KeyAccessToken))
	_, err = reopened.Get(KeyAccessToken)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, reopened.Delete(KeyAccessToken), ErrNotFound)
}

func TestFileStorage_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	fs, err := NewFileStorage(path)
	require.NoError(t, err)
	_, err = fs.Get(KeyAccessToken)
	assert.ErrorIs(t, err, ErrNotFound)

	// Writes work normally after recovery.
	require.NoError(t, fs.Set(KeyAccessToken, "tok"))
	v, err := fs.Get(KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
}

func TestFileStorage_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	fs, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, fs.Set(KeyAccessToken, "tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "session file holds a credential")
}
