package sessionstorage

import (
	"os"
	"path/filepath"
	"pathlab-client/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTempFileStorage(t *testing.T) (*fileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := NewFileStorage(&config.InternalConfig{
		App: config.App{SessionDir: dir},
	})
	require.NoError(t, err)
	return storage.(*fileStorage), dir
}

func TestFileStorage(t *testing.T) {
	t.Run("round-trips entries through the session file", func(t *testing.T) {
		storage, _ := newTempFileStorage(t)

		require.NoError(t, storage.Set("auth_token", "token-123"))
		require.NoError(t, storage.Set("auth_user", `{"email":"a@b.c"}`))

		value, err := storage.Get("auth_token")
		require.NoError(t, err)
		assert.Equal(t, "token-123", value)
	})

	t.Run("missing entries read as empty without error", func(t *testing.T) {
		storage, _ := newTempFileStorage(t)

		value, err := storage.Get("auth_token")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("delete removes only the named entry", func(t *testing.T) {
		storage, _ := newTempFileStorage(t)
		require.NoError(t, storage.Set("auth_token", "token-123"))
		require.NoError(t, storage.Set("auth_user", "profile"))

		require.NoError(t, storage.Delete("auth_token"))

		token, err := storage.Get("auth_token")
		require.NoError(t, err)
		assert.Empty(t, token)

		user, err := storage.Get("auth_user")
		require.NoError(t, err)
		assert.Equal(t, "profile", user)
	})

	t.Run("deleting a missing entry is a no-op", func(t *testing.T) {
		storage, _ := newTempFileStorage(t)
		assert.NoError(t, storage.Delete("never_written"))
	})

	t.Run("a corrupt session file is treated as empty", func(t *testing.T) {
		storage, dir := newTempFileStorage(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, sessionFileName), []byte("{broken"), 0o600))

		value, err := storage.Get("auth_token")
		require.NoError(t, err)
		assert.Empty(t, value)

		// The next write replaces the broken file.
		require.NoError(t, storage.Set("auth_token", "fresh"))
		value, err = storage.Get("auth_token")
		require.NoError(t, err)
		assert.Equal(t, "fresh", value)
	})

	t.Run("state survives a new storage on the same directory", func(t *testing.T) {
		storage, dir := newTempFileStorage(t)
		require.NoError(t, storage.Set("auth_token", "token-123"))

		reopened, err := NewFileStorage(&config.InternalConfig{
			App: config.App{SessionDir: dir},
		})
		require.NoError(t, err)

		value, err := reopened.Get("auth_token")
		require.NoError(t, err)
		assert.Equal(t, "token-123", value)
	})
}

func TestMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()

	require.NoError(t, storage.Set("auth_token", "token-123"))
	value, err := storage.Get("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "token-123", value)

	require.NoError(t, storage.Delete("auth_token"))
	value, err = storage.Get("auth_token")
	require.NoError(t, err)
	assert.Empty(t, value)
}
