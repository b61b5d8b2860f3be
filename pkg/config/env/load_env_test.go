package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("loads default path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("PROTC_TEST_VAR=from-file\n"), 0644))
		t.Setenv("ENV_PATH", "")
		t.Setenv("PROTC_TEST_VAR", "")
		require.NoError(t, os.Unsetenv("PROTC_TEST_VAR"))

		require.NoError(t, LoadDotEnv(path))
		assert.Equal(t, "from-file", os.Getenv("PROTC_TEST_VAR"))
	})

	t.Run("ENV_PATH overrides default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.env")
		require.NoError(t, os.WriteFile(path, []byte("PROTC_TEST_OTHER=custom\n"), 0644))
		t.Setenv("ENV_PATH", path)
		t.Setenv("PROTC_TEST_OTHER", "")
		require.NoError(t, os.Unsetenv("PROTC_TEST_OTHER"))

		require.NoError(t, LoadDotEnv("does/not/exist.env"))
		assert.Equal(t, "custom", os.Getenv("PROTC_TEST_OTHER"))
	})

	t.Run("missing file in local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		t.Setenv("APP_ENV", "local")

		assert.Error(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
	})

	t.Run("missing file outside local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		t.Setenv("APP_ENV", "production")

		assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
	})
}

func TestGet(t *testing.T) {
	t.Setenv("PROTC_TEST_GET", "")
	assert.Equal(t, "fallback", Get("PROTC_TEST_GET", "fallback"))

	t.Setenv("PROTC_TEST_GET", "set")
	assert.Equal(t, "set", Get("PROTC_TEST_GET", "fallback"))
}
