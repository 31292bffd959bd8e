package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/adapters/config"
	"go.trai.ch/shrink/internal/core/domain"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	env, err := config.LoadEnv(lookupFrom(nil))
	require.NoError(t, err)

	assert.False(t, env.EnableClosure)
	assert.Equal(t, "main.js", env.OutputJSFileName)
	assert.Equal(t, "main.css", env.OutputCSSFileName)
	assert.Equal(t, "www/build", env.BuildDir)
	assert.Empty(t, env.ClosureConfig)
}

func TestLoadEnv_Overrides(t *testing.T) {
	env, err := config.LoadEnv(lookupFrom(map[string]string{
		"SHRINK_ENABLE_CLOSURE":       "true",
		"SHRINK_OUTPUT_JS_FILE_NAME":  "vendor.js",
		"SHRINK_OUTPUT_CSS_FILE_NAME": "vendor.css",
		"SHRINK_BUILD_DIR":            "dist",
		"SHRINK_CLOSURE":              "closure.yaml",
	}))
	require.NoError(t, err)

	assert.True(t, env.EnableClosure)
	assert.Equal(t, "vendor.js", env.OutputJSFileName)
	assert.Equal(t, "vendor.css", env.OutputCSSFileName)
	assert.Equal(t, "dist", env.BuildDir)
	assert.Equal(t, "closure.yaml", env.ClosureConfig)
}

func TestLoadEnv_InvalidBool(t *testing.T) {
	_, err := config.LoadEnv(lookupFrom(map[string]string{
		"SHRINK_ENABLE_CLOSURE": "definitely",
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEnvParse)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SHRINK_TEST_DOTENV_VALUE=from-file\n"), 0o600))

	t.Setenv("SHRINK_TEST_DOTENV_VALUE", "")
	require.NoError(t, os.Unsetenv("SHRINK_TEST_DOTENV_VALUE"))

	require.NoError(t, config.LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("SHRINK_TEST_DOTENV_VALUE"))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SHRINK_TEST_DOTENV_KEEP=from-file\n"), 0o600))

	t.Setenv("SHRINK_TEST_DOTENV_KEEP", "from-env")

	require.NoError(t, config.LoadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("SHRINK_TEST_DOTENV_KEEP"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
