package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestEnvOverrides(t *testing.T) {
	cfg := Default()
	err := cfg.mergeEnv(envMap(map[string]string{
		"PORT":             "8080",
		"STORE":            "sqlite",
		"DB_PATH":          "/tmp/x.db",
		"JWT_EXPIRES_DAYS": "3",
		"LOG_LEVEL":        "debug",
		"NODE_ENV":         "production",
		"JWT_SECRET":       "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.JWTExpiresDays)
	assert.True(t, cfg.Production)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestEnvBadNumber(t *testing.T) {
	cfg := Default()
	err := cfg.mergeEnv(envMap(map[string]string{"JWT_EXPIRES_DAYS": "soon"}))
	assert.Error(t, err)
}

func TestYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\nstore: sqlite\ncookieName: jar\n"), 0o644))

	cfg := Default()
	require.NoError(t, cfg.mergeFile(path))
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "jar", cfg.CookieName)
	assert.Equal(t, "info", cfg.LogLevel)

	require.NoError(t, cfg.mergeEnv(envMap(map[string]string{"PORT": "9001"})))
	assert.Equal(t, "9001", cfg.Port)
}

func TestMergeFileMissing(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.mergeFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Port = "http"
	cfg.Store = "redis"
	cfg.LogLevel = "loud"
	cfg.JWTExpiresDays = 0
	cfg.Production = true

	err := cfg.Validate()
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORE", "memory")
	t.Setenv("PORT", "7000")
	t.Setenv("JWT_EXPIRES_DAYS", "")
	t.Setenv("NODE_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "memory", cfg.Store)
}
