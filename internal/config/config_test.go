package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(DirEnv, t.TempDir())
	t.Setenv("TURSO_DATABASE_URL", "")
	t.Setenv("TURSO_AUTH_TOKEN", "")
	t.Setenv("DEV_MODE", "")
}

func TestLoadFile_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "file:"+filepath.Join(dir, "gymlog.db"), cfg.DB.ConnectionString)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "Local", cfg.Calendar.Timezone)
}

func TestLoadFile_ReadsValues(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
connection_string = "file:/tmp/lifts.db"

[log]
level = "debug"
json = true

[calendar]
timezone = "UTC"
`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file:/tmp/lifts.db", cfg.DB.ConnectionString)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadFile_InvalidTimezone(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[calendar]\ntimezone = \"Mars/Olympus\"\n"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TURSO_DATABASE_URL", "libsql://lifts.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "secret")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "libsql://lifts.turso.io?authToken=secret", cfg.DB.ConnectionString)

	t.Setenv("DEV_MODE", "true")
	cfg, err = LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, devConnectionString, cfg.DB.ConnectionString)
}

func TestWithAuthToken(t *testing.T) {
	assert.Equal(t, "libsql://x", withAuthToken("libsql://x", ""))
	assert.Equal(t, "libsql://x?a=1&authToken=t", withAuthToken("libsql://x?a=1", "t"))
	assert.Equal(t, "libsql://x?authToken=old", withAuthToken("libsql://x?authToken=old", "t"))
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Calendar.Timezone = "America/Sao_Paulo"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}
