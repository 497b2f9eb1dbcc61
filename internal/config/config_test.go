package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("scramble_length: 30\nssh:\n  address: \":2222\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.ScrambleLength)
	assert.Equal(t, ":2222", cfg.SSH.Address)
	assert.Equal(t, 30, cfg.SSH.IdleTimeoutMinutes)
	assert.Equal(t, Default().DBPath, cfg.DBPath)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("scramble_length: 0\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("theme:\n  X: \"#000000\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("scramble_length: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/x.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 20, cfg.ScrambleLength)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/.cubestate/a.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cubestate/a.db"), got)

	got, err = ExpandPath("/abs/path.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path.db", got)
}
