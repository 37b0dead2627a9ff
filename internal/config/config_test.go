package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaultsWhenDefaultFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{GitBinary: "git"}, cfg)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config init")
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "git_binary: /opt/git/bin/git\nno_color: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{GitBinary: "/opt/git/bin/git", NoColor: true}, cfg)
}

func TestLoadEmptyGitBinaryFallsBack(t *testing.T) {
	path := writeConfig(t, "git_binary: \"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "git", cfg.GitBinary)
}

func TestInitShowSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := Init(path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	_, err = Init(path)
	assert.ErrorContains(t, err, "already exists")

	content, err := Show(path)
	require.NoError(t, err)
	assert.Contains(t, content, "git_binary: git")

	require.NoError(t, Set(path, "debug", "true"))
	require.NoError(t, Set(path, "git_binary", "/usr/bin/git"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{GitBinary: "/usr/bin/git", Debug: true}, cfg)
}

func TestSetRejectsBadInput(t *testing.T) {
	path := writeConfig(t, "git_binary: git\n")

	assert.ErrorContains(t, Set(path, "colour", "true"), "unknown config key")
	assert.ErrorContains(t, Set(path, "no_color", "maybe"), "expects true or false")
	assert.ErrorContains(t, Set(path, "git_binary", ""), "cannot be empty")
}
