package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocklua-lang/blocklua/pkg/block"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, block.DefaultBaseHelpURL, cfg.BaseHelpURL)
	assert.Equal(t, "program.json", cfg.Program)
	assert.Equal(t, "localhost:4444", cfg.Server.Addr())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `base_help_url: https://wiki.example/
program: robot.json
server:
  host: 0.0.0.0
  port: 9000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".blocklua.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://wiki.example/", cfg.BaseHelpURL)
	assert.Equal(t, "robot.json", cfg.Program)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
}

func TestLoadRejectsBadPort(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".blocklua.yaml"),
		[]byte("server:\n  port: 99999\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyHelpURL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".blocklua.yaml"),
		[]byte(`base_help_url: ""`+"\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
