package config

import (
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDecode(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(`
[database]
connection_string = "libsql://training.example.turso.io?authToken=tok"
`, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "libsql://training.example.turso.io?authToken=tok", cfg.DB.ConnectionString)
}

func TestConfigDecode_Empty(t *testing.T) {
	var cfg Config
	_, err := toml.Decode("", &cfg)
	require.NoError(t, err)
	assert.Empty(t, cfg.DB.ConnectionString)
}

func TestPaths(t *testing.T) {
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "homegains", filepath.Base(dir))

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), path)
}
