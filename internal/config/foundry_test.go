package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFoundryConfig(t *testing.T) {
	dir := t.TempDir()
	toml := `
[profile.default]
src = "src"
out = "out"

[profile.optimized]
out = "out-optimized"

[rpc_endpoints]
local = "http://localhost:8545"
sepolia = "https://sepolia.example.com/${SEPOLIA_KEY}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foundry.toml"), []byte(toml), 0644))
	t.Setenv("SEPOLIA_KEY", "abc123")

	cfg, err := LoadFoundryConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.RPCEndpoints["local"])
	assert.Equal(t, "https://sepolia.example.com/abc123", cfg.RPCEndpoints["sepolia"])

	assert.Equal(t, "src", cfg.Profiles["default"].Src)
	assert.Equal(t, "out", cfg.Profiles["default"].Out)
	assert.Equal(t, "out-optimized", cfg.Profiles["optimized"].Out)
}

func TestLoadFoundryConfigLoadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MAINNET_KEY=fromdotenv\n"), 0644))
	toml := `
[rpc_endpoints]
mainnet = "https://mainnet.example.com/${MAINNET_KEY}"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foundry.toml"), []byte(toml), 0644))

	cfg, err := LoadFoundryConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.example.com/fromdotenv", cfg.RPCEndpoints["mainnet"])
}

func TestLoadFoundryConfigMissingFile(t *testing.T) {
	_, err := LoadFoundryConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadArgsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.yaml")
	doc := `
args:
  - "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  - 1000000
  - true
  - MyToken
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	args, err := LoadArgsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"1000000",
		"true",
		"MyToken",
	}, args)
}

func TestLoadArgsFileNullArgument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.yaml")
	require.NoError(t, os.WriteFile(path, []byte("args:\n  - ~\n"), 0644))

	_, err := LoadArgsFile(path)
	assert.ErrorContains(t, err, "null")
}

func TestLoadArgsFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.yaml")
	require.NoError(t, os.WriteFile(path, []byte("args: []\n"), 0644))

	args, err := LoadArgsFile(path)
	require.NoError(t, err)
	assert.Empty(t, args)
}
