package artifacts

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

func testLoader(root string) *Loader {
	cfg := &config.RuntimeConfig{ProjectRoot: root}
	return NewLoader(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadABI(t *testing.T) {
	dir := t.TempDir()
	artifactPath := filepath.Join(dir, "Token.json")

	artifact := `{
  "abi": [
    {"type": "constructor", "inputs": [
      {"name": "owner", "type": "address"},
      {"name": "supply", "type": "uint256"}
    ]},
    {"type": "function", "name": "totalSupply", "inputs": [], "outputs": [{"type": "uint256"}], "stateMutability": "view"}
  ]
}`
	require.NoError(t, os.WriteFile(artifactPath, []byte(artifact), 0644))

	loader := testLoader(dir)
	parsed, err := loader.LoadABI(context.Background(), &models.Contract{
		Name:         "Token",
		ArtifactPath: artifactPath,
	})
	require.NoError(t, err)

	require.Len(t, parsed.Constructor.Inputs, 2)
	assert.Equal(t, "owner", parsed.Constructor.Inputs[0].Name)
	assert.Equal(t, "address", parsed.Constructor.Inputs[0].Type.String())
}

func TestLoadABIMissingArtifact(t *testing.T) {
	loader := testLoader(t.TempDir())

	_, err := loader.LoadABI(context.Background(), &models.Contract{Name: "Token"})
	assert.ErrorIs(t, err, domain.ErrNoArtifact)
}

func TestReadSourceMissingFileIsNotFatal(t *testing.T) {
	loader := testLoader(t.TempDir())

	text, err := loader.ReadSource(context.Background(), &models.Contract{
		Name: "Token",
		Path: "src/Token.sol",
	})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	src := "contract Token { constructor(address owner) {} }"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "Token.sol"), []byte(src), 0644))

	loader := testLoader(dir)
	text, err := loader.ReadSource(context.Background(), &models.Contract{
		Name: "Token",
		Path: "src/Token.sol",
	})
	require.NoError(t, err)
	assert.Equal(t, src, text)
}
