// Package artifacts reads Foundry compilation output. It is the only
// place artifact JSON is parsed; everything downstream works with
// go-ethereum ABI values.
package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/domain"
	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// Loader reads artifacts and contract sources for a project.
type Loader struct {
	cfg *config.RuntimeConfig
	log *slog.Logger
}

// NewLoader creates an artifact loader.
func NewLoader(cfg *config.RuntimeConfig, log *slog.Logger) *Loader {
	return &Loader{cfg: cfg, log: log}
}

// LoadABI parses the contract's compiled ABI from its artifact file.
func (l *Loader) LoadABI(ctx context.Context, contract *models.Contract) (*abi.ABI, error) {
	if contract.ArtifactPath == "" {
		return nil, fmt.Errorf("%s: %w", contract.Name, domain.ErrNoArtifact)
	}

	data, err := os.ReadFile(contract.ArtifactPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", contract.ArtifactPath, err)
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", contract.ArtifactPath, err)
	}

	parsed, err := abi.JSON(bytes.NewReader(artifact.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", contract.Name, err)
	}

	l.log.Debug("loaded artifact ABI",
		"contract", contract.Name,
		"constructorArgs", len(parsed.Constructor.Inputs))

	return &parsed, nil
}

// ReadSource returns the contract's source text. A missing source file
// is not an error: the reconciler treats empty source as "no
// constructor signal" and falls back to the compiled interface.
func (l *Loader) ReadSource(ctx context.Context, contract *models.Contract) (string, error) {
	if contract.Path == "" {
		return "", nil
	}

	path := contract.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.cfg.ProjectRoot, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.log.Debug("contract source unavailable", "contract", contract.Name, "path", path, "error", err)
		return "", nil
	}
	return string(data), nil
}
