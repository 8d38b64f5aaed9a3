// Package contracts discovers compiled contracts in a Foundry out/
// directory and resolves user queries against them.
package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/hyperkit-labs/hyperkit/internal/config"
	"github.com/hyperkit-labs/hyperkit/internal/domain/models"
)

// Indexer discovers and indexes contracts and their artifacts.
type Indexer struct {
	cfg *config.RuntimeConfig
	log *slog.Logger

	mu        sync.RWMutex
	indexed   bool
	contracts map[string]*models.Contract   // key: "path:ContractName"
	byName    map[string][]*models.Contract // key: contract name
}

// NewIndexer creates a contract indexer.
func NewIndexer(cfg *config.RuntimeConfig, log *slog.Logger) *Indexer {
	return &Indexer{
		cfg:       cfg,
		log:       log,
		contracts: make(map[string]*models.Contract),
		byName:    make(map[string][]*models.Contract),
	}
}

// ensureIndexed builds the index on first use.
func (i *Indexer) ensureIndexed() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.indexed {
		return nil
	}

	outDir := i.cfg.OutDir
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		return fmt.Errorf("artifact directory %s not found; run forge build first", outDir)
	}

	err := filepath.Walk(outDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		// Skip solc build metadata.
		if strings.Contains(path, "build-info") {
			return nil
		}
		if procErr := i.processArtifact(path); procErr != nil {
			i.log.Debug("skipping artifact", "path", path, "error", procErr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk artifact directory: %w", err)
	}

	i.indexed = true
	i.log.Debug("indexed contracts", "count", len(i.contracts))
	return nil
}

// processArtifact registers one artifact file. The contract name comes
// from the file name; the source path comes from the compilation target
// in the artifact metadata.
func (i *Indexer) processArtifact(path string) error {
	name := strings.TrimSuffix(filepath.Base(path), ".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return fmt.Errorf("not a Foundry artifact: %w", err)
	}
	if len(artifact.ABI) == 0 {
		return fmt.Errorf("artifact has no ABI")
	}

	sourcePath := ""
	for src, target := range artifact.Metadata.Settings.CompilationTarget {
		if target == name {
			sourcePath = src
		}
	}

	contract := &models.Contract{
		Name:         name,
		Path:         sourcePath,
		ArtifactPath: path,
	}

	i.contracts[contract.ArtifactRef()] = contract
	i.byName[name] = append(i.byName[name], contract)
	return nil
}

// GetContractByArtifact looks up an exact "path:ContractName" reference.
// A missing reference is a nil contract, not an error.
func (i *Indexer) GetContractByArtifact(ctx context.Context, artifact string) (*models.Contract, error) {
	if err := i.ensureIndexed(); err != nil {
		return nil, err
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.contracts[artifact], nil
}

// SearchContracts returns contracts matching a query: exact name matches
// first, then fuzzy matches over all known names.
func (i *Indexer) SearchContracts(ctx context.Context, query string) ([]*models.Contract, error) {
	if err := i.ensureIndexed(); err != nil {
		return nil, err
	}
	i.mu.RLock()
	defer i.mu.RUnlock()

	if exact, ok := i.byName[query]; ok {
		return exact, nil
	}

	names := lo.Keys(i.byName)
	sort.Strings(names)

	matches := fuzzy.Find(query, names)
	return lo.FlatMap(matches, func(m fuzzy.Match, _ int) []*models.Contract {
		return i.byName[m.Str]
	}), nil
}

// AllContracts returns every indexed contract, sorted by reference.
func (i *Indexer) AllContracts(ctx context.Context) ([]*models.Contract, error) {
	if err := i.ensureIndexed(); err != nil {
		return nil, err
	}
	i.mu.RLock()
	defer i.mu.RUnlock()

	all := lo.Values(i.contracts)
	sort.Slice(all, func(a, b int) bool {
		return all[a].ArtifactRef() < all[b].ArtifactRef()
	})
	return all, nil
}
