package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// foundryTOML mirrors the raw foundry.toml structure.
type foundryTOML struct {
	RPCEndpoints map[string]string         `toml:"rpc_endpoints"`
	Profile      map[string]FoundryProfile `toml:"profile"`
}

// LoadFoundryConfig loads and parses foundry.toml, expanding ${VAR}
// references in RPC endpoints from the environment.
func LoadFoundryConfig(projectRoot string) (*FoundryConfig, error) {
	// Load .env files first so endpoint expansion sees them.
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", envFile, err)
			}
		}
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	var raw foundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg := &FoundryConfig{
		RPCEndpoints: make(map[string]string),
		Profiles:     raw.Profile,
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]FoundryProfile)
	}
	for name, url := range raw.RPCEndpoints {
		cfg.RPCEndpoints[name] = os.ExpandEnv(url)
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}
