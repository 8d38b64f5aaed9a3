package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// SetupViper creates a viper instance bound to the project's optional
// hyperkit.yaml and HYPERKIT_* environment variables.
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("hyperkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)

	v.SetEnvPrefix("HYPERKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("profile", "default")

	// Config file is optional.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read hyperkit.yaml: %v\n", err)
		}
	}

	v.Set("project_root", projectRoot)
	return v
}

// Provider builds the RuntimeConfig from viper state. This is the only
// place configuration is assembled; everything downstream receives the
// result by reference.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	foundryConfig, err := LoadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		Profile:        v.GetString("profile"),
		Network:        v.GetString("network"),
		PrivateKey:     v.GetString("private_key"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Debug:          v.GetBool("debug"),
		DryRun:         v.GetBool("dry_run"),
		Timeout:        v.GetDuration("timeout"),
		FoundryConfig:  foundryConfig,
	}

	profile, ok := foundryConfig.Profiles[cfg.Profile]
	if !ok && cfg.Profile != "default" {
		return nil, fmt.Errorf("profile %q not found in foundry.toml", cfg.Profile)
	}
	cfg.OutDir = filepath.Join(projectRoot, orDefault(profile.Out, "out"))
	cfg.SrcDir = filepath.Join(projectRoot, orDefault(profile.Src, "src"))

	if cfg.Network != "" {
		url, err := resolveRPC(foundryConfig, cfg.Network)
		if err != nil {
			return nil, err
		}
		cfg.RPCURL = url
	}

	return cfg, nil
}

// resolveRPC maps a network name to its endpoint; a raw URL passes
// through unchanged.
func resolveRPC(foundry *FoundryConfig, network string) (string, error) {
	if strings.HasPrefix(network, "http://") || strings.HasPrefix(network, "https://") || strings.HasPrefix(network, "ws://") {
		return network, nil
	}
	if url, ok := foundry.RPCEndpoints[network]; ok {
		return url, nil
	}
	return "", fmt.Errorf("network %q not found in foundry.toml rpc_endpoints", network)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
