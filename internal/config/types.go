package config

import "time"

// RuntimeConfig is the resolved configuration for a single command run.
// It is constructed once at process start and passed by reference to
// every component that needs it; nothing reads configuration from
// ambient global state.
type RuntimeConfig struct {
	// ProjectRoot is the Foundry project root (directory of foundry.toml)
	ProjectRoot string

	// OutDir is the compiled artifact directory, usually "out"
	OutDir string

	// SrcDir is the contract source directory, usually "src"
	SrcDir string

	// Profile is the foundry profile in use
	Profile string

	// Network is the selected network name from rpc_endpoints
	Network string

	// RPCURL is the resolved RPC endpoint for Network
	RPCURL string

	// PrivateKey is the deployer key forwarded to forge, from
	// HYPERKIT_PRIVATE_KEY
	PrivateKey string

	// NonInteractive disables interactive prompts
	NonInteractive bool

	// JSON switches renderers to machine output
	JSON bool

	// Debug enables debug output
	Debug bool

	// DryRun stops deployment after argument encoding
	DryRun bool

	// Timeout bounds a single command run
	Timeout time.Duration

	// FoundryConfig is the parsed foundry.toml
	FoundryConfig *FoundryConfig
}

// FoundryConfig is the subset of foundry.toml this tool reads.
type FoundryConfig struct {
	RPCEndpoints map[string]string
	Profiles     map[string]FoundryProfile
}

// FoundryProfile holds per-profile build directories.
type FoundryProfile struct {
	Out string `toml:"out"`
	Src string `toml:"src"`
}
