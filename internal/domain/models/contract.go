package models

import (
	"encoding/json"
	"fmt"
)

// Contract represents information about a discovered compiled contract
type Contract struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	ArtifactPath string `json:"artifactPath,omitempty"`
}

// ArtifactRef returns the fully qualified "path:ContractName" reference
// used to disambiguate contracts with the same name.
func (c *Contract) ArtifactRef() string {
	if c.Path == "" {
		return c.Name
	}
	return fmt.Sprintf("%s:%s", c.Path, c.Name)
}

// BytecodeObject represents bytecode information in a Foundry artifact
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap"`
	LinkReferences map[string]any `json:"linkReferences"`
}

// Artifact represents a Foundry compilation artifact
type Artifact struct {
	ABI               json.RawMessage   `json:"abi"`
	Bytecode          BytecodeObject    `json:"bytecode"`
	MethodIdentifiers map[string]string `json:"methodIdentifiers"`
	Metadata          ArtifactMetadata  `json:"metadata"`
}

// ArtifactMetadata represents the metadata section of a Foundry artifact
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Language string `json:"language"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}
