package reconcile

import "strings"

// NormalizeType canonicalizes a raw Solidity type string for comparison
// against a compiled ABI type tag: data locations are dropped and the
// uint/int shorthands expand to their 256-bit canonical forms, including
// inside array suffixes.
func NormalizeType(raw string) string {
	normalized := strings.TrimSpace(raw)
	for _, loc := range []string{" memory", " storage", " calldata"} {
		normalized = strings.ReplaceAll(normalized, loc, "")
	}

	base := normalized
	suffix := ""
	if idx := strings.Index(normalized, "["); idx != -1 {
		base = normalized[:idx]
		suffix = normalized[idx:]
	}

	switch base {
	case "uint":
		base = "uint256"
	case "int":
		base = "int256"
	}

	return base + suffix
}
