package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// argsFile is the YAML document accepted by --args-file:
//
//	args:
//	  - "0x5FbDB2315678afecb367f032d93F642f64180aa3"
//	  - 1000000
//	  - "MyToken"
type argsFile struct {
	Args []any `yaml:"args"`
}

// LoadArgsFile reads constructor argument overrides from a YAML file.
// Scalars are returned as their literal text; coercion to the declared
// ABI types happens during reconciliation, where parameter names are
// known for error messages.
func LoadArgsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read args file: %w", err)
	}

	var doc argsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse args file %s: %w", path, err)
	}

	args := make([]string, len(doc.Args))
	for i, raw := range doc.Args {
		switch v := raw.(type) {
		case string:
			args[i] = v
		case nil:
			return nil, fmt.Errorf("args file %s: argument %d is null", path, i)
		default:
			args[i] = fmt.Sprintf("%v", v)
		}
	}
	return args, nil
}
