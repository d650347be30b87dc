package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a spec from the given YAML file, applies defaults and
// validates it.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	spec.ApplyDefaults()

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &spec, nil
}
