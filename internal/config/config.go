package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBalance reads a YAML balance file on top of a preset. Keys missing
// from the file keep the preset's value.
func LoadBalance(path string, base Balance) (Balance, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, err
	}
	out := base
	if err := yaml.Unmarshal(b, &out); err != nil {
		return Balance{}, fmt.Errorf("parse balance %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return Balance{}, fmt.Errorf("balance %s: %w", path, err)
	}
	return out, nil
}

// MarshalBalance renders b as YAML, used by the ops tool to dump a preset.
func MarshalBalance(b Balance) ([]byte, error) {
	return yaml.Marshal(b)
}
