// Package seed decodes and validates the storefront seed document.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/freeplay/internal/model"
)

//go:embed data/seed.yaml
var defaultSeed []byte

// Parse decodes a YAML (or JSON) seed document, checks it against the schema
// and then against Validate. All problems are reported in one *ValidationError.
func Parse(data []byte) (*model.Seed, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, invalid(fmt.Sprintf("decode: %v", err))
	}
	if doc == nil {
		return nil, invalid("document is empty")
	}

	problems, err := checkSchema(doc)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, invalid(problems...)
	}

	var s model.Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, invalid(fmt.Sprintf("decode: %v", err))
	}

	if problems := Validate(&s); len(problems) > 0 {
		return nil, invalid(problems...)
	}
	return &s, nil
}

// LoadFile reads and parses a seed document from disk
func LoadFile(path string) (*model.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return s, nil
}

// Default returns the seed shipped with the binary
func Default() (*model.Seed, error) {
	return Parse(defaultSeed)
}
