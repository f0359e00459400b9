package testutils

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FixtureEntry is a decoded string together with its canonical encoding.
type FixtureEntry struct {
	Decoded string `yaml:"decoded"`
	Encoded string `yaml:"encoded"`
}

// Fixtures is the shared table of encoding test cases, as stored in encoding/testdata/fixtures.yaml.
type Fixtures struct {
	Component []FixtureEntry `yaml:"component"`
	Query     []FixtureEntry `yaml:"query"`
	Invalid   []string       `yaml:"invalid"`
}

// LoadFixtures parses the YAML fixture file at the given path.
func LoadFixtures(path string) (*Fixtures, error) {
	bb, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f := &Fixtures{}
	if err := yaml.Unmarshal(bb, f); err != nil {
		return nil, fmt.Errorf("error while parsing fixture file %v: %v", path, err)
	}

	if len(f.Component) == 0 || len(f.Query) == 0 {
		return nil, fmt.Errorf("fixture file %v has no test cases", path)
	}

	return f, nil
}
