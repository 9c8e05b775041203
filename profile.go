package canopy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SkipProfile is a reusable set of extra skip names, loaded from a YAML file
// so teams can share one noise list across projects:
//
//	dirs:
//	  - build
//	  - dist
//	files:
//	  - coverage.out
type SkipProfile struct {
	Dirs  []string `yaml:"dirs"`
	Files []string `yaml:"files"`
}

// LoadSkipProfile reads and parses a YAML skip profile.
func LoadSkipProfile(path string) (*SkipProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skip profile %s: %w", path, err)
	}
	var p SkipProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing skip profile %s: %w", path, err)
	}
	return &p, nil
}

// ApplyProfile merges a profile's names into the config's custom skip lists.
// Built-in defaults still apply; a profile only ever adds.
func (c *Config) ApplyProfile(p *SkipProfile) {
	if p == nil {
		return
	}
	c.CustomSkipDirs = append(c.CustomSkipDirs, p.Dirs...)
	c.CustomSkipFiles = append(c.CustomSkipFiles, p.Files...)
}
