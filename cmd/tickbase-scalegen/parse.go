package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tickbase/tickbase-go/pkg/scale"
)

// RawManifest represents a clock manifest loaded from YAML.
type RawManifest struct {
	Package string        `yaml:"package"`
	Clocks  []RawClockDef `yaml:"clocks"`
}

// RawClockDef represents a single clock definition. A clock is given either
// as a frequency in hertz or as an explicit seconds-per-tick ratio.
type RawClockDef struct {
	Name        string `yaml:"name"`
	Hz          uint32 `yaml:"hz"`  // frequency form: tick base is 1/hz
	Num         uint32 `yaml:"num"` // ratio form: seconds per tick numerator
	Den         uint32 `yaml:"den"` // ratio form: seconds per tick denominator
	Description string `yaml:"description"`
}

// ParseManifest parses a clock manifest from YAML bytes.
func ParseManifest(data []byte) (*RawManifest, error) {
	var m RawManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Package == "" {
		m.Package = "clocks"
	}
	if err := validateManifest(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest loads and parses a clock manifest from a file.
func LoadManifest(path string) (*RawManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseManifest(data)
}

// validateManifest checks names and ratios before any code is generated.
func validateManifest(m *RawManifest) error {
	if !isGoIdentifier(m.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", m.Package)
	}
	if len(m.Clocks) == 0 {
		return fmt.Errorf("manifest defines no clocks")
	}

	seen := make(map[string]bool)
	for i, c := range m.Clocks {
		if c.Name == "" {
			return fmt.Errorf("clock %d: missing name", i)
		}
		if !isExportedGoIdentifier(c.Name) {
			return fmt.Errorf("clock %q: name must be an exported Go identifier", c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("clock %q: duplicate name", c.Name)
		}
		seen[c.Name] = true

		switch {
		case c.Hz != 0 && (c.Num != 0 || c.Den != 0):
			return fmt.Errorf("clock %q: hz and num/den are mutually exclusive", c.Name)
		case c.Hz == 0 && c.Num == 0 && c.Den == 0:
			return fmt.Errorf("clock %q: either hz or num/den is required", c.Name)
		case c.Hz == 0:
			if _, err := scale.Reduce(c.Num, c.Den); err != nil {
				return fmt.Errorf("clock %q: %w", c.Name, err)
			}
		}
	}
	return nil
}

// ratio returns the clock's seconds-per-tick base in lowest terms.
func (c RawClockDef) ratio() scale.Ratio {
	if c.Hz != 0 {
		return scale.Ratio{Num: 1, Den: c.Hz}
	}
	return scale.MustReduce(c.Num, c.Den)
}

func isGoIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isExportedGoIdentifier(s string) bool {
	return isGoIdentifier(s) && s[0] >= 'A' && s[0] <= 'Z'
}
