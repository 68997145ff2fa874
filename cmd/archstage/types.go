// cmd/archstage/types.go
package main

import (
	"fmt"
	"path/filepath"
)

// Mapping describes one artifact to stage: a source path template that varies
// by architecture and a fixed destination.
type Mapping struct {
	Name          string `yaml:"name"`
	Source        string `yaml:"source"`
	Destination   string `yaml:"destination"`
	CreateParents bool   `yaml:"create_parents"`
}

// String provides a simple string representation for a Mapping, useful for debugging.
func (m Mapping) String() string {
	return fmt.Sprintf("Mapping(%s: %s -> %s)", m.Name, m.Source, m.Destination)
}

// Manifest is the declarative table of artifact mappings.
// Default applies to every architecture without an entry in Arches.
type Manifest struct {
	Default []Mapping            `yaml:"default"`
	Arches  map[string][]Mapping `yaml:"arches"`
}

// Profile is the concrete set of mappings for one architecture, with sources
// already expanded. It lives for a single invocation.
type Profile struct {
	Arch     string
	Mappings []Mapping
}

// Profile resolves the mappings for arch and expands their source templates.
func (m *Manifest) Profile(arch string) (*Profile, error) {
	templates, ok := m.Arches[arch]
	if !ok {
		templates = m.Default
	}

	vars := NewVariableStore(arch)
	profile := &Profile{Arch: arch, Mappings: make([]Mapping, 0, len(templates))}
	for _, t := range templates {
		src, err := vars.Expand(t.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to expand source for %s: %w", t.Name, err)
		}
		t.Source = filepath.FromSlash(src)
		t.Destination = filepath.FromSlash(t.Destination)
		profile.Mappings = append(profile.Mappings, t)
	}
	return profile, nil
}
