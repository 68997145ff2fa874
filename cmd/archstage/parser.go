// cmd/archstage/parser.go
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifest []byte

// LoadDefaultManifest parses the manifest compiled into the binary.
func LoadDefaultManifest() (*Manifest, error) {
	return ParseManifest(defaultManifest)
}

// ParseManifest decodes and validates a manifest. Decoding is strict:
// unknown fields and trailing documents are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest is empty")
		}
		return nil, fmt.Errorf("strict manifest parse error: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest contains multiple documents or trailing content")
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Default) == 0 {
		return fmt.Errorf("manifest has no default mappings")
	}
	if err := validateMappings("default", m.Default); err != nil {
		return err
	}
	for arch, mappings := range m.Arches {
		if err := validateArch(arch); err != nil {
			return fmt.Errorf("manifest arch %q: %w", arch, err)
		}
		if len(mappings) == 0 {
			return fmt.Errorf("manifest arch %q has no mappings", arch)
		}
		if err := validateMappings(arch, mappings); err != nil {
			return err
		}
	}
	return nil
}

func validateMappings(profile string, mappings []Mapping) error {
	seenNames := make(map[string]bool, len(mappings))
	seenDest := make(map[string]string, len(mappings))
	for i, m := range mappings {
		origin := fmt.Sprintf("profile %q, mapping %d", profile, i+1)
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%s: name is required", origin)
		}
		origin = fmt.Sprintf("profile %q, mapping %q", profile, m.Name)
		if seenNames[m.Name] {
			return fmt.Errorf("%s: duplicate name", origin)
		}
		seenNames[m.Name] = true

		if err := validateRelPath(m.Source); err != nil {
			return fmt.Errorf("%s: source: %w", origin, err)
		}
		if err := validateRelPath(m.Destination); err != nil {
			return fmt.Errorf("%s: destination: %w", origin, err)
		}
		if hasPlaceholder(m.Destination) {
			return fmt.Errorf("%s: destination %q must not depend on the architecture", origin, m.Destination)
		}

		dest := path.Clean(m.Destination)
		if other, ok := seenDest[dest]; ok {
			return fmt.Errorf("%s: destination %q already used by %q", origin, m.Destination, other)
		}
		seenDest[dest] = m.Name
	}
	return nil
}

// validateRelPath requires a slash-separated path that stays inside the invocation root.
func validateRelPath(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("path is required")
	}
	if path.IsAbs(p) || strings.HasPrefix(p, `\`) || strings.Contains(p, ":") {
		return fmt.Errorf("path %q must be relative", p)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path %q escapes the project root", p)
	}
	return nil
}
