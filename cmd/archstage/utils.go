// cmd/archstage/utils.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/renameio/v2"
)

// validateArch rejects identifiers that would change which path is built
// rather than select a variant of it.
func validateArch(arch string) error {
	if strings.TrimSpace(arch) == "" {
		return errors.New(ErrorEmptyArch)
	}
	if strings.ContainsAny(arch, `/\$()`) || strings.Contains(arch, "..") {
		return fmt.Errorf(ErrorInvalidArch, arch)
	}
	return nil
}

// availableArches lists the arch ids that have a per-arch makefile under root.
func availableArches(root string) []string {
	matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(ArchDiscoveryGlob)))
	if err != nil {
		return nil
	}
	prefix := strings.TrimSuffix(filepath.Base(ArchDiscoveryGlob), "*")
	arches := make([]string, 0, len(matches))
	for _, m := range matches {
		if arch := strings.TrimPrefix(filepath.Base(m), prefix); arch != "" {
			arches = append(arches, arch)
		}
	}
	sort.Strings(arches)
	return arches
}

// snapshot records what a destination held before it was replaced.
type snapshot struct {
	path    string
	existed bool
	data    []byte
	mode    fs.FileMode
}

func takeSnapshot(path string) (snapshot, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return snapshot{path: path}, nil
	}
	if err != nil {
		return snapshot{}, fmt.Errorf("stat destination: %w", err)
	}
	if !info.Mode().IsRegular() {
		return snapshot{}, fmt.Errorf("destination %s is not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return snapshot{}, fmt.Errorf("read destination: %w", err)
	}
	return snapshot{path: path, existed: true, data: data, mode: info.Mode().Perm()}, nil
}

// restore puts the destination back the way it was when the snapshot was taken.
func (s snapshot) restore() error {
	if !s.existed {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", s.path, err)
		}
		return nil
	}
	if err := renameio.WriteFile(s.path, s.data, s.mode); err != nil {
		return fmt.Errorf("restore %s: %w", s.path, err)
	}
	return nil
}
