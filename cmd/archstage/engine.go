// cmd/archstage/engine.go
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
)

// Engine stages the artifacts of one architecture profile.
// Every filesystem call completes and is checked before the next begins.
type Engine struct {
	manifest *Manifest
	root     string
	logger   zerolog.Logger
}

// NewEngine creates a staging engine rooted at the project directory.
func NewEngine(m *Manifest, root string, logger zerolog.Logger) *Engine {
	return &Engine{
		manifest: m,
		root:     root,
		logger:   WithComponent(logger, "engine"),
	}
}

// Stage copies every artifact of arch's profile to its destination.
// All sources are checked before any destination is written. If a copy
// fails, destinations already replaced in this run are restored.
func (e *Engine) Stage(arch string) error {
	if err := validateArch(arch); err != nil {
		return argumentError(arch, "%v", err)
	}

	profile, err := e.manifest.Profile(arch)
	if err != nil {
		return &StageError{Kind: KindIO, Arch: arch, Detail: "resolving architecture profile", Err: err}
	}

	e.logger.Info().Str("arch", arch).Int("artifacts", len(profile.Mappings)).Msg(LogStagingStart)

	if err := e.checkSources(profile); err != nil {
		return err
	}

	staged := make([]snapshot, 0, len(profile.Mappings))
	for _, m := range profile.Mappings {
		snap, err := e.stageMapping(arch, m)
		if err != nil {
			return e.rollback(staged, err)
		}
		staged = append(staged, snap)
	}
	return nil
}

// checkSources verifies that every source in the profile is a readable regular file.
func (e *Engine) checkSources(p *Profile) error {
	for _, m := range p.Mappings {
		info, err := os.Stat(filepath.Join(e.root, m.Source))
		if errors.Is(err, fs.ErrNotExist) {
			stageErr := notFoundError(p.Arch, m)
			if arches := availableArches(e.root); len(arches) > 0 {
				stageErr.Hint = fmt.Sprintf(HintAvailableArches, strings.Join(arches, ", "))
			}
			return stageErr
		}
		if err != nil {
			return ioError(p.Arch, m, m.Source, err)
		}
		if !info.Mode().IsRegular() {
			return ioError(p.Arch, m, m.Source, fmt.Errorf(ErrorSourceNotRegular, m.Name, p.Arch))
		}
	}
	return nil
}

// stageMapping copies one source over its destination and returns the
// destination's prior state for rollback.
func (e *Engine) stageMapping(arch string, m Mapping) (snapshot, error) {
	src := filepath.Join(e.root, m.Source)
	dst := filepath.Join(e.root, m.Destination)

	if m.CreateParents {
		if err := e.ensureDir(filepath.Dir(dst)); err != nil {
			return snapshot{}, ioError(arch, m, m.Destination, err)
		}
	}

	snap, err := takeSnapshot(dst)
	if err != nil {
		return snapshot{}, ioError(arch, m, m.Destination, err)
	}

	n, err := e.copyFile(src, dst)
	if err != nil {
		return snapshot{}, ioError(arch, m, m.Destination, err)
	}

	e.logger.Info().
		Str("mapping", m.Name).
		Str("src", m.Source).
		Str("dst", m.Destination).
		Int64("bytes", n).
		Msg(LogMappingStaged)
	return snap, nil
}

func (e *Engine) ensureDir(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	e.logger.Debug().Str("dir", dir).Msg(LogDirectoryCreated)
	return nil
}

// copyFile atomically replaces dst with the contents of src. The destination
// takes the source's permission bits.
func (e *Engine) copyFile(src, dst string) (n int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer func() {
		if closeErr := in.Close(); err == nil {
			err = closeErr
		}
	}()

	info, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}

	pending, err := renameio.NewPendingFile(dst, renameio.WithPermissions(info.Mode().Perm()))
	if err != nil {
		return 0, fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// no-op once the pending file has been committed
		if cleanupErr := pending.Cleanup(); cleanupErr != nil {
			e.logger.Debug().Err(cleanupErr).Str("dst", dst).Msg(LogCleanupFailed)
		}
	}()

	n, err = io.Copy(pending, in)
	if err != nil {
		return 0, fmt.Errorf("copy data: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return 0, fmt.Errorf("atomically replace destination: %w", err)
	}
	return n, nil
}

// rollback restores staged destinations in reverse order and returns cause,
// joined with any restore failures.
func (e *Engine) rollback(staged []snapshot, cause error) error {
	if len(staged) == 0 {
		return cause
	}
	e.logger.Warn().Err(cause).Int("artifacts", len(staged)).Msg(LogRollback)

	errs := []error{cause}
	for i := len(staged) - 1; i >= 0; i-- {
		if err := staged[i].restore(); err != nil {
			e.logger.Error().Err(err).Str("dst", staged[i].path).Msg(LogRollbackFailed)
			errs = append(errs, err)
		}
	}
	if len(errs) == 1 {
		return cause
	}
	return errors.Join(errs...)
}
