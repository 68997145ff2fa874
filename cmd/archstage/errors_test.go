package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageError_IsMatchesKind(t *testing.T) {
	m := Mapping{Name: "cargo-config", Source: "kernel/arch_specific_configs/config.x86_64.toml"}

	notFound := notFoundError("x86_64", m)
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.NotErrorIs(t, notFound, ErrIO)
	assert.NotErrorIs(t, notFound, ErrArgument)

	ioErr := ioError("x86_64", m, "kernel/.cargo/config.toml", fs.ErrPermission)
	assert.ErrorIs(t, ioErr, ErrIO)
	assert.ErrorIs(t, ioErr, fs.ErrPermission, "cause must stay reachable")

	argErr := argumentError("", ErrorEmptyArch)
	assert.ErrorIs(t, argErr, ErrArgument)
}

func TestStageError_Message(t *testing.T) {
	m := Mapping{Name: "makefile", Source: "makefiles/Makefile_sparc"}
	err := notFoundError("sparc", m)
	err.Hint = fmt.Sprintf(HintAvailableArches, "aarch64, x86_64")

	assert.Equal(t,
		`not found: source for makefile not found for arch "sparc" (makefiles/Makefile_sparc); available architectures: aarch64, x86_64`,
		err.Error())
}

func TestExitCodeFor(t *testing.T) {
	m := Mapping{Name: "linker-script"}
	wrapped := fmt.Errorf("outer: %w", notFoundError("x", m))

	assert.Equal(t, ExitOK, exitCodeFor(nil))
	assert.Equal(t, ExitNotFound, exitCodeFor(wrapped))
	assert.Equal(t, ExitIO, exitCodeFor(errors.New("unclassified")))
	assert.Equal(t, ExitArgument, exitCodeFor(argumentError("", ErrorMissingArch)))
	assert.Equal(t, ExitIO, exitCodeFor(errors.Join(ioError("x", m, "kernel/linker.ld", fs.ErrClosed), errors.New("restore failed"))))
}
