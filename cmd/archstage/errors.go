// cmd/archstage/errors.go
package main

import (
	"errors"
	"fmt"
)

// Kind classifies a staging failure. Each kind maps to its own exit code.
type Kind int

const (
	KindIO Kind = iota
	KindArgument
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument error"
	case KindNotFound:
		return "not found"
	default:
		return "io error"
	}
}

// ExitCode returns the process exit code for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindArgument:
		return ExitArgument
	case KindNotFound:
		return ExitNotFound
	default:
		return ExitIO
	}
}

// Use errors.Is(err, ErrNotFound) instead of inspecting messages.
var (
	ErrArgument = errors.New("argument error")
	ErrNotFound = errors.New("not found")
	ErrIO       = errors.New("io error")
)

// StageError reports which mapping failed, for which arch, and why.
type StageError struct {
	Kind    Kind
	Arch    string
	Mapping string // empty for errors not tied to one mapping
	Path    string
	Detail  string
	Hint    string
	Err     error // wrapped cause
}

func (e *StageError) Error() string {
	msg := e.Kind.String() + ": " + e.Detail
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += "; " + e.Hint
	}
	return msg
}

func (e *StageError) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *StageError) Is(target error) bool {
	switch target {
	case ErrArgument:
		return e.Kind == KindArgument
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

func argumentError(arch, format string, args ...any) *StageError {
	return &StageError{Kind: KindArgument, Arch: arch, Detail: fmt.Sprintf(format, args...)}
}

func notFoundError(arch string, m Mapping) *StageError {
	return &StageError{
		Kind:    KindNotFound,
		Arch:    arch,
		Mapping: m.Name,
		Path:    m.Source,
		Detail:  fmt.Sprintf(ErrorSourceNotFound, m.Name, arch),
	}
}

func ioError(arch string, m Mapping, path string, err error) *StageError {
	return &StageError{
		Kind:    KindIO,
		Arch:    arch,
		Mapping: m.Name,
		Path:    path,
		Detail:  fmt.Sprintf(ErrorStagingFailed, m.Name, arch),
		Err:     err,
	}
}

// exitCodeFor maps any error returned by the CLI to a process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Kind.ExitCode()
	}
	return ExitIO
}
