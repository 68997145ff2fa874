package main

// --- Application Metadata ---
var AppVersion = "1.0.0"

const (
	AppName = "archstage"

	// ArchVariable is the placeholder substituted into source templates.
	ArchVariable = "ARCH"

	// ArchDiscoveryGlob lists the per-arch makefiles used to suggest valid arch ids.
	ArchDiscoveryGlob = "makefiles/Makefile_*"

	dirPerm = 0o755
)

// --- Exit Codes ---
const (
	ExitOK       = 0
	ExitArgument = 2
	ExitNotFound = 3
	ExitIO       = 4
)

// --- CLI UI Strings ---
const (
	HelpShort       = "Stage architecture-specific build configuration"
	HelpDescription = `Copies the makefile, cargo config and linker script for one target
architecture into the fixed locations the kernel build expects:

  makefiles/Makefile_<arch>                         -> GNUmakefile
  kernel/arch_specific_configs/config.<arch>.toml   -> kernel/.cargo/config.toml
  kernel/arch_specific_configs/linker.<arch>.ld     -> kernel/linker.ld

All sources are checked before anything is written. If a copy fails,
destinations already replaced in this run are restored.`
	HelpExample   = "  archstage --arch x86_64"
	FlagArchUsage = "target architecture identifier (e.g. x86_64, aarch64)"
	VersionFormat = "archstage version {{.Version}}\n"
)

// --- Main Application Flow Messages ---
const (
	ErrorWorkingDir        = "Error: could not determine working directory: %v\n"
	ErrorStageFailed       = "%s: %v\n"
	ErrorMissingArch       = "--arch is required"
	ErrorEmptyArch         = "architecture identifier is empty"
	ErrorInvalidArch       = "architecture identifier %q must not contain path separators, '..' or placeholder characters"
	ErrorUnexpectedArgs    = "unexpected arguments: %v"
	ErrorSourceNotFound    = "source for %s not found for arch %q"
	ErrorSourceNotRegular  = "source for %s for arch %q is not a regular file"
	ErrorStagingFailed     = "staging %s for arch %q failed"
	HintAvailableArches    = "available architectures: %s"
	StatusStagingSucceeded = "archstage: configuration for '%s' staged successfully."
)

// --- Log Messages ---
const (
	LogStagingStart     = "staging architecture profile"
	LogMappingStaged    = "artifact staged"
	LogDirectoryCreated = "created destination directory"
	LogRollback         = "rolling back staged artifacts"
	LogRollbackFailed   = "failed to restore destination"
	LogCleanupFailed    = "cleanup pending destination file"
)
