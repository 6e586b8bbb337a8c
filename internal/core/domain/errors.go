package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTarget is returned when a specifier matches no known project.
	ErrUnknownTarget = zerr.New("unknown project")

	// ErrMissingComponent is returned when a component-restricted specifier names a component the project lacks.
	ErrMissingComponent = zerr.New("component not found")

	// ErrProjectPathNotFound is returned when the registry cannot resolve a project's path.
	ErrProjectPathNotFound = zerr.New("project path not found")

	// ErrDirectoryMissing is returned when a component's directory does not exist on disk.
	ErrDirectoryMissing = zerr.New("directory does not exist")

	// ErrCheckoutFailed is returned when switching to the main branch fails.
	ErrCheckoutFailed = zerr.New("failed to switch to main branch")

	// ErrPullFailed is returned when the fast-forward pull fails.
	ErrPullFailed = zerr.New("failed to pull changes")

	// ErrRestoreFailed is returned when switching back to the original branch fails.
	ErrRestoreFailed = zerr.New("failed to restore original branch")

	// ErrPackageUpdateFailed is returned when a package manager command fails.
	ErrPackageUpdateFailed = zerr.New("package update failed")

	// ErrTaskTimeout is returned when a component update exceeds its deadline.
	ErrTaskTimeout = zerr.New("update timed out")

	// ErrJobPanicked is recorded when a scheduled job panics.
	ErrJobPanicked = zerr.New("job panicked")

	// ErrJobNotStarted is recorded for jobs that were not admitted before cancellation.
	ErrJobNotStarted = zerr.New("job not started")

	// ErrInvalidTransition is returned when a task state change would move backwards.
	ErrInvalidTransition = zerr.New("invalid task state transition")

	// ErrRepoStatusFailed is returned when the repository status cannot be determined.
	ErrRepoStatusFailed = zerr.New("failed to read repository status")

	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a command has no program to run.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrUpdateFailed is returned when at least one component update failed.
	ErrUpdateFailed = zerr.New("workspace update failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigFormat is returned when the config file extension is not recognised.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config file format")

	// ErrInvalidJobCount is recorded when a parallelism value is not a positive integer.
	ErrInvalidJobCount = zerr.New("invalid job count")

	// ErrStoreReadFailed is returned when the run history cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read run history")

	// ErrStoreWriteFailed is returned when the run history cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write run history")

	// ErrNoPreviousRun is returned when no run history has been recorded yet.
	ErrNoPreviousRun = zerr.New("no previous run recorded")
)
