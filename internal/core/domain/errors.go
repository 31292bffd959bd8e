package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrFileRead is returned when a required file cannot be read from disk.
	ErrFileRead = zerr.New("failed to read file")

	// ErrFileWrite is returned when an output file cannot be written.
	ErrFileWrite = zerr.New("failed to write file")

	// ErrMapParse is returned when a source map file is not valid source map JSON.
	// It never fails a build; the bundler-supplied map is used instead.
	ErrMapParse = zerr.New("failed to parse source map")

	// ErrBackendExecution is the sentinel matched by every BackendExecutionError.
	ErrBackendExecution = zerr.New("backend execution failed")

	// ErrTempCleanup is returned when a temp artifact cannot be removed. It is always swallowed.
	ErrTempCleanup = zerr.New("failed to remove temp artifact")

	// ErrTempStage is returned when the minified temp artifact cannot be promoted to the bundle path.
	ErrTempStage = zerr.New("failed to promote temp artifact")

	// ErrFallbackFailed is returned when the fallback JS minifier reports errors.
	ErrFallbackFailed = zerr.New("fallback minifier failed")

	// ErrTranspileFailed is returned when downlevel transpilation of the bundle fails.
	ErrTranspileFailed = zerr.New("downlevel transpilation failed")

	// ErrCSSMinifyFailed is returned when the CSS minifier fails.
	ErrCSSMinifyFailed = zerr.New("css minification failed")

	// ErrMinifyFailed is returned when the combined minify step fails.
	ErrMinifyFailed = zerr.New("minify failed")

	// ErrConfigRead is returned when the backend config file cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the backend config file cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrEnvParse is returned when environment settings are malformed.
	ErrEnvParse = zerr.New("failed to parse environment settings")

	// ErrUnknownLanguageLevel is returned for a language level with no transpile target.
	ErrUnknownLanguageLevel = zerr.New("unknown language level")
)

// BackendExecutionError reports a non-zero exit or a spawn failure of an external backend.
type BackendExecutionError struct {
	Executable string
	// ExitCode is -1 when the process could not be started or was killed by a signal.
	ExitCode int
	Err      error
}

func (e *BackendExecutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s exited with status %d", e.Executable, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %v", e.Executable, e.ExitCode, e.Err)
}

func (e *BackendExecutionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrBackendExecution.
func (e *BackendExecutionError) Is(target error) bool {
	return target == ErrBackendExecution
}

// PhaseError reports which phase of a minify run failed.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
}

// Message returns the failing phase without the cause.
func (e *PhaseError) Message() string {
	return e.Phase + " phase failed"
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMinifyFailed.
func (e *PhaseError) Is(target error) bool {
	return target == ErrMinifyFailed
}
