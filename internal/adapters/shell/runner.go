// Package shell provides a process runner for external minifier backends.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

var _ ports.ProcessRunner = (*Runner)(nil)

// Run starts executable with args and waits for it to exit.
//
// Output is streamed to the logger line by line: stdout at debug level and
// stderr at warn level. Lines are prefixed with the executable's base name.
func (r *Runner) Run(ctx context.Context, executable string, args []string) error {
	prefix := "[" + filepath.Base(executable) + "] "

	stdout := &logWriter{logger: r.logger, level: levelDebug, prefix: prefix}
	stderr := &logWriter{logger: r.logger, level: levelWarn, prefix: prefix}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // executable comes from backend config
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	// Run returns after the output copy loops finished, so flushing here
	// cannot race with Write.
	_ = stdout.Close()
	_ = stderr.Close()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &domain.BackendExecutionError{
			Executable: executable,
			ExitCode:   exitCode,
			Err:        zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode),
		}
	}

	return nil
}

type level int

const (
	levelDebug level = iota
	levelWarn
)

// logWriter buffers partial lines until a newline arrives or it is closed.
type logWriter struct {
	logger ports.Logger
	level  level
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}

	if w.level == levelWarn {
		w.logger.Warn(w.prefix + msg)
		return
	}
	w.logger.Debug(w.prefix + msg)
}
