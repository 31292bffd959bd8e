// Package closure drives Google Closure Compiler as the preferred JS backend.
//
// The compiler runs as `java -jar compiler.jar` through a ports.ProcessRunner.
// Availability is established by running `java -version` first.
package closure

import (
	"context"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
)

// unavailableWarning is emitted when the backend is enabled but Java cannot run.
const unavailableWarning = "Closure Compiler support is enabled but Java cannot be started. " +
	"Try running the build again with the --debug flag for more information."

// Probe implements ports.AvailabilityProbe.
type Probe struct {
	runner ports.ProcessRunner
	logger ports.Logger
}

// NewProbe creates a new Probe.
func NewProbe(runner ports.ProcessRunner, logger ports.Logger) *Probe {
	return &Probe{runner: runner, logger: logger}
}

var _ ports.AvailabilityProbe = (*Probe)(nil)

// IsAvailable reports whether the Java runtime named by cfg starts successfully.
// It never fails and does not spawn anything when enabled is false.
func (p *Probe) IsAvailable(ctx context.Context, enabled bool, cfg domain.BackendConfig) bool {
	if !enabled {
		return false
	}

	if err := p.runner.Run(ctx, cfg.JavaExecutable, []string{"-version"}); err != nil {
		p.logger.Debug("java version check failed: " + err.Error())
		p.logger.Warn(unavailableWarning)
		return false
	}

	return true
}

// Compiler implements ports.JSBackend with Closure Compiler.
type Compiler struct {
	runner ports.ProcessRunner
}

// NewCompiler creates a new Compiler.
func NewCompiler(runner ports.ProcessRunner) *Compiler {
	return &Compiler{runner: runner}
}

var _ ports.JSBackend = (*Compiler)(nil)

// Compile minifies inputPath into outputPath. A non-zero exit is returned as
// a *domain.BackendExecutionError from the runner.
func (c *Compiler) Compile(ctx context.Context, cfg domain.BackendConfig, inputPath, outputPath string) error {
	return c.runner.Run(ctx, cfg.JavaExecutable, Args(cfg, inputPath, outputPath))
}

// Args builds the compiler command line for one bundle.
func Args(cfg domain.BackendConfig, inputPath, outputPath string) []string {
	return []string{
		"-jar", cfg.CompilerJar,
		"--js", inputPath,
		"--js_output_file", outputPath,
		"--language_out=" + cfg.LanguageOut,
		"--language_in", cfg.LanguageIn,
		"--compilation_level", cfg.Optimization,
	}
}
