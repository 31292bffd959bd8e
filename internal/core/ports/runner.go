// Package ports defines the core interfaces for the application.
package ports

import "context"

// ProcessRunner defines the interface for running external executables.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run starts the executable with args and waits for it to exit.
	//
	// Stdout lines are logged at debug level and stderr lines at warn level.
	// It returns a *domain.BackendExecutionError when the process cannot be
	// started or exits with a non-zero code. There are no retries.
	Run(ctx context.Context, executable string, args []string) error
}
