package ports

import (
	"context"

	"go.trai.ch/shrink/internal/core/domain"
)

//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// AvailabilityProbe reports whether the preferred backend can run here.
type AvailabilityProbe interface {
	// IsAvailable never fails. It returns false without probing when enabled is false.
	IsAvailable(ctx context.Context, enabled bool, cfg domain.BackendConfig) bool
}

// JSBackend minifies a single JS bundle from inputPath into outputPath.
// The two paths may be equal for in-place minification.
type JSBackend interface {
	Compile(ctx context.Context, cfg domain.BackendConfig, inputPath, outputPath string) error
}

// Transpiler lowers a JS bundle in place to the given output language level.
type Transpiler interface {
	Transpile(ctx context.Context, path, languageOut string) error
}

// CSSMinifier minifies a CSS bundle in place.
type CSSMinifier interface {
	Minify(ctx context.Context, path string) error
}
