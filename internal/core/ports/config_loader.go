package ports

import "go.trai.ch/shrink/internal/core/domain"

// ConfigLoader defines the interface for resolving the preferred backend configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the backend configuration. An explicit path wins over a
	// config file discovered from rootDir, which wins over built-in defaults.
	Load(explicitPath, rootDir string) (domain.BackendConfig, error)
}
