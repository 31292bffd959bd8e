package ports

import (
	"context"

	"go.trai.ch/shrink/internal/core/domain"
)

// FileCache defines an in-memory store of file contents keyed by absolute path.
//
//go:generate mockgen -source=file_cache.go -destination=mocks/mock_file_cache.go -package=mocks
type FileCache interface {
	// Get returns the cached file for path, if present.
	Get(path string) (domain.CachedFile, bool)

	// Set stores file under path, replacing any previous entry.
	Set(path string, file domain.CachedFile)

	// GetOrLoad returns the cached file or reads it from disk and caches it.
	// Failed reads are not cached.
	GetOrLoad(ctx context.Context, path string) (domain.CachedFile, error)
}
