// Package filecache implements an in-memory file cache that falls back to disk.
package filecache

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache implements ports.FileCache. Entries are never evicted; the cache
// lives as long as the build that created it.
type Cache struct {
	fs     afero.Fs
	logger ports.Logger

	mu    sync.RWMutex
	files map[string]domain.CachedFile
}

// New creates an empty cache reading misses from fs.
func New(fs afero.Fs, logger ports.Logger) *Cache {
	return &Cache{
		fs:     fs,
		logger: logger,
		files:  make(map[string]domain.CachedFile),
	}
}

var _ ports.FileCache = (*Cache)(nil)

// Get returns the cached file for path.
func (c *Cache) Get(path string) (domain.CachedFile, bool) {
	key := absolute(path)

	c.mu.RLock()
	defer c.mu.RUnlock()

	file, ok := c.files[key]
	return file, ok
}

// Set stores file under path.
func (c *Cache) Set(path string, file domain.CachedFile) {
	key := absolute(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.files[key] = file
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.files)
}

// GetOrLoad returns the cached file for path, reading it from disk on a miss.
//
// Two concurrent misses on the same path both read the file; the second Set
// overwrites the first with identical content.
func (c *Cache) GetOrLoad(ctx context.Context, path string) (domain.CachedFile, error) {
	key := absolute(path)

	if file, ok := c.Get(key); ok {
		c.logger.Debug(fmt.Sprintf("file cache hit: %s (%016x)", key, file.Digest))
		return file, nil
	}

	c.logger.Debug(fmt.Sprintf("file cache miss: %s, reading from disk", key))

	if err := ctx.Err(); err != nil {
		return domain.CachedFile{}, err
	}

	data, err := afero.ReadFile(c.fs, key)
	if err != nil {
		c.logger.Debug(fmt.Sprintf("failed to load %s from disk", key))
		return domain.CachedFile{}, errors.Join(
			domain.ErrFileRead,
			zerr.With(zerr.Wrap(err, "read "+key), "path", key),
		)
	}

	file := domain.CachedFile{
		Path:    key,
		Content: string(data),
		Digest:  xxhash.Sum64(data),
	}
	c.Set(key, file)

	return file, nil
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
