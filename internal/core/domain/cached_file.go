package domain

// CachedFile is a file held in memory by the file cache.
// Values are immutable once stored.
type CachedFile struct {
	// Path is the absolute path the file was read from.
	Path    string
	Content string
	// Digest is the xxhash64 of Content. Used for diagnostics only.
	Digest uint64
}
