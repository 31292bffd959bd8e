package resolver

import (
	"context"
	"encoding/json"
)

// Callback completes a bundler loader invocation.
type Callback func(err error, content string, sourceMap json.RawMessage)

// LoaderContext is the bundler's per-file loader state.
type LoaderContext interface {
	// ResourcePath is the path of the file being processed.
	ResourcePath() string
	// Cacheable marks the result as cacheable by the bundler.
	Cacheable()
	// Async switches the loader to asynchronous completion.
	Async() Callback
}

// Loader is the bundler hook that replaces a source file with its compiled output.
type Loader struct {
	resolver *Resolver
}

// NewLoader creates a new Loader.
func NewLoader(resolver *Resolver) *Loader {
	return &Loader{resolver: resolver}
}

// Load resolves the compiled output for lc on a new goroutine and completes
// through the callback exactly once.
func (l *Loader) Load(ctx context.Context, source string, sourceMap json.RawMessage, lc LoaderContext) {
	lc.Cacheable()
	done := lc.Async()

	go func() {
		res, err := l.resolver.Resolve(ctx, lc.ResourcePath(), source, sourceMap)
		if err != nil {
			done(err, "", nil)
			return
		}
		done(nil, res.Content, res.SourceMap)
	}()
}
