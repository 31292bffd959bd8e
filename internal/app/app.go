// Package app implements the application layer for shrink.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/adapters/config"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/shrink/internal/engine/minify"
	"go.trai.ch/shrink/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator *minify.Orchestrator
	loader       *resolver.Loader
	logger       ports.Logger
	fs           afero.Fs
	lookupEnv    func(string) (string, bool)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	orchestrator *minify.Orchestrator,
	sourceLoader *resolver.Loader,
	log ports.Logger,
	fs afero.Fs,
) *App {
	return &App{
		configLoader: loader,
		orchestrator: orchestrator,
		loader:       sourceLoader,
		logger:       log,
		fs:           fs,
	}
}

// WithLookupEnv replaces the process environment as the source of settings.
// This is primarily used for testing.
func (a *App) WithLookupEnv(lookup func(string) (string, bool)) *App {
	a.lookupEnv = lookup
	return a
}

// MinifyOptions configuration for the Minify method.
type MinifyOptions struct {
	// RootDir is the project root. Relative build dirs are resolved against it.
	RootDir string
	// BuildDir overrides SHRINK_BUILD_DIR when set.
	BuildDir string
	// ClosureConfig overrides SHRINK_CLOSURE when set.
	ClosureConfig string
	// Downlevel marks the bundle as still needing downlevel transpilation.
	Downlevel bool
}

// Minify minifies the JS and CSS bundles of one build and returns the final
// build context.
func (a *App) Minify(ctx context.Context, opts MinifyOptions) (*domain.BuildContext, error) {
	bc, err := a.buildContext(opts)
	if err != nil {
		return nil, err
	}

	a.logger.Debug(fmt.Sprintf("minifying %s and %s", bc.JSBundlePath(), bc.CSSBundlePath()))

	if err := a.orchestrator.Minify(ctx, bc); err != nil {
		return bc, err
	}

	return bc, nil
}

func (a *App) buildContext(opts MinifyOptions) (*domain.BuildContext, error) {
	env, err := config.LoadEnv(a.lookupEnv)
	if err != nil {
		return nil, err
	}

	rootDir := opts.RootDir
	if rootDir == "" {
		rootDir = "."
	}
	if abs, absErr := filepath.Abs(rootDir); absErr == nil {
		rootDir = abs
	}

	closurePath := env.ClosureConfig
	if opts.ClosureConfig != "" {
		closurePath = opts.ClosureConfig
	}

	cfg, err := a.configLoader.Load(closurePath, rootDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	buildDir := env.BuildDir
	if opts.BuildDir != "" {
		buildDir = opts.BuildDir
	}
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(rootDir, buildDir)
	}

	return &domain.BuildContext{
		RootDir:                    rootDir,
		BuildDir:                   buildDir,
		OutputJSFileName:           env.OutputJSFileName,
		OutputCSSFileName:          env.OutputCSSFileName,
		RequiresTranspileDownlevel: opts.Downlevel,
		PreferredEnabled:           env.EnableClosure,
		Closure:                    cfg,
	}, nil
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// Path is the source file being processed.
	Path string
	// MapIn is an optional source map standing in for the bundler-supplied map.
	MapIn string
	// MapOut receives the reconciled source map when set.
	MapOut string
}

// Resolve runs the loader hook for one source file and returns its compiled
// output and reconciled source map. The map is also written to MapOut when set.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (resolver.Result, error) {
	source, err := afero.ReadFile(a.fs, opts.Path)
	if err != nil {
		return resolver.Result{}, errors.Join(
			domain.ErrFileRead,
			zerr.With(zerr.Wrap(err, "read source"), "path", opts.Path),
		)
	}

	var supplied json.RawMessage
	if opts.MapIn != "" {
		data, err := afero.ReadFile(a.fs, opts.MapIn)
		if err != nil {
			return resolver.Result{}, errors.Join(
				domain.ErrFileRead,
				zerr.With(zerr.Wrap(err, "read supplied source map"), "path", opts.MapIn),
			)
		}
		supplied = data
	}

	lc := newLoaderContext(opts.Path)
	a.loader.Load(ctx, string(source), supplied, lc)

	var res loaderResult
	select {
	case res = <-lc.done:
	case <-ctx.Done():
		return resolver.Result{}, ctx.Err()
	}
	if res.err != nil {
		return res.result, res.err
	}

	if opts.MapOut != "" && len(res.result.SourceMap) > 0 {
		if err := a.writeMap(opts.MapOut, res.result.SourceMap); err != nil {
			return res.result, err
		}
	}
	return res.result, nil
}

func (a *App) writeMap(path string, sourceMap json.RawMessage) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Join(domain.ErrFileWrite, zerr.With(zerr.Wrap(err, "create source map dir"), "path", dir))
		}
	}
	if err := afero.WriteFile(a.fs, path, sourceMap, 0o644); err != nil {
		return errors.Join(domain.ErrFileWrite, zerr.With(zerr.Wrap(err, "write source map"), "path", path))
	}
	return nil
}

type loaderResult struct {
	result resolver.Result
	err    error
}

// loaderContext adapts a single CLI invocation to the bundler loader contract.
type loaderContext struct {
	path string
	done chan loaderResult
}

func newLoaderContext(path string) *loaderContext {
	return &loaderContext{path: path, done: make(chan loaderResult, 1)}
}

func (c *loaderContext) ResourcePath() string { return c.path }

func (c *loaderContext) Cacheable() {}

func (c *loaderContext) Async() resolver.Callback {
	return func(err error, content string, sourceMap json.RawMessage) {
		c.done <- loaderResult{
			result: resolver.Result{Content: content, SourceMap: sourceMap},
			err:    err,
		}
	}
}
