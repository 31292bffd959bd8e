// Package resolver substitutes pre-compiled JS output for a source file
// and reconciles the accompanying source map.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-sourcemap/sourcemap"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Result is the compiled output handed back to the bundler.
type Result struct {
	Content   string
	SourceMap json.RawMessage
}

// Resolver reads compiled output through a FileCache.
type Resolver struct {
	cache  ports.FileCache
	logger ports.Logger
}

// New creates a new Resolver.
func New(cache ports.FileCache, logger ports.Logger) *Resolver {
	return &Resolver{cache: cache, logger: logger}
}

// Paths returns the absolute compiled-JS and source map paths for resourcePath.
func Paths(resourcePath string) (absPath, jsPath, mapPath string) {
	absPath = resourcePath
	if abs, err := filepath.Abs(resourcePath); err == nil {
		absPath = abs
	}
	jsPath = strings.TrimSuffix(absPath, filepath.Ext(absPath)) + ".js"
	return absPath, jsPath, jsPath + ".map"
}

// Resolve returns the compiled JS for resourcePath together with its source map.
//
// The JS file is mandatory and a read failure fails the resolution. The map is
// best-effort: when it cannot be read or is not a JSON object, suppliedMap is
// returned unchanged.
func (r *Resolver) Resolve(
	ctx context.Context,
	resourcePath, source string,
	suppliedMap json.RawMessage,
) (Result, error) {
	absPath, jsPath, mapPath := Paths(resourcePath)

	var (
		g       errgroup.Group
		js      domain.CachedFile
		mapFile domain.CachedFile
		mapErr  error
	)

	g.Go(func() error {
		var err error
		js, err = r.cache.GetOrLoad(ctx, jsPath)
		return err
	})

	g.Go(func() error {
		mapFile, mapErr = r.cache.GetOrLoad(ctx, mapPath)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if mapErr != nil {
		r.logger.Debug(fmt.Sprintf("no source map for %s, keeping supplied map", absPath))
		return Result{Content: js.Content, SourceMap: suppliedMap}, nil
	}

	if _, err := sourcemap.Parse(mapPath, []byte(mapFile.Content)); err != nil {
		r.logger.Debug(fmt.Sprintf("source map %s is not a plain v3 map (%v), reconciling anyway", mapPath, err))
	}

	reconciled, err := Reconcile([]byte(mapFile.Content), mapPath, absPath, source)
	if err != nil {
		r.logger.Debug(err.Error())
		return Result{Content: js.Content, SourceMap: suppliedMap}, nil
	}

	return Result{Content: js.Content, SourceMap: reconciled}, nil
}

// Reconcile points the map at absPath and embeds source when the map carries
// no sources content. Every other field is preserved. Only input that is not
// a JSON object is rejected.
func Reconcile(raw []byte, mapPath, absPath, source string) (json.RawMessage, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, mapParseError(err, mapPath)
	}
	if fields == nil {
		return nil, mapParseError(errors.New("source map is not a JSON object"), mapPath)
	}

	fields["sources"] = []string{absPath}
	if contents, ok := fields["sourcesContent"].([]any); !ok || len(contents) == 0 {
		fields["sourcesContent"] = []string{source}
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return nil, mapParseError(err, mapPath)
	}
	return out, nil
}

func mapParseError(err error, mapPath string) error {
	return errors.Join(domain.ErrMapParse, zerr.With(zerr.Wrap(err, "parse source map"), "path", mapPath))
}
