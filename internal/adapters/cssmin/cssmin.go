// Package cssmin minifies CSS bundles with tdewolff/minify.
package cssmin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

const mediaType = "text/css"

// Minifier implements ports.CSSMinifier.
type Minifier struct {
	fs     afero.Fs
	logger ports.Logger
	m      *minify.M
}

// New creates a new Minifier.
func New(fs afero.Fs, logger ports.Logger) *Minifier {
	m := minify.New()
	m.AddFunc(mediaType, css.Minify)

	return &Minifier{fs: fs, logger: logger, m: m}
}

var _ ports.CSSMinifier = (*Minifier)(nil)

// Minify rewrites the stylesheet at path in place. A missing file is not an
// error: bundles without styles skip this step.
func (c *Minifier) Minify(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := afero.ReadFile(c.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug(fmt.Sprintf("no stylesheet at %s, skipping css minification", path))
			return nil
		}
		return errors.Join(domain.ErrCSSMinifyFailed, zerr.With(zerr.Wrap(err, "read stylesheet"), "path", path))
	}

	out, err := c.Bytes(src)
	if err != nil {
		return errors.Join(domain.ErrCSSMinifyFailed, zerr.With(err, "path", path))
	}

	if err := afero.WriteFile(c.fs, path, out, 0o644); err != nil {
		return errors.Join(domain.ErrCSSMinifyFailed, zerr.With(zerr.Wrap(err, "write stylesheet"), "path", path))
	}

	c.logger.Debug(fmt.Sprintf("css minified: %s (%d -> %d bytes)", path, len(src), len(out)))
	return nil
}

// Bytes minifies a stylesheet held in memory.
func (c *Minifier) Bytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.m.Minify(mediaType, &buf, bytes.NewReader(src)); err != nil {
		return nil, zerr.Wrap(err, "minify stylesheet")
	}
	return buf.Bytes(), nil
}
