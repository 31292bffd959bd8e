// Package esbuild provides the fallback JS minifier and the downlevel
// transpiler, both backed by esbuild's in-process transform API.
package esbuild

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

// Minifier implements ports.JSBackend using esbuild.
type Minifier struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewMinifier creates a new Minifier.
func NewMinifier(fs afero.Fs, logger ports.Logger) *Minifier {
	return &Minifier{fs: fs, logger: logger}
}

var _ ports.JSBackend = (*Minifier)(nil)

// Compile minifies inputPath into outputPath. The backend config is ignored:
// esbuild takes no language level arguments when minifying.
func (m *Minifier) Compile(ctx context.Context, _ domain.BackendConfig, inputPath, outputPath string) error {
	err := transform(ctx, m.fs, m.logger, inputPath, outputPath, api.TransformOptions{
		Loader:            api.LoaderJS,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LegalComments:     api.LegalCommentsEndOfFile,
	})
	if err != nil {
		return errors.Join(domain.ErrFallbackFailed, err)
	}
	return nil
}

// Transpiler implements ports.Transpiler using esbuild.
type Transpiler struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewTranspiler creates a new Transpiler.
func NewTranspiler(fs afero.Fs, logger ports.Logger) *Transpiler {
	return &Transpiler{fs: fs, logger: logger}
}

var _ ports.Transpiler = (*Transpiler)(nil)

// Transpile lowers the bundle at path in place to languageOut.
func (t *Transpiler) Transpile(ctx context.Context, path, languageOut string) error {
	target, err := Target(languageOut)
	if err != nil {
		return errors.Join(domain.ErrTranspileFailed, err)
	}

	err = transform(ctx, t.fs, t.logger, path, path, api.TransformOptions{
		Loader: api.LoaderJS,
		Target: target,
	})
	if err != nil {
		return errors.Join(domain.ErrTranspileFailed, err)
	}
	return nil
}

var targets = map[string]api.Target{
	"ECMASCRIPT3":        api.ES5,
	"ECMASCRIPT5":        api.ES5,
	"ECMASCRIPT5_STRICT": api.ES5,
	"ECMASCRIPT6":        api.ES2015,
	"ECMASCRIPT_2015":    api.ES2015,
	"ECMASCRIPT_2016":    api.ES2016,
	"ECMASCRIPT_2017":    api.ES2017,
	"ECMASCRIPT_2018":    api.ES2018,
	"ECMASCRIPT_2019":    api.ES2019,
	"ECMASCRIPT_2020":    api.ES2020,
	"ECMASCRIPT_2021":    api.ES2021,
	"ECMASCRIPT_NEXT":    api.ESNext,
	"STABLE":             api.ESNext,
}

// Target maps a Closure Compiler language level to an esbuild target.
func Target(languageLevel string) (api.Target, error) {
	target, ok := targets[strings.ToUpper(strings.TrimSpace(languageLevel))]
	if !ok {
		return api.DefaultTarget, errors.Join(
			domain.ErrUnknownLanguageLevel,
			zerr.With(zerr.New("unsupported language level"), "language_level", languageLevel),
		)
	}
	return target, nil
}

func transform(
	ctx context.Context,
	fs afero.Fs,
	logger ports.Logger,
	inputPath, outputPath string,
	opts api.TransformOptions,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := afero.ReadFile(fs, inputPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "read bundle"), "path", inputPath)
	}

	opts.Sourcefile = inputPath
	result := api.Transform(string(src), opts)

	for _, w := range result.Warnings {
		logger.Debug("[esbuild] " + formatMessage(w))
	}

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			msgs = append(msgs, formatMessage(e))
		}
		return zerr.With(zerr.New(strings.Join(msgs, "\n")), "path", inputPath)
	}

	if err := afero.WriteFile(fs, outputPath, result.Code, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "write bundle"), "path", outputPath)
	}

	return nil
}

func formatMessage(m api.Message) string {
	if m.Location == nil {
		return m.Text
	}
	return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text)
}
