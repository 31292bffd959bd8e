// Package minify coordinates JS and CSS minification of a build.
package minify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	phaseJS  = "js"
	phaseCSS = "css"
)

// Orchestrator selects a JS backend, runs it, and minifies the CSS bundle alongside.
type Orchestrator struct {
	probe      ports.AvailabilityProbe
	preferred  ports.JSBackend
	fallback   ports.JSBackend
	transpiler ports.Transpiler
	css        ports.CSSMinifier
	fs         afero.Fs
	logger     ports.Logger
	tracer     ports.Tracer
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	probe ports.AvailabilityProbe,
	preferred ports.JSBackend,
	fallback ports.JSBackend,
	transpiler ports.Transpiler,
	css ports.CSSMinifier,
	fs afero.Fs,
	logger ports.Logger,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		probe:      probe,
		preferred:  preferred,
		fallback:   fallback,
		transpiler: transpiler,
		css:        css,
		fs:         fs,
		logger:     logger,
		tracer:     tracer,
	}
}

// Minify runs the JS and CSS branches concurrently and waits for both.
//
// The first branch error is returned as a *domain.PhaseError; a later error
// from the other branch is dropped. A successful JS outcome is merged into bc
// even when the CSS branch failed.
func (o *Orchestrator) Minify(ctx context.Context, bc *domain.BuildContext) error {
	ctx, span := o.tracer.Start(ctx, "minify")
	defer span.End()

	var (
		g       errgroup.Group
		outcome domain.JSOutcome
		jsDone  bool
	)

	g.Go(func() error {
		out, err := o.MinifyJS(ctx, bc)
		if err != nil {
			return &domain.PhaseError{Phase: phaseJS, Err: err}
		}
		outcome, jsDone = out, true
		return nil
	})

	g.Go(func() error {
		if err := o.MinifyCSS(ctx, bc); err != nil {
			return &domain.PhaseError{Phase: phaseCSS, Err: err}
		}
		return nil
	})

	err := g.Wait()
	if jsDone {
		bc.Apply(outcome)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// MinifyJS minifies the JS bundle with the preferred backend when it is
// enabled and available, and with the fallback backend otherwise.
func (o *Orchestrator) MinifyJS(ctx context.Context, bc *domain.BuildContext) (domain.JSOutcome, error) {
	ctx, span := o.tracer.Start(ctx, "minify.js")
	defer span.End()

	available := o.probe.IsAvailable(ctx, bc.PreferredEnabled, bc.Closure)
	backend := domain.SelectBackend(bc.PreferredEnabled, available, bc.Closure)
	span.SetAttribute("shrink.backend", backend.Kind.String())

	var outcome domain.JSOutcome
	err := o.timed(phaseJS+" ("+backend.Kind.String()+")", func() error {
		var err error
		if backend.Kind == domain.BackendPreferred {
			outcome, err = o.runPreferred(ctx, bc, backend.Config)
		} else {
			outcome, err = o.runFallback(ctx, bc, backend.Config)
		}
		return err
	})
	if err != nil {
		span.RecordError(err)
		return domain.JSOutcome{Backend: backend.Kind}, err
	}

	return outcome, nil
}

// MinifyCSS minifies the CSS bundle in place.
func (o *Orchestrator) MinifyCSS(ctx context.Context, bc *domain.BuildContext) error {
	ctx, span := o.tracer.Start(ctx, "minify.css")
	defer span.End()

	err := o.timed(phaseCSS, func() error {
		return o.css.Minify(ctx, bc.CSSBundlePath())
	})
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (o *Orchestrator) runPreferred(
	ctx context.Context,
	bc *domain.BuildContext,
	cfg domain.BackendConfig,
) (domain.JSOutcome, error) {
	bundle := bc.JSBundlePath()
	temp := filepath.Join(bc.BuildDir, uuid.NewString()+".js")
	defer o.removeTemp(temp)

	ctx, span := o.tracer.Start(ctx, "minify.js.compile")
	err := o.preferred.Compile(ctx, cfg, bundle, temp)
	if err != nil {
		span.RecordError(err)
		span.End()
		return domain.JSOutcome{Backend: domain.BackendPreferred}, err
	}
	span.End()

	if err := o.promote(temp, bundle); err != nil {
		return domain.JSOutcome{Backend: domain.BackendPreferred}, err
	}

	return domain.JSOutcome{Backend: domain.BackendPreferred, DownlevelSatisfied: true}, nil
}

func (o *Orchestrator) runFallback(
	ctx context.Context,
	bc *domain.BuildContext,
	cfg domain.BackendConfig,
) (domain.JSOutcome, error) {
	bundle := bc.JSBundlePath()

	if bc.RequiresTranspileDownlevel {
		tctx, span := o.tracer.Start(ctx, "minify.js.transpile")
		err := o.transpiler.Transpile(tctx, bundle, cfg.LanguageOut)
		if err != nil {
			span.RecordError(err)
		}
		span.End()
		if err != nil {
			return domain.JSOutcome{Backend: domain.BackendFallback}, err
		}
	}

	ctx, span := o.tracer.Start(ctx, "minify.js.compile")
	defer span.End()
	if err := o.fallback.Compile(ctx, cfg, bundle, bundle); err != nil {
		span.RecordError(err)
		return domain.JSOutcome{Backend: domain.BackendFallback}, err
	}

	return domain.JSOutcome{Backend: domain.BackendFallback}, nil
}

// promote copies temp next to bundle and renames the copy over bundle, so
// readers of bundle never observe a partially written file.
func (o *Orchestrator) promote(temp, bundle string) error {
	staging := filepath.Join(filepath.Dir(bundle), "."+filepath.Base(bundle)+"."+uuid.NewString())

	if err := o.copyFile(temp, staging); err != nil {
		_ = o.fs.Remove(staging)
		return errors.Join(domain.ErrTempStage, zerr.With(zerr.Wrap(err, "stage minified bundle"), "path", staging))
	}

	if err := o.fs.Rename(staging, bundle); err != nil {
		_ = o.fs.Remove(staging)
		return errors.Join(domain.ErrTempStage, zerr.With(zerr.Wrap(err, "replace bundle"), "path", bundle))
	}

	return nil
}

func (o *Orchestrator) copyFile(src, dst string) (err error) {
	in, err := o.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := o.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// removeTemp deletes a temp artifact. Failures are logged and swallowed.
func (o *Orchestrator) removeTemp(path string) {
	err := o.fs.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}

	cleanupErr := errors.Join(domain.ErrTempCleanup, zerr.With(zerr.Wrap(err, "remove temp artifact"), "path", path))
	o.logger.Debug(cleanupErr.Error())
}

func (o *Orchestrator) timed(name string, fn func() error) error {
	o.logger.Debug(fmt.Sprintf("minify %s: started", name))
	start := time.Now()

	if err := fn(); err != nil {
		o.logger.Debug(fmt.Sprintf("minify %s: failed after %s", name, time.Since(start).Round(time.Millisecond)))
		return err
	}

	o.logger.Info(fmt.Sprintf("minify %s: finished in %s", name, time.Since(start).Round(time.Millisecond)))
	return nil
}
