package app

import (
	"context"

	"go.trai.ch/shrink/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Shutdown releases the tracer when it owns resources. It is safe on a
// partially populated Components.
func (c *Components) Shutdown(ctx context.Context) error {
	if s, ok := c.Tracer.(shutdowner); ok {
		return s.Shutdown(ctx)
	}
	return nil
}
