package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/shrink/internal/engine/minify"
	"go.trai.ch/shrink/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			minify.NodeID,
			resolver.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			orchestrator, err := graft.Dep[*minify.Orchestrator](ctx)
			if err != nil {
				return nil, err
			}

			sourceLoader, err := graft.Dep[*resolver.Loader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, orchestrator, sourceLoader, log, afero.NewOsFs()), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Tracer: tracer}, nil
		},
	})
}
