package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/adapters/closure"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/adapters/cssmin"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/adapters/esbuild"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.minify"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			closure.ProbeNodeID,
			closure.CompilerNodeID,
			esbuild.MinifierNodeID,
			esbuild.TranspilerNodeID,
			cssmin.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			probe, err := graft.Dep[ports.AvailabilityProbe](ctx)
			if err != nil {
				return nil, err
			}

			preferred, err := graft.Dep[*closure.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			fallback, err := graft.Dep[*esbuild.Minifier](ctx)
			if err != nil {
				return nil, err
			}

			transpiler, err := graft.Dep[ports.Transpiler](ctx)
			if err != nil {
				return nil, err
			}

			css, err := graft.Dep[ports.CSSMinifier](ctx)
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

			return NewOrchestrator(
				probe,
				preferred,
				fallback,
				transpiler,
				css,
				afero.NewOsFs(),
				log,
				tracer,
			), nil
		},
	})
}
