package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/adapters/logger"
	"go.trai.ch/shrink/internal/core/ports"
)

const (
	// MinifierNodeID is the unique identifier for the fallback minifier Graft node.
	MinifierNodeID graft.ID = "adapter.esbuild_minifier"
	// TranspilerNodeID is the unique identifier for the transpiler Graft node.
	TranspilerNodeID graft.ID = "adapter.esbuild_transpiler"
)

func init() {
	graft.Register(graft.Node[*Minifier]{
		ID:        MinifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Minifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMinifier(afero.NewOsFs(), log), nil
		},
	})

	graft.Register(graft.Node[ports.Transpiler]{
		ID:        TranspilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Transpiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTranspiler(afero.NewOsFs(), log), nil
		},
	})
}
