package closure

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/adapters/logger"
	"go.trai.ch/shrink/internal/adapters/shell"
	"go.trai.ch/shrink/internal/core/ports"
)

const (
	// ProbeNodeID is the unique identifier for the availability probe Graft node.
	ProbeNodeID graft.ID = "adapter.closure_probe"
	// CompilerNodeID is the unique identifier for the Closure Compiler Graft node.
	CompilerNodeID graft.ID = "adapter.closure_compiler"
)

func init() {
	graft.Register(graft.Node[ports.AvailabilityProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.AvailabilityProbe, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(runner, log), nil
		},
	})

	graft.Register(graft.Node[*Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (*Compiler, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(runner), nil
		},
	})
}
