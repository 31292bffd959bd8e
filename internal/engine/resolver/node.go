package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/adapters/filecache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the loader Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{filecache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			cache, err := graft.Dep[ports.FileCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLoader(New(cache, log)), nil
		},
	})
}
