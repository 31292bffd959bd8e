package cssmin

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/shrink/internal/adapters/logger"
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the CSS minifier Graft node.
const NodeID graft.ID = "adapter.css_minifier"

func init() {
	graft.Register(graft.Node[ports.CSSMinifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CSSMinifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(afero.NewOsFs(), log), nil
		},
	})
}
